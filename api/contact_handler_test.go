package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postJSON(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validSubmission = `{"name": "Ada", "email": "ada@example.com", "subject": "Hello", "message": "Nice site!"}`

func TestContactSubmitSuccess(t *testing.T) {
	router := newTestRouter(t, defaultContentHandler, okRelay, nil)

	rec := postJSON(router, validSubmission)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	// The CMS-configured message wins over the relay's.
	if resp.Message != "Thanks for reaching out!" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestContactSubmitFormEncoded(t *testing.T) {
	router := newTestRouter(t, defaultContentHandler, okRelay, nil)

	form := url.Values{}
	form.Set("name", "Ada")
	form.Set("email", "ada@example.com")
	form.Set("subject", "Hello")
	form.Set("message", "Nice site!")

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestContactSubmitValidation(t *testing.T) {
	router := newTestRouter(t, defaultContentHandler, okRelay, nil)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing name", `{"email": "a@b.c", "subject": "s", "message": "m"}`, "name"},
		{"missing email", `{"name": "Ada", "subject": "s", "message": "m"}`, "email"},
		{"invalid email", `{"name": "Ada", "email": "not-an-email", "subject": "s", "message": "m"}`, "email"},
		{"missing subject", `{"name": "Ada", "email": "a@b.c", "message": "m"}`, "subject"},
		{"missing message", `{"name": "Ada", "email": "a@b.c", "subject": "s"}`, "message"},
		{"blank message", `{"name": "Ada", "email": "a@b.c", "subject": "s", "message": "   "}`, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(router, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp struct {
				Field string `json:"field"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Field != tt.wantField {
				t.Errorf("field = %q, want %q", resp.Field, tt.wantField)
			}
		})
	}
}

func TestContactSubmitMalformedBody(t *testing.T) {
	router := newTestRouter(t, defaultContentHandler, okRelay, nil)

	rec := postJSON(router, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestContactSubmitFormDisabled(t *testing.T) {
	disabled := func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("query"), "contactInfo") {
			w.Write([]byte(`{"result": {"_id": "contact", "email": "ada@example.com", "formEnabled": false}}`))
			return
		}
		defaultContentHandler(w, r)
	}
	router := newTestRouter(t, disabled, okRelay, nil)

	rec := postJSON(router, validSubmission)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when form is disabled", rec.Code)
	}
}

func TestContactSubmitRelayFailure(t *testing.T) {
	failingRelay := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "invalid access key"}`))
	}
	router := newTestRouter(t, defaultContentHandler, failingRelay, nil)

	rec := postJSON(router, validSubmission)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	// A relay failure must never masquerade as success.
	if strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("failure response claims success: %s", rec.Body.String())
	}
}

func TestContactSubmitProceedsWhenToggleUnavailable(t *testing.T) {
	flaky := func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("query"), "contactInfo") {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		defaultContentHandler(w, r)
	}
	router := newTestRouter(t, flaky, okRelay, nil)

	rec := postJSON(router, validSubmission)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 when only the toggle fetch fails", rec.Code)
	}
}

func TestContactSubmitGetNotAllowed(t *testing.T) {
	router := newTestRouter(t, defaultContentHandler, okRelay, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	if rec.Code == http.StatusOK {
		t.Errorf("GET /api/contact = %d, want a non-200", rec.Code)
	}
}
