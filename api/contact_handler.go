package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rinilkunhiraman/portfolio-2026/content"
	"github.com/rinilkunhiraman/portfolio-2026/errs"
	"github.com/rinilkunhiraman/portfolio-2026/models"
	"github.com/rinilkunhiraman/portfolio-2026/render"
	"github.com/rinilkunhiraman/portfolio-2026/services"
)

// contactHandler accepts contact form submissions and forwards them to the
// relay. A relay failure is always reported to the caller as one; there is no
// fabricated success path.
type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *content.Store
	relay     *services.Relay
}

func newContactHandler(store *content.Store, renderer *render.Renderer, relay *services.Relay) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()
	return contactHandler{
		responder: NewResponder(logger, renderer),
		logger:    logger,
		store:     store,
		relay:     relay,
	}
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseContactForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validateContactForm(form); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// The form toggle lives in the CMS. If the toggle itself cannot be
		// fetched the submission proceeds; a CMS blip should not drop mail.
		info, err := h.store.GetContactInfo(r.Context())
		if err != nil {
			h.logger.Warn().Err(err).Msg("Could not fetch contact settings, accepting submission")
		} else if info != nil && !info.FormEnabled {
			h.responder.WriteError(w, errs.NewBadRequestError("the contact form is currently disabled"))
			return
		}

		relayMessage, err := h.relay.Submit(r.Context(), form)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := "Message sent successfully!"
		if info != nil && info.FormSuccessMessage != "" {
			message = info.FormSuccessMessage
		} else if relayMessage != "" {
			message = relayMessage
		}

		h.responder.WriteJSON(w, http.StatusOK, contactResponse{Success: true, Message: message})
	}
}

// parseContactForm accepts both JSON bodies and classic form posts so the
// endpoint works with and without client-side script.
func parseContactForm(r *http.Request) (models.ContactForm, error) {
	var form models.ContactForm

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return form, errs.NewBadRequestError("could not decode the submission body")
		}
		return form, nil
	}

	if err := r.ParseForm(); err != nil {
		return form, errs.NewBadRequestError("could not parse the submission form")
	}
	form.Name = r.PostFormValue("name")
	form.Email = r.PostFormValue("email")
	form.Subject = r.PostFormValue("subject")
	form.Message = r.PostFormValue("message")
	return form, nil
}

func validateContactForm(form models.ContactForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return errs.NewBadRequestErrorWithField("name", "name is required")
	}
	if strings.TrimSpace(form.Email) == "" {
		return errs.NewBadRequestErrorWithField("email", "email is required")
	}
	if !strings.Contains(form.Email, "@") {
		return errs.NewBadRequestErrorWithField("email", "email must be a valid address")
	}
	if strings.TrimSpace(form.Subject) == "" {
		return errs.NewBadRequestErrorWithField("subject", "subject is required")
	}
	if strings.TrimSpace(form.Message) == "" {
		return errs.NewBadRequestErrorWithField("message", "message is required")
	}
	return nil
}
