package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/rinilkunhiraman/portfolio-2026/errs"
	"github.com/rinilkunhiraman/portfolio-2026/models"
)

const defaultRelayEndpoint = "https://api.web3forms.com/submit"

// relayRequest is the payload the form relay expects.
type relayRequest struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Relay forwards contact submissions to the external form relay. The relay's
// contract: success only when the response is 2xx JSON carrying
// `success: true`. Anything else is a failure and is always reported as one;
// fabricating success to avoid blocking the user is explicitly not done here.
type Relay struct {
	endpoint   string
	accessKey  string
	httpClient *http.Client
}

// NewRelay builds a relay client. An empty endpoint selects the default
// public relay; the access key may be empty, in which case every submission
// fails fast with a configuration error.
func NewRelay(endpoint, accessKey string) *Relay {
	if endpoint == "" {
		endpoint = defaultRelayEndpoint
	}
	return &Relay{
		endpoint:  endpoint,
		accessKey: accessKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Submit forwards one contact form to the relay and returns the relay's
// message on success.
func (r *Relay) Submit(ctx context.Context, form models.ContactForm) (string, error) {
	if r.accessKey == "" {
		return "", errs.NewConfigurationError("RELAY_ACCESS_KEY")
	}

	payload, err := json.Marshal(relayRequest{
		AccessKey: r.accessKey,
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
	})
	if err != nil {
		return "", errs.NewSubmissionError("could not encode submission", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errs.NewSubmissionError("could not build relay request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", errs.NewSubmissionError("could not reach the form relay", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewSubmissionError("could not read the relay response", err)
	}

	// Non-2xx responses are failures regardless of body shape.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Msg("form relay rejected submission")
		return "", errs.NewSubmissionError("the form relay rejected the submission", nil)
	}

	if !gjson.ValidBytes(body) {
		return "", errs.NewSubmissionError("the form relay returned a malformed response", nil)
	}

	if !gjson.GetBytes(body, "success").Bool() {
		reason := gjson.GetBytes(body, "message").String()
		if reason == "" {
			reason = "the form relay reported a failure"
		}
		return "", errs.NewSubmissionError(reason, nil)
	}

	message := gjson.GetBytes(body, "message").String()
	log.Info().Msg("contact submission forwarded to relay")
	return message, nil
}
