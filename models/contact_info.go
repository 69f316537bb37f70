package models

// ContactInfo is the singleton holding contact-section copy and the form
// enable flag with its message templates.
type ContactInfo struct {
	ID                     string  `json:"_id"`
	Title                  string  `json:"title,omitempty"`
	Subtitle               string  `json:"subtitle,omitempty"`
	Description            []Block `json:"description,omitempty"`
	Email                  string  `json:"email"`
	Phone                  string  `json:"phone,omitempty"`
	Location               string  `json:"location,omitempty"`
	Availability           string  `json:"availability,omitempty"`
	PreferredContactMethod string  `json:"preferredContactMethod,omitempty"`
	ResponseTime           string  `json:"responseTime,omitempty"`
	FormEnabled            bool    `json:"formEnabled"`
	FormSuccessMessage     string  `json:"formSuccessMessage,omitempty"`
	FormErrorMessage       string  `json:"formErrorMessage,omitempty"`
}

// ContactForm is the submission payload posted by the contact page.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
