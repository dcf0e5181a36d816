package contact

// Submission is one message sent through the contact form. It is recorded
// for the session only; there is no outbound delivery behind it.
type Submission struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Message     string `json:"message"`
	Subscribe   bool   `json:"subscribe"`
	SubmittedAt string `json:"submittedAt"`
}
