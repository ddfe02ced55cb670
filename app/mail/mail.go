// Package mail sends notification emails (fee receipts). The console
// backend is the default; sendgrid is used when a key is configured.
package mail

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Service is any service that can send emails.
type Service interface {
	Send(msg Message) error
}
