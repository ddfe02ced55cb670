package mail

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Nayan-navghane/School-application/app/apperr"
)

type Sendgrid struct {
	key       string
	from      *sgmail.Email
	subjPrefx string
}

var _ Service = (*Sendgrid)(nil)

func NewSendgrid(key, appName, fromEmail string) *Sendgrid {
	return &Sendgrid{
		key:       key,
		from:      sgmail.NewEmail(appName, fromEmail),
		subjPrefx: "[" + appName + "] ",
	}
}

func (s *Sendgrid) Send(msg Message) error {
	to := sgmail.NewEmail("", msg.To)
	m := sgmail.NewSingleEmail(s.from, s.subjPrefx+msg.Subject, to, msg.TextBody, msg.HTMLBody)

	client := sendgrid.NewSendClient(s.key)
	resp, err := client.Send(m)
	if err != nil {
		return apperr.Collaborator("send email", err)
	}
	if resp.StatusCode >= 400 {
		return apperr.Collaborator("send email", fmt.Errorf("sendgrid status %d", resp.StatusCode))
	}
	return nil
}
