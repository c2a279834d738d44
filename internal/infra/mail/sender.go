package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const newLeadTemplate = `
<html>
  <body>
    <h2>New lead: {{.LeadName}}</h2>
    <p>A new inquiry just came in.</p>
    <ul>
      <li><b>Email:</b> {{.Email}}</li>
      <li><b>Treatment:</b> {{.TreatmentType}}</li>
      <li><b>Source:</b> {{.Source}}</li>
    </ul>
    <p>Open the pipeline to triage it.</p>
  </body>
</html>
`

func NewEmailSender(host string, port int, user, password, intakeInbox string) *EmailSender {
	return &EmailSender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		IntakeInbox: intakeInbox,
	}
}

func (s *EmailSender) SendNewLeadNotification(leadName, email, treatmentType, source string) error {
	data := newLeadEmailData{
		LeadName:      leadName,
		Email:         email,
		TreatmentType: treatmentType,
		Source:        source,
	}

	t, err := template.New("new_lead").Parse(newLeadTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@neuroclinic.example")
	m.SetHeader("To", s.IntakeInbox)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s (%s)", leadName, treatmentType))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
