package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"frotavistoria-api/config"
)

// EmailService mails drivers the public inspection link. Sending is always
// best effort: the workflow never fails because SMTP is down.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendInspectionLink mails the tokenized form URL to the driver.
func (es *EmailService) SendInspectionLink(email, driverName, token string) error {
	inspectionURL := fmt.Sprintf("%s/inspection/%s", es.config.PublicBaseURL, token)

	htmlBody := fmt.Sprintf(`
		<h2>Vistoria de veículo solicitada</h2>
		<p>Olá %s,</p>
		<p>Uma vistoria foi solicitada para o seu veículo. Preencha o formulário pelo link abaixo:</p>
		<p><a href="%s">%s</a></p>
		<p>O link é pessoal e vale para uma única vistoria.</p>
	`, driverName, inspectionURL, inspectionURL)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Vistoria de veículo solicitada")
	m.SetBody("text/html", htmlBody)

	return es.dialer.DialAndSend(m)
}

// SendInspectionReminder nudges a driver who has not filled the form yet.
func (es *EmailService) SendInspectionReminder(email, driverName, token string) error {
	inspectionURL := fmt.Sprintf("%s/inspection/%s", es.config.PublicBaseURL, token)

	htmlBody := fmt.Sprintf(`
		<h2>Lembrete: vistoria pendente</h2>
		<p>Olá %s,</p>
		<p>A vistoria solicitada para o seu veículo ainda não foi preenchida. Acesse o link:</p>
		<p><a href="%s">%s</a></p>
	`, driverName, inspectionURL, inspectionURL)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Lembrete: vistoria pendente")
	m.SetBody("text/html", htmlBody)

	return es.dialer.DialAndSend(m)
}
