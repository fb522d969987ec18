package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Mailer sends transactional mail over SMTP. It disables itself when the
// SMTP environment variables are missing so local development needs no mail
// server.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	enabled  bool
	log      zerolog.Logger
}

func NewMailer(log zerolog.Logger) *Mailer {
	m := &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASS"),
		from:     os.Getenv("SMTP_FROM"),
		log:      log,
	}
	m.enabled = m.host != "" && m.port != "" && m.username != "" && m.password != "" && m.from != ""
	if !m.enabled {
		log.Warn().Msg("mailer disabled: missing SMTP environment variables")
	}
	return m
}

func (m *Mailer) sendAsync(to []string, subject, body string) {
	if !m.enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		addr := fmt.Sprintf("%s:%s", m.host, m.port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: TuriApp <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), m.from, subject, mime, body))

		if err := smtp.SendMail(addr, auth, m.from, to, msg); err != nil {
			m.log.Error().Err(err).Strs("to", to).Msg("email send failed")
			return
		}
		m.log.Info().Strs("to", to).Str("subject", subject).Msg("email sent")
	}()
}

// SendWelcomeEmail greets a freshly registered user.
func (m *Mailer) SendWelcomeEmail(email, username string) {
	body := fmt.Sprintf("<p>Hola %s,</p><p>Tu cuenta de TuriApp está lista. ¡Empieza a descubrir lugares!</p>", username)
	m.sendAsync([]string{email}, "Bienvenido a TuriApp", body)
}

// SendPasswordResetEmail delivers the reset token. The token is only ever
// sent here, never in an API response.
func (m *Mailer) SendPasswordResetEmail(email, token string) {
	body := fmt.Sprintf("<p>Usa este código para restablecer tu contraseña. Caduca en 15 minutos.</p><p><code>%s</code></p><p>Si no solicitaste el cambio, ignora este mensaje.</p>", token)
	m.sendAsync([]string{email}, "Restablecer tu contraseña de TuriApp", body)
}
