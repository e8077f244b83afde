package infrastructure

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer sends team-invitation notifications through SendGrid. With no API
// key configured it becomes a no-op so local runs never depend on the mail
// provider.
type Mailer struct {
	client *sendgrid.Client
	sender string
	logger *zap.Logger
}

func NewMailer(apiKey, sender string, logger *zap.Logger) *Mailer {
	m := &Mailer{sender: sender, logger: logger}
	if apiKey == "" {
		logger.Info("SENDGRID_API_KEY not set, mail notifications disabled")
		return m
	}

	masked := ""
	if len(apiKey) > 8 {
		masked = apiKey[:4] + "****" + apiKey[len(apiKey)-4:]
	}
	logger.Info("mailer configured", zap.String("api_key", masked), zap.String("sender", sender))

	m.client = sendgrid.NewSendClient(apiKey)
	return m
}

func (m *Mailer) Enabled() bool {
	return m.client != nil
}

// SendTeamInvite notifies a user they were added to a project team.
func (m *Mailer) SendTeamInvite(recipientEmail, recipientName, projectName, role string) error {
	if m.client == nil {
		return nil
	}

	from := mail.NewEmail("WorkFlowPro", m.sender)
	to := mail.NewEmail(recipientName, recipientEmail)
	subject := fmt.Sprintf("You were added to %s", projectName)
	body := fmt.Sprintf("Hi %s,\n\nYou were added to the project %q as %s.\n\n— WorkFlowPro", recipientName, projectName, role)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := m.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	m.logger.Debug("team invite sent", zap.String("to", recipientEmail), zap.String("project", projectName))
	return nil
}
