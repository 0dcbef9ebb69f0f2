package smtp

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"golang-connect-discord/configs"
	"golang-connect-discord/internal/domain"
	"golang-connect-discord/internal/ports/output"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

// Compile-time check to ensure MailerAdapter implements Mailer interface
var _ output.Mailer = (*MailerAdapter)(nil)

// MailerAdapter struct - Output adapter delivering order mails over SMTP
type MailerAdapter struct {
	client *mail.Client
	from   string
	to     string
}

// NewMailerAdapter func - Creates new SMTP mailer adapter
func NewMailerAdapter(cfg configs.Mail) (*MailerAdapter, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	logrus.Infof("SMTP mailer adapter initialized with host: %s:%d", cfg.Host, cfg.Port)

	return &MailerAdapter{
		client: client,
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

// SendOrder - Composes and delivers the order notification mail, including
// the image attachment when present. A transport failure aborts the whole
// operation, there is no retry.
func (a *MailerAdapter) SendOrder(ctx context.Context, order *domain.Order) error {
	msg, err := a.buildMessage(order)
	if err != nil {
		return err
	}

	if err := a.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send order mail: %w", err)
	}

	logrus.Infof("Order mail %s delivered to %s", order.Reference, a.to)

	return nil
}

// buildMessage composes the outbound message from the order record
func (a *MailerAdapter) buildMessage(order *domain.Order) (*mail.Msg, error) {
	body, err := renderOrderBody(order)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(a.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(a.to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("New bot order from %s", order.Customer.DisplayTag()))
	msg.SetBodyString(mail.TypeTextHTML, body)

	if order.Attachment != nil {
		if err := msg.AttachReader(order.Attachment.Filename, bytes.NewReader(order.Attachment.Content)); err != nil {
			return nil, fmt.Errorf("failed to attach order image: %w", err)
		}
	}

	return msg, nil
}

// orderBodyTemplate keeps the layout of the original notification mail.
// User supplied fields are escaped by html/template.
const orderBodyTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .header { background: linear-gradient(135deg, #5865F2, #7289DA); color: white; padding: 30px; text-align: center; border-radius: 10px; }
    .content { background: #f9f9f9; padding: 30px; margin-top: 20px; border-radius: 10px; }
    .info-box { background: white; padding: 15px; margin: 10px 0; border-left: 4px solid #5865F2; border-radius: 5px; }
    .order-text { background: white; padding: 20px; margin: 15px 0; border-radius: 5px; border: 2px solid #e0e0e0; white-space: pre-wrap; }
  </style>
</head>
<body>
  <div class="header">
    <h1>New bot order</h1>
  </div>

  <div class="content">
    <h2>Customer</h2>

    <div class="info-box">
      <strong>Discord:</strong> {{.Customer.DisplayTag}}
    </div>

    <div class="info-box">
      <strong>Discord ID:</strong> {{.Customer.ID}}
    </div>

    <div class="info-box">
      <strong>Email:</strong> {{if .Customer.Email}}{{.Customer.Email}}{{else}}No email{{end}}
    </div>
{{if .Age}}
    <div class="info-box">
      <strong>Age:</strong> {{.Age}}
    </div>
{{end}}{{if .Description}}
    <h2>Bot description</h2>
    <div class="order-text">{{.Description}}</div>
{{end}}{{if .Features}}
    <h2>Requested features</h2>
    <div class="order-text">{{.Features}}</div>
{{end}}{{if .OptionalMessage}}
    <h2>Message</h2>
    <div class="order-text">{{.OptionalMessage}}</div>
{{end}}{{if .RulesAccepted}}
    <p style="background: #e3f2fd; padding: 15px; border-radius: 5px;">
      Customer accepted the Discord rules
    </p>
{{end}}
    <div class="info-box">
      <strong>Submitted:</strong> {{.SubmittedAt.Format "2006-01-02 15:04:05"}}
    </div>

    <div class="info-box">
      <strong>Reference:</strong> {{.Reference}}
    </div>
  </div>
</body>
</html>`

var orderBodyTmpl = template.Must(template.New("order").Parse(orderBodyTemplate))

// renderOrderBody renders the HTML mail body for the order record
func renderOrderBody(order *domain.Order) (string, error) {
	var buf bytes.Buffer
	if err := orderBodyTmpl.Execute(&buf, order); err != nil {
		return "", fmt.Errorf("failed to render order mail body: %w", err)
	}
	return buf.String(), nil
}
