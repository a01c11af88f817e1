package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const fromName = "Fukuro Studio"

var receiptHTML = template.Must(template.New("receipt").Parse(`<!doctype html>
<html><body style="font-family:sans-serif">
<p>{{.Greeting}}</p>
<pre style="font-family:monospace;background:#f6f6f6;padding:12px">{{.Receipt}}</pre>
{{if .Brief}}<p><strong>Brief:</strong> {{.Brief}}</p>{{end}}
{{if .AssetsLink}}<p><a href="{{.AssetsLink}}">Material de referencia</a></p>{{end}}
</body></html>`))

type receiptView struct {
	Greeting   string
	Receipt    string
	Brief      string
	AssetsLink string
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// Studio receives a copy of every submitted quote.
	Studio string
}

// SMTPNotifier mails the quote receipt to the studio and, when known, to the client.
type SMTPNotifier struct {
	client mailSender
	from   string
	studio string
	log    *zap.Logger
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(opts SMTPOptions, log *zap.Logger) (*SMTPNotifier, error) {
	clientOpts := []gomail.Option{
		gomail.WithPort(opts.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(opts.Username),
			gomail.WithPassword(opts.Password),
		)
	}
	client, err := gomail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return newSMTPNotifier(client, opts.From, opts.Studio, log), nil
}

func newSMTPNotifier(client mailSender, from, studio string, log *zap.Logger) *SMTPNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &SMTPNotifier{client: client, from: from, studio: studio, log: log}
}

func (n *SMTPNotifier) NotifyQuoteSubmitted(ctx context.Context, q entities.Quote, receipt string) error {
	msgs, err := n.buildMessages(q, receipt)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}
	if err := n.client.DialAndSendWithContext(ctx, msgs...); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	n.log.Info("[quote][notifier] receipt sent", zap.String("quote_id", q.ID), zap.Int("messages", len(msgs)))
	return nil
}

func (n *SMTPNotifier) buildMessages(q entities.Quote, receipt string) ([]*gomail.Msg, error) {
	var msgs []*gomail.Msg

	if n.studio != "" {
		subject := fmt.Sprintf("Nueva cotización %s: %s", q.Source, q.Request.ProjectName)
		greeting := fmt.Sprintf("Cotización %s recibida de %s <%s>.", q.ID, q.Request.ClientName, q.Request.ClientEmail)
		m, err := n.message(n.studio, subject, greeting, receipt, q.Request)
		if err != nil {
			return nil, err
		}
		if q.Request.ClientEmail != "" {
			if err := m.ReplyTo(q.Request.ClientEmail); err != nil {
				n.log.Warn("[quote][notifier] invalid reply-to", zap.String("quote_id", q.ID), zap.Error(err))
			}
		}
		msgs = append(msgs, m)
	}

	if q.Request.ClientEmail != "" {
		subject := fmt.Sprintf("Tu cotización de Fukuro: %s", q.Request.ProjectName)
		greeting := fmt.Sprintf("Hola %s, gracias por escribirnos. Este es el resumen de tu cotización.", q.Request.ClientName)
		m, err := n.message(q.Request.ClientEmail, subject, greeting, receipt, q.Request)
		if err != nil {
			// A malformed client address must not block the studio copy.
			n.log.Warn("[quote][notifier] skipping client copy", zap.String("quote_id", q.ID), zap.Error(err))
		} else {
			msgs = append(msgs, m)
		}
	}
	return msgs, nil
}

func (n *SMTPNotifier) message(to, subject, greeting, receipt string, req entities.QuoteRequest) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(fromName, n.from); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, greeting+"\n\n"+receipt)

	var html bytes.Buffer
	if err := receiptHTML.Execute(&html, receiptView{
		Greeting:   greeting,
		Receipt:    receipt,
		Brief:      req.Brief,
		AssetsLink: req.AssetsLink,
	}); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	msg.AddAlternativeString(gomail.TypeTextHTML, html.String())
	return msg, nil
}

// LogNotifier stands in for SMTP when no mail server is configured.
type LogNotifier struct {
	log *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyQuoteSubmitted(_ context.Context, q entities.Quote, receipt string) error {
	n.log.Info("[quote][notifier] smtp disabled, receipt logged",
		zap.String("quote_id", q.ID),
		zap.String("client_email", q.Request.ClientEmail),
		zap.String("receipt", receipt))
	return nil
}
