package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"advibes_site/config"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
)

// ContactMessage is a validated, sanitized contact form submission.
// Every text field is already HTML-escaped by Sanitize.
type ContactMessage struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Company      string
	Service      string
	ServiceLabel string
	Message      string
	SubmittedAt  time.Time
}

// Relay hands a contact message to an email delivery service
type Relay interface {
	Send(ctx context.Context, msg *ContactMessage) error
	Name() string
}

// NewRelay picks the relay for cfg. EmailJS is used when all three of its
// identifiers are configured, then Resend when it has a key and test mode is
// off. Otherwise submissions are simulated so the form stays usable locally.
func NewRelay(cfg *config.Config) Relay {
	if cfg.HasEmailJS() {
		log.Println("Email relay: EmailJS")
		return NewEmailJSRelay(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey)
	}
	if !cfg.EmailTestMode && cfg.ResendAPIKey != "" {
		log.Println("Email relay: Resend")
		return NewResendRelay(resend.NewClient(cfg.ResendAPIKey), cfg.EmailFromName, cfg.EmailFrom, cfg.ContactInbox)
	}
	log.Println("[INFO] Email relay not configured, contact submissions will be simulated")
	return NewSimulatedRelay(800 * time.Millisecond)
}

// --- EmailJS ---

var emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type EmailJSRelay struct {
	serviceID  string
	templateID string
	publicKey  string
	endpoint   string
	client     *http.Client
}

func NewEmailJSRelay(serviceID, templateID, publicKey string) *EmailJSRelay {
	return &EmailJSRelay{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		endpoint:   emailJSEndpoint,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *EmailJSRelay) Name() string { return "emailjs" }

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (r *EmailJSRelay) Send(ctx context.Context, msg *ContactMessage) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:  r.serviceID,
		TemplateID: r.templateID,
		UserID:     r.publicKey,
		TemplateParams: map[string]string{
			"reference":  msg.ID,
			"from_name":  msg.Name,
			"from_email": msg.Email,
			"phone":      msg.Phone,
			"company":    msg.Company,
			"service":    msg.ServiceLabel,
			"message":    msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send via emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	log.Printf("Contact message %s sent via EmailJS", msg.ID)
	return nil
}

// --- Resend ---

type ResendRelay struct {
	client   *resend.Client
	fromName string
	from     string
	inbox    string
	policy   *bluemonday.Policy
}

func NewResendRelay(client *resend.Client, fromName, from, inbox string) *ResendRelay {
	return &ResendRelay{
		client:   client,
		fromName: fromName,
		from:     from,
		inbox:    inbox,
		policy:   bluemonday.UGCPolicy(),
	}
}

func (r *ResendRelay) Name() string { return "resend" }

func (r *ResendRelay) Send(ctx context.Context, msg *ContactMessage) error {
	if r.inbox == "" {
		return fmt.Errorf("CONTACT_INBOX not configured")
	}

	email, err := buildContactEmail(msg)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", r.fromName, r.from),
		To:      []string{r.inbox},
		ReplyTo: html.UnescapeString(msg.Email),
		Subject: email.Subject,
		Html:    r.policy.Sanitize(email.HTMLBody),
		Text:    email.TextBody,
	}

	sent, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Contact message %s sent via Resend (ID: %s)", msg.ID, sent.Id)
	return nil
}

// --- Simulated ---

// SimulatedRelay logs the message and waits, standing in for a live relay
// when no credentials are configured.
type SimulatedRelay struct {
	delay time.Duration
}

func NewSimulatedRelay(delay time.Duration) *SimulatedRelay {
	return &SimulatedRelay{delay: delay}
}

func (r *SimulatedRelay) Name() string { return "simulated" }

func (r *SimulatedRelay) Send(ctx context.Context, msg *ContactMessage) error {
	email, err := buildContactEmail(msg)
	if err != nil {
		return err
	}
	logEmailToConsole(email)

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	log.Printf("✅ Contact message %s logged (simulated relay - not actually sent)", msg.ID)
	return nil
}

// Email represents a composed email message
type Email struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// The fields of ContactMessage are already entity-escaped, so the HTML
// template receives them as template.HTML to avoid escaping them twice.
var contactEmailHTML = template.Must(template.New("contact_html").Parse(`<h2>New enquiry from {{.Name}}</h2>
<table>
<tr><td><strong>Reference</strong></td><td>{{.ID}}</td></tr>
<tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
<tr><td><strong>Company</strong></td><td>{{.Company}}</td></tr>
<tr><td><strong>Service</strong></td><td>{{.Service}}</td></tr>
</table>
<p>{{.Message}}</p>
`))

type contactEmailData struct {
	ID      string
	Name    template.HTML
	Email   template.HTML
	Phone   template.HTML
	Company template.HTML
	Service template.HTML
	Message template.HTML
}

func buildContactEmail(msg *ContactMessage) (*Email, error) {
	var buf bytes.Buffer
	err := contactEmailHTML.Execute(&buf, contactEmailData{
		ID:      msg.ID,
		Name:    template.HTML(msg.Name),
		Email:   template.HTML(msg.Email),
		Phone:   template.HTML(msg.Phone),
		Company: template.HTML(msg.Company),
		Service: template.HTML(Sanitize(msg.ServiceLabel)),
		Message: template.HTML(msg.Message),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render contact email: %w", err)
	}

	text := fmt.Sprintf("New enquiry (%s)\n\nName: %s\nEmail: %s\nPhone: %s\nCompany: %s\nService: %s\n\n%s\n",
		msg.ID,
		html.UnescapeString(msg.Name),
		html.UnescapeString(msg.Email),
		html.UnescapeString(msg.Phone),
		html.UnescapeString(msg.Company),
		msg.ServiceLabel,
		html.UnescapeString(msg.Message),
	)

	return &Email{
		Subject:  fmt.Sprintf("New enquiry: %s from %s", msg.ServiceLabel, html.UnescapeString(msg.Name)),
		HTMLBody: buf.String(),
		TextBody: text,
	}, nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 CONTACT EMAIL (Simulated - Not Actually Sent)\n%s", separator, separator)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate cuts s to at most maxLen characters, never splitting a rune
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}
