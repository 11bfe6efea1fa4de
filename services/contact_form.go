package services

import (
	"context"
	"log"
	"time"

	"advibes_site/config"
	"advibes_site/content"
	"advibes_site/metrics"

	"github.com/google/uuid"
)

// FormStatus is the state of the contact form
type FormStatus string

const (
	StatusEditing    FormStatus = "editing"
	StatusValidating FormStatus = "validating"
	StatusSubmitting FormStatus = "submitting"
	StatusSuccess    FormStatus = "success"
	StatusFailed     FormStatus = "failed"
)

// Banner messages shown above the form. None of them carry internal detail.
const (
	MsgSent        = "Thank you! Your message has been sent. We'll get back to you shortly."
	MsgRateLimited = "Too many submissions. Please try again later."
	MsgSendFailed  = "We couldn't send your message right now. Please try again later."
	MsgCaptcha     = "Please complete the verification and try again."
)

// DefaultBannerTTL is how long the success banner stays up
const DefaultBannerTTL = 5 * time.Second

type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is the form-level message. A zero Banner is not shown.
type Banner struct {
	Kind      BannerKind
	Message   string
	ExpiresAt time.Time // zero means it stays until the next transition
}

// FormState is the contact form's values, per-field errors, status and
// banner. Transitions never mutate their input state.
type FormState struct {
	Values map[Field]string
	Errors map[Field]string
	Status FormStatus
	Banner Banner
}

// NewFormState returns an empty form in the editing state
func NewFormState() FormState {
	values := make(map[Field]string, len(ContactFields))
	for _, f := range ContactFields {
		values[f] = ""
	}
	return FormState{
		Values: values,
		Errors: map[Field]string{},
		Status: StatusEditing,
	}
}

func (s FormState) clone() FormState {
	next := FormState{
		Values: make(map[Field]string, len(s.Values)),
		Errors: make(map[Field]string, len(s.Errors)),
		Status: s.Status,
		Banner: s.Banner,
	}
	for k, v := range s.Values {
		next.Values[k] = v
	}
	for k, v := range s.Errors {
		next.Errors[k] = v
	}
	return next
}

// HasErrors reports whether any field currently carries an error
func (s FormState) HasErrors() bool {
	return len(s.Errors) > 0
}

// BannerVisible reports whether the banner should still be displayed at now
func (s FormState) BannerVisible(now time.Time) bool {
	if s.Banner.Message == "" {
		return false
	}
	return s.Banner.ExpiresAt.IsZero() || now.Before(s.Banner.ExpiresAt)
}

// Edit records a new value for field and clears that field's error
// immediately, before it is re-validated.
func Edit(s FormState, field Field, value string) FormState {
	next := s.clone()
	next.Values[field] = value
	delete(next.Errors, field)
	next.Status = StatusEditing
	return next
}

// Blur validates a single field, as when it loses focus
func Blur(s FormState, field Field) FormState {
	next := s.clone()
	next.Status = StatusValidating

	if res := ValidateField(field, next.Values[field]); res.Valid {
		delete(next.Errors, field)
	} else {
		next.Errors[field] = res.Error
	}

	next.Status = StatusEditing
	return next
}

// Tick clears the banner once it has expired
func Tick(s FormState, now time.Time) FormState {
	if s.Banner.Message == "" || s.BannerVisible(now) {
		return s
	}
	next := s.clone()
	next.Banner = Banner{}
	return next
}

// Submission carries the request-level inputs of a submit attempt
type Submission struct {
	Honeypot     string // hidden field; bots fill it in
	ClientID     string // scopes the rate-limit key, e.g. the client IP
	CaptchaToken string
	RemoteIP     string
}

// CaptchaVerifier checks a CAPTCHA token, see VerifyTurnstileToken
type CaptchaVerifier func(ctx context.Context, token, secretKey, ip string) (bool, error)

// ContactService runs submit attempts through validation, bot checks, rate
// limiting and the email relay.
type ContactService struct {
	relay   Relay
	limiter *RateLimiter
	clock   Clock
	metrics *metrics.Manager

	rateLimitKey string
	maxAttempts  int
	window       time.Duration
	bannerTTL    time.Duration

	captchaSecret string
	verifyCaptcha CaptchaVerifier

	monitor *AbuseMonitor
}

// Contact is the global contact service instance
var Contact *ContactService

func NewContactService(cfg *config.Config, relay Relay, limiter *RateLimiter, clock Clock, m *metrics.Manager) *ContactService {
	if clock == nil {
		clock = SystemClock
	}
	key := cfg.RateLimitKey
	if key == "" {
		key = config.DefaultRateLimitKey
	}
	return &ContactService{
		relay:         relay,
		limiter:       limiter,
		clock:         clock,
		metrics:       m,
		rateLimitKey:  key,
		maxAttempts:   cfg.RateLimitMax,
		window:        cfg.RateLimitWindow,
		bannerTTL:     DefaultBannerTTL,
		captchaSecret: cfg.TurnstileSecretKey,
		verifyCaptcha: VerifyTurnstileToken,
	}
}

// WithMonitor reports rejected attempts to m
func (cs *ContactService) WithMonitor(m *AbuseMonitor) *ContactService {
	cs.monitor = m
	return cs
}

// Now returns the service clock's current time
func (cs *ContactService) Now() time.Time {
	return cs.clock.Now()
}

// ValidateOnBlur validates one field and records the failure metric
func (cs *ContactService) ValidateOnBlur(s FormState, field Field) FormState {
	next := Blur(s, field)
	if msg, bad := next.Errors[field]; bad && msg != "" {
		cs.metrics.ObserveFieldError(string(field))
	}
	return next
}

func (cs *ContactService) limiterKey(sub Submission) string {
	if sub.ClientID == "" {
		return cs.rateLimitKey
	}
	return cs.rateLimitKey + ":" + sub.ClientID
}

// Submit attempts to send the form. Submission reaches the relay only when
// every field is valid, the honeypot is empty, the CAPTCHA (if configured)
// passes and the rate limiter allows it. A successful send resets the
// fields; every failure keeps them so the visitor can retry.
func (cs *ContactService) Submit(ctx context.Context, s FormState, sub Submission) FormState {
	next := s.clone()
	next.Banner = Banner{}
	next.Status = StatusValidating

	sanitized, errs := ValidateContactForm(next.Values)
	if len(errs) > 0 {
		next.Errors = errs
		next.Status = StatusEditing
		for field := range errs {
			cs.metrics.ObserveFieldError(string(field))
		}
		cs.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return next
	}
	next.Errors = map[Field]string{}

	// Silently drop bot submissions; the visitor sees no banner at all.
	if sub.Honeypot != "" {
		log.Printf("[SECURITY] Contact form honeypot triggered from %s, dropping submission", sub.RemoteIP)
		cs.metrics.ObserveSubmission(metrics.OutcomeHoneypot)
		cs.monitor.Track(sub.RemoteIP, metrics.OutcomeHoneypot)
		next.Status = StatusFailed
		return next
	}

	if cs.captchaSecret != "" {
		ok, err := cs.verifyCaptcha(ctx, sub.CaptchaToken, cs.captchaSecret, sub.RemoteIP)
		if err != nil || !ok {
			log.Printf("[SECURITY] Contact form CAPTCHA failed from %s: %v", sub.RemoteIP, err)
			cs.metrics.ObserveSubmission(metrics.OutcomeCaptcha)
			cs.monitor.Track(sub.RemoteIP, metrics.OutcomeCaptcha)
			next.Status = StatusFailed
			next.Banner = Banner{Kind: BannerError, Message: MsgCaptcha}
			return next
		}
	}

	key := cs.limiterKey(sub)
	if !cs.limiter.CheckRateLimit(key, cs.maxAttempts, cs.window) {
		log.Printf("[SECURITY] Contact form rate limit exceeded for %s, retry after %s", key, cs.limiter.RetryAfter(key))
		cs.metrics.ObserveSubmission(metrics.OutcomeRateLimited)
		cs.monitor.Track(sub.RemoteIP, metrics.OutcomeRateLimited)
		next.Status = StatusFailed
		next.Banner = Banner{Kind: BannerError, Message: MsgRateLimited}
		return next
	}

	next.Status = StatusSubmitting
	msg := &ContactMessage{
		ID:           uuid.New().String(),
		Name:         sanitized[FieldName],
		Email:        sanitized[FieldEmail],
		Phone:        sanitized[FieldPhone],
		Company:      sanitized[FieldCompany],
		Service:      sanitized[FieldService],
		ServiceLabel: content.ServiceLabel(sanitized[FieldService]),
		Message:      sanitized[FieldMessage],
		SubmittedAt:  cs.clock.Now(),
	}

	started := time.Now()
	err := cs.relay.Send(ctx, msg)
	cs.metrics.ObserveRelay(cs.relay.Name(), time.Since(started))
	if err != nil {
		log.Printf("Error sending contact message %s via %s: %v", msg.ID, cs.relay.Name(), err)
		cs.metrics.ObserveSubmission(metrics.OutcomeRelayFailed)
		next.Status = StatusFailed
		next.Banner = Banner{Kind: BannerError, Message: MsgSendFailed}
		return next
	}

	cs.metrics.ObserveSubmission(metrics.OutcomeSent)
	log.Printf("Contact message %s accepted (%s)", msg.ID, msg.ServiceLabel)

	done := NewFormState()
	done.Status = StatusSuccess
	done.Banner = Banner{
		Kind:      BannerSuccess,
		Message:   MsgSent,
		ExpiresAt: cs.clock.Now().Add(cs.bannerTTL),
	}
	return done
}
