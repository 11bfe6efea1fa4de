package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"advibes_site/config"
	"advibes_site/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactFixture struct {
	svc   *ContactService
	relay *fakeRelay
	clock *fakeClock
	store *MemoryStore
}

func newContactFixture(t *testing.T, cfg *config.Config) *contactFixture {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{RateLimitMax: 3, RateLimitWindow: time.Minute}
	}
	clock := newFakeClock()
	store := NewMemoryStore()
	relay := &fakeRelay{}
	limiter := NewRateLimiter(store, clock, nil)
	return &contactFixture{
		svc:   NewContactService(cfg, relay, limiter, clock, nil),
		relay: relay,
		clock: clock,
		store: store,
	}
}

func filledForm() FormState {
	s := NewFormState()
	for f, v := range validValues() {
		s = Edit(s, f, v)
	}
	return s
}

func TestNewFormState(t *testing.T) {
	s := NewFormState()
	assert.Equal(t, StatusEditing, s.Status)
	assert.False(t, s.HasErrors())
	assert.Len(t, s.Values, len(ContactFields))
	assert.False(t, s.BannerVisible(time.Now()))
}

func TestEditClearsFieldError(t *testing.T) {
	s := Blur(NewFormState(), FieldEmail)
	require.Equal(t, "Email is required", s.Errors[FieldEmail])

	next := Edit(s, FieldEmail, "a")
	assert.NotContains(t, next.Errors, FieldEmail)
	assert.Equal(t, "a", next.Values[FieldEmail])

	// the input state is untouched
	assert.Equal(t, "Email is required", s.Errors[FieldEmail])
	assert.Empty(t, s.Values[FieldEmail])
}

func TestBlur(t *testing.T) {
	s := Edit(NewFormState(), FieldEmail, "not-an-email")
	s = Blur(s, FieldEmail)
	assert.Equal(t, "Invalid email format", s.Errors[FieldEmail])
	assert.Equal(t, StatusEditing, s.Status)

	s = Edit(s, FieldEmail, "asha@example.com")
	s = Blur(s, FieldEmail)
	assert.NotContains(t, s.Errors, FieldEmail)

	// blurring one field does not validate the others
	assert.NotContains(t, s.Errors, FieldName)
}

func TestSubmitInvalidForm(t *testing.T) {
	fx := newContactFixture(t, nil)

	s := Edit(NewFormState(), FieldName, "Asha")
	next := fx.svc.Submit(context.Background(), s, Submission{})

	assert.Equal(t, StatusEditing, next.Status)
	assert.NotContains(t, next.Errors, FieldName)
	assert.Equal(t, "Email is required", next.Errors[FieldEmail])
	assert.Equal(t, "Message is required", next.Errors[FieldMessage])
	assert.Zero(t, fx.relay.calls)
	assert.False(t, next.BannerVisible(fx.clock.Now()))

	// nothing was counted against the rate limit
	_, found, _ := fx.store.Get("rate_limit_contact_form")
	assert.False(t, found)
}

func TestSubmitHoneypot(t *testing.T) {
	fx := newContactFixture(t, nil)

	next := fx.svc.Submit(context.Background(), filledForm(), Submission{Honeypot: "http://spam.example"})

	assert.Equal(t, StatusFailed, next.Status)
	assert.Zero(t, fx.relay.calls)
	assert.False(t, next.BannerVisible(fx.clock.Now()))
	assert.Equal(t, "Asha Rao", next.Values[FieldName])
}

func TestSubmitSuccess(t *testing.T) {
	fx := newContactFixture(t, nil)

	next := fx.svc.Submit(context.Background(), filledForm(), Submission{ClientID: "203.0.113.7"})

	require.Equal(t, StatusSuccess, next.Status)
	require.Equal(t, 1, fx.relay.calls)

	msg := fx.relay.sent[0]
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Asha Rao", msg.Name)
	assert.Equal(t, "ad-films", msg.Service)
	assert.Equal(t, "Ad Films", msg.ServiceLabel)
	assert.Equal(t, fx.clock.Now(), msg.SubmittedAt)

	for _, f := range ContactFields {
		assert.Empty(t, next.Values[f], "field %s should be cleared", f)
	}
	assert.False(t, next.HasErrors())
	assert.Equal(t, BannerSuccess, next.Banner.Kind)
	assert.Equal(t, MsgSent, next.Banner.Message)
	assert.True(t, next.BannerVisible(fx.clock.Now()))

	// the banner disappears after five seconds
	fx.clock.Advance(4 * time.Second)
	assert.True(t, Tick(next, fx.clock.Now()).BannerVisible(fx.clock.Now()))
	fx.clock.Advance(time.Second)
	cleared := Tick(next, fx.clock.Now())
	assert.Empty(t, cleared.Banner.Message)
	assert.Equal(t, StatusSuccess, cleared.Status)

	_, found, _ := fx.store.Get("rate_limit_contact_form:203.0.113.7")
	assert.True(t, found)
}

func TestSubmitSanitizesBeforeRelay(t *testing.T) {
	fx := newContactFixture(t, nil)

	s := Edit(filledForm(), FieldMessage, "<script>alert('x')</script>")
	next := fx.svc.Submit(context.Background(), s, Submission{})

	require.Equal(t, StatusSuccess, next.Status)
	assert.Equal(t, "&lt;script&gt;alert(&#x27;x&#x27;)&lt;&#x2F;script&gt;", fx.relay.sent[0].Message)
}

func TestSubmitRateLimited(t *testing.T) {
	fx := newContactFixture(t, nil)
	sub := Submission{ClientID: "198.51.100.1"}

	for i := 0; i < 3; i++ {
		next := fx.svc.Submit(context.Background(), filledForm(), sub)
		require.Equal(t, StatusSuccess, next.Status)
	}

	next := fx.svc.Submit(context.Background(), filledForm(), sub)
	assert.Equal(t, StatusFailed, next.Status)
	assert.Equal(t, BannerError, next.Banner.Kind)
	assert.Equal(t, MsgRateLimited, next.Banner.Message)
	assert.Equal(t, "Asha Rao", next.Values[FieldName])
	assert.Equal(t, 3, fx.relay.calls)

	// another visitor is unaffected
	other := fx.svc.Submit(context.Background(), filledForm(), Submission{ClientID: "198.51.100.2"})
	assert.Equal(t, StatusSuccess, other.Status)

	// and the first one recovers once the window has passed
	fx.clock.Advance(time.Minute + time.Second)
	again := fx.svc.Submit(context.Background(), filledForm(), sub)
	assert.Equal(t, StatusSuccess, again.Status)
}

func TestSubmitRelayFailure(t *testing.T) {
	fx := newContactFixture(t, nil)
	fx.relay.err = errors.New("connection reset")

	next := fx.svc.Submit(context.Background(), filledForm(), Submission{})

	assert.Equal(t, StatusFailed, next.Status)
	assert.Equal(t, MsgSendFailed, next.Banner.Message)
	assert.NotContains(t, next.Banner.Message, "connection reset")
	assert.Equal(t, validValues()[FieldMessage], next.Values[FieldMessage])

	// the banner stays until the next transition
	fx.clock.Advance(time.Hour)
	assert.True(t, Tick(next, fx.clock.Now()).BannerVisible(fx.clock.Now()))
}

func TestSubmitCaptcha(t *testing.T) {
	cfg := &config.Config{RateLimitMax: 3, RateLimitWindow: time.Minute, TurnstileSecretKey: "secret"}

	t.Run("Rejected", func(t *testing.T) {
		fx := newContactFixture(t, cfg)
		fx.svc.verifyCaptcha = func(ctx context.Context, token, secret, ip string) (bool, error) {
			return false, errors.New("invalid-input-response")
		}

		next := fx.svc.Submit(context.Background(), filledForm(), Submission{CaptchaToken: "bad"})
		assert.Equal(t, StatusFailed, next.Status)
		assert.Equal(t, MsgCaptcha, next.Banner.Message)
		assert.Zero(t, fx.relay.calls)
	})

	t.Run("Accepted", func(t *testing.T) {
		fx := newContactFixture(t, cfg)
		var gotToken, gotIP string
		fx.svc.verifyCaptcha = func(ctx context.Context, token, secret, ip string) (bool, error) {
			gotToken, gotIP = token, ip
			return true, nil
		}

		next := fx.svc.Submit(context.Background(), filledForm(), Submission{CaptchaToken: "ok", RemoteIP: "192.0.2.4"})
		assert.Equal(t, StatusSuccess, next.Status)
		assert.Equal(t, "ok", gotToken)
		assert.Equal(t, "192.0.2.4", gotIP)
	})
}

func TestSubmitRecordsMetrics(t *testing.T) {
	m := metrics.New("test")
	clock := newFakeClock()
	cfg := &config.Config{RateLimitMax: 1, RateLimitWindow: time.Minute}
	svc := NewContactService(cfg, &fakeRelay{}, NewRateLimiter(NewMemoryStore(), clock, m), clock, m)

	svc.Submit(context.Background(), filledForm(), Submission{})
	svc.Submit(context.Background(), filledForm(), Submission{})
	svc.Submit(context.Background(), NewFormState(), Submission{})

	out, err := testutil.GatherAndCount(m.Gatherer(), "test_contact_submissions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, out)
}

func TestSubmitReportsRejectionsToMonitor(t *testing.T) {
	fx := newContactFixture(t, nil)
	monitor := NewAbuseMonitor(fx.clock)
	fx.svc.WithMonitor(monitor)

	for i := 0; i < DefaultAbuseThreshold; i++ {
		fx.svc.Submit(context.Background(), filledForm(), Submission{Honeypot: "x", RemoteIP: "198.51.100.7"})
	}

	alerts := monitor.RecentAlerts()
	if assert.Len(t, alerts, 1) {
		assert.Equal(t, "198.51.100.7", alerts[0].Client)
		assert.Equal(t, "honeypot", alerts[0].Reason)
	}
	assert.Equal(t, 0, fx.relay.calls)
}
