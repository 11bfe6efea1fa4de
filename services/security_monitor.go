package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// Abuse monitor defaults
const (
	DefaultAbuseThreshold = 5
	DefaultAbuseWindow    = 10 * time.Minute
	DefaultAlertCooldown  = time.Hour
	maxAbuseAlerts        = 100
)

// AbuseAlert is raised when one client keeps getting rejected by the
// contact form's bot and flood checks
type AbuseAlert struct {
	Timestamp time.Time
	Client    string
	Reason    string
	Count     int
}

// AbuseMonitor counts rejected contact attempts per client and logs an
// alert once a client crosses the threshold inside the window. Alerts for
// the same client are held back for the cooldown. A nil *AbuseMonitor
// tracks nothing.
type AbuseMonitor struct {
	mu        sync.Mutex
	clock     Clock
	threshold int
	window    time.Duration
	cooldown  time.Duration

	events  map[string][]time.Time
	alerted map[string]time.Time
	alerts  []AbuseAlert // newest first
}

func NewAbuseMonitor(clock Clock) *AbuseMonitor {
	if clock == nil {
		clock = SystemClock
	}
	return &AbuseMonitor{
		clock:     clock,
		threshold: DefaultAbuseThreshold,
		window:    DefaultAbuseWindow,
		cooldown:  DefaultAlertCooldown,
		events:    make(map[string][]time.Time),
		alerted:   make(map[string]time.Time),
	}
}

// Track records a rejected attempt from client and reports whether it
// raised a new alert
func (m *AbuseMonitor) Track(client, reason string) bool {
	if m == nil || client == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	windowStart := now.Add(-m.window)

	recent := m.events[client][:0]
	for _, t := range m.events[client] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)
	m.events[client] = recent

	if len(recent) < m.threshold {
		return false
	}
	if last, ok := m.alerted[client]; ok && now.Sub(last) < m.cooldown {
		return false
	}
	m.alerted[client] = now

	alert := AbuseAlert{Timestamp: now, Client: client, Reason: reason, Count: len(recent)}
	m.alerts = append([]AbuseAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAbuseAlerts {
		m.alerts = m.alerts[:maxAbuseAlerts]
	}

	log.Printf("[SECURITY ALERT] %d rejected contact attempts from %s in %s (last: %s)", alert.Count, client, m.window, reason)
	return true
}

// RecentAlerts returns a copy of the alert history, newest first
func (m *AbuseMonitor) RecentAlerts() []AbuseAlert {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	alerts := make([]AbuseAlert, len(m.alerts))
	copy(alerts, m.alerts)
	return alerts
}

// Run prunes stale state every interval until ctx is done
func (m *AbuseMonitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.prune()
		}
	}
}

func (m *AbuseMonitor) prune() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	for client, attempts := range m.events {
		if len(attempts) == 0 || now.Sub(attempts[len(attempts)-1]) > m.window {
			delete(m.events, client)
		}
	}
	for client, last := range m.alerted {
		if now.Sub(last) > m.cooldown {
			delete(m.alerted, client)
		}
	}
}
