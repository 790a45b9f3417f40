// Package audit provides personal-data access logging with automatic PII masking.
// It wraps txova-go-core/logging with access event types and severity levels.
package audit

import (
	"context"
	"time"

	"github.com/Dorico-Dynamics/txova-go-core/logging"

	"github.com/Dorico-Dynamics/txova-go-krformat/mask"
)

// EventType represents the type of personal-data event.
type EventType string

// Personal-data event types.
const (
	EventPIIViewed            EventType = "PII_VIEWED"
	EventPIIExported          EventType = "PII_EXPORTED"
	EventPIIUpdated           EventType = "PII_UPDATED"
	EventIdentityVerified     EventType = "IDENTITY_VERIFIED"
	EventIdentityVerifyFailed EventType = "IDENTITY_VERIFY_FAILED"
	EventBulkExport           EventType = "BULK_EXPORT"
)

// Severity represents the severity level of an event.
type Severity string

// Severity levels.
const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityAlert Severity = "ALERT"
)

// defaultSeverity maps event types to their default severity.
var defaultSeverity = map[EventType]Severity{
	EventPIIViewed:            SeverityInfo,
	EventPIIExported:          SeverityWarn,
	EventPIIUpdated:           SeverityInfo,
	EventIdentityVerified:     SeverityInfo,
	EventIdentityVerifyFailed: SeverityWarn,
	EventBulkExport:           SeverityAlert,
}

// Event represents an access to someone's personal data.
// ActorID is the operator performing the access; the remaining identity
// fields describe the data subject and are masked before logging.
type Event struct {
	Type        EventType
	Severity    Severity
	ActorID     string
	SubjectName string
	Phone       string
	Email       string
	RRN         string
	Card        string
	IPAddress   string
	Timestamp   time.Time
	Details     map[string]any
}

// AlertHandler is called for events with ALERT severity.
type AlertHandler interface {
	Handle(ctx context.Context, event Event) error
}

// noopAlertHandler is the default no-op handler.
type noopAlertHandler struct{}

func (noopAlertHandler) Handle(_ context.Context, _ Event) error {
	return nil
}

// Logger provides access logging with automatic PII masking.
type Logger struct {
	logger         *logging.Logger
	alertHandler   AlertHandler
	masker         *mask.Masker
	fingerprintKey []byte
}

// Option is a functional option for configuring the Logger.
type Option func(*Logger)

// WithAlertHandler sets the handler for ALERT severity events.
func WithAlertHandler(handler AlertHandler) Option {
	return func(l *Logger) {
		if handler != nil {
			l.alertHandler = handler
		}
	}
}

// WithMasker sets a custom masker for PII fields.
func WithMasker(masker *mask.Masker) Option {
	return func(l *Logger) {
		if masker != nil {
			l.masker = masker
		}
	}
}

// WithFingerprintKey sets the key used to fingerprint resident registration numbers.
// Without it fingerprints are unkeyed.
func WithFingerprintKey(key []byte) Option {
	return func(l *Logger) {
		l.fingerprintKey = key
	}
}

// New creates a new audit Logger.
func New(logger *logging.Logger, opts ...Option) *Logger {
	l := &Logger{
		logger:       logger,
		alertHandler: noopAlertHandler{},
		masker:       mask.NewMasker(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Log logs an event with automatic PII masking.
func (l *Logger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Severity == "" {
		event.Severity = GetSeverity(event.Type)
	}

	attrs := []any{
		"event_type", string(event.Type),
		"severity", string(event.Severity),
		"timestamp", event.Timestamp.Format(time.RFC3339),
	}

	if event.ActorID != "" {
		attrs = append(attrs, "actor_id", event.ActorID)
	}
	if event.SubjectName != "" {
		attrs = append(attrs, "subject_name", l.masker.Name(event.SubjectName))
	}
	if event.Phone != "" {
		attrs = append(attrs, "phone", l.masker.Phone(event.Phone, mask.DefaultPhoneMaskLength))
	}
	if event.Email != "" {
		attrs = append(attrs, "email", l.masker.Email(event.Email))
	}
	if event.RRN != "" {
		attrs = append(attrs,
			"rrn", l.masker.RRN(event.RRN, 0),
			"rrn_fingerprint", mask.Fingerprint(l.fingerprintKey, event.RRN),
		)
	}
	if event.Card != "" {
		attrs = append(attrs, "card", l.masker.Card(event.Card))
	}
	if event.IPAddress != "" {
		attrs = append(attrs, "ip_address", event.IPAddress)
	}

	for k, v := range event.Details {
		attrs = append(attrs, k, v)
	}

	msg := "Personal data event: " + string(event.Type)
	switch event.Severity {
	case SeverityAlert:
		l.logger.ErrorContext(ctx, msg, attrs...)
		// Alert handler errors are logged, not propagated
		if err := l.alertHandler.Handle(ctx, event); err != nil {
			l.logger.ErrorContext(ctx, "Alert handler failed", "error", err.Error())
		}
	case SeverityWarn:
		l.logger.WarnContext(ctx, msg, attrs...)
	default:
		l.logger.InfoContext(ctx, msg, attrs...)
	}
}

// Convenience methods for common events.

// LogPIIViewed logs an operator viewing a subject's contact details.
func (l *Logger) LogPIIViewed(ctx context.Context, actorID, name, phone, email, ip string) {
	l.Log(ctx, Event{
		Type:        EventPIIViewed,
		ActorID:     actorID,
		SubjectName: name,
		Phone:       phone,
		Email:       email,
		IPAddress:   ip,
	})
}

// LogPIIExported logs a single record leaving the system.
func (l *Logger) LogPIIExported(ctx context.Context, actorID, name, rrn, destination, ip string) {
	l.Log(ctx, Event{
		Type:        EventPIIExported,
		ActorID:     actorID,
		SubjectName: name,
		RRN:         rrn,
		IPAddress:   ip,
		Details:     map[string]any{"destination": destination},
	})
}

// LogIdentityVerified logs a successful identity check against a resident registration number.
func (l *Logger) LogIdentityVerified(ctx context.Context, actorID, name, rrn string) {
	l.Log(ctx, Event{
		Type:        EventIdentityVerified,
		ActorID:     actorID,
		SubjectName: name,
		RRN:         rrn,
	})
}

// LogIdentityVerifyFailed logs a failed identity check.
func (l *Logger) LogIdentityVerifyFailed(ctx context.Context, actorID, name, rrn, reason string) {
	l.Log(ctx, Event{
		Type:        EventIdentityVerifyFailed,
		ActorID:     actorID,
		SubjectName: name,
		RRN:         rrn,
		Details:     map[string]any{"reason": reason},
	})
}

// LogBulkExport logs an export of many records, which always raises an alert.
func (l *Logger) LogBulkExport(ctx context.Context, actorID string, recordCount int, ip string, details map[string]any) {
	event := Event{
		Type:      EventBulkExport,
		Severity:  SeverityAlert,
		ActorID:   actorID,
		IPAddress: ip,
		Details:   details,
	}
	if event.Details == nil {
		event.Details = make(map[string]any)
	}
	event.Details["record_count"] = recordCount

	l.Log(ctx, event)
}

// GetSeverity returns the default severity for an event type.
func GetSeverity(eventType EventType) Severity {
	if severity, ok := defaultSeverity[eventType]; ok {
		return severity
	}
	return SeverityInfo
}
