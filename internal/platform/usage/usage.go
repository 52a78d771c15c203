// Package usage provides structured usage-event logging suitable for
// ingestion into a log-analytics pipeline. User identities are never logged
// raw: they are pseudonymized with a keyed one-way HMAC so that events for
// the same user correlate without exposing the identity.
package usage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
)

// unknownUser is the identity placeholder pseudonymized when no user is
// associated with an event. Using a fixed placeholder keeps the pseudonym
// column populated for every event.
const unknownUser = "unknown"

// eventMessage is the fixed message attached to every usage event so that
// downstream pipelines can filter on it.
const eventMessage = "app_event"

// Tracker emits usage events through a structured logger.
type Tracker struct {
	secret []byte
	logger *slog.Logger
}

// New creates a Tracker that signs identity pseudonyms with hmacSecret.
// A nil logger discards events.
func New(hmacSecret string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{
		secret: []byte(hmacSecret),
		logger: logger,
	}
}

// Pseudonymize returns a consistent one-way pseudonym for userID, hex-encoded
// HMAC-SHA256 under the tracker's secret. An empty userID maps to the
// pseudonym of the fixed "unknown" placeholder.
func (t *Tracker) Pseudonymize(userID string) string {
	if userID == "" {
		userID = unknownUser
	}
	mac := hmac.New(sha256.New, t.secret)
	mac.Write([]byte(userID))
	return hex.EncodeToString(mac.Sum(nil))
}

// LogEvent emits one usage event. The action name is "<module>.<action>"
// (e.g., "health.readiness"); extra attributes are appended as-is.
func (t *Tracker) LogEvent(ctx context.Context, module, action, userID string, attrs ...slog.Attr) {
	base := []slog.Attr{
		slog.String("action_name", module + "." + action),
		slog.String("pseudonym_id", t.Pseudonymize(userID)),
	}
	t.logger.LogAttrs(ctx, slog.LevelInfo, eventMessage, append(base, attrs...)...)
}
