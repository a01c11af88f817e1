package intake

import (
	"errors"
	"time"

	"fukuro_studio/internal/domain/entities"
)

var (
	// ErrSessionClosed is returned when a turn reaches a session that is no
	// longer collecting. Only Reset reopens it.
	ErrSessionClosed = errors.New("intake session no longer accepts turns")
	// ErrSessionNotReady is returned when pricing a session that still misses data.
	ErrSessionNotReady = errors.New("intake session is not ready to be priced")
)

// NewSession opens an empty session in the collecting state.
func NewSession(id string, now time.Time) entities.IntakeSession {
	s := entities.IntakeSession{ID: id, CreatedAt: now}
	Reset(&s, now)
	return s
}

// ApplyTurn sanitizes and merges an extracted fragment into a collecting session
// and re-runs the completeness checks. The session moves to READY once nothing
// is missing.
func ApplyTurn(s *entities.IntakeSession, fragment entities.IntakeData, now time.Time) error {
	if s.State != entities.IntakeStateCollecting {
		return ErrSessionClosed
	}

	s.Data = Merge(s.Data, Sanitize(fragment))
	evaluate(s)
	s.UpdatedAt = now
	return nil
}

// MarkPriced attaches the computed breakdown to a READY session.
func MarkPriced(s *entities.IntakeSession, breakdown entities.QuoteBreakdown, now time.Time) error {
	if s.State != entities.IntakeStateReady {
		return ErrSessionNotReady
	}
	b := breakdown
	s.Breakdown = &b
	s.State = entities.IntakeStatePriced
	s.UpdatedAt = now
	return nil
}

// Reset returns a session to COLLECTING with an empty accumulator.
func Reset(s *entities.IntakeSession, now time.Time) {
	s.State = entities.IntakeStateCollecting
	s.Data = entities.IntakeData{}
	s.History = nil
	s.Breakdown = nil
	s.QuoteID = ""
	evaluate(s)
	s.State = entities.IntakeStateCollecting
	s.UpdatedAt = now
}

func evaluate(s *entities.IntakeSession) {
	s.MissingFields = MissingRequiredFields(s.Data)
	s.DurationIssues = DurationSufficiency(s.Data)
	if len(s.MissingFields) == 0 && len(s.DurationIssues) == 0 {
		s.State = entities.IntakeStateReady
	} else {
		s.State = entities.IntakeStateCollecting
	}
}
