package interfaces

import (
	"context"

	"fukuro_studio/internal/domain/entities"
)

// IIntakeSessionStore keeps chat intake sessions between turns.
// Get returns a zero session (empty ID) for unknown or expired ids.
type IIntakeSessionStore interface {
	Save(ctx context.Context, s entities.IntakeSession) error
	Get(ctx context.Context, id string) (entities.IntakeSession, error)
}
