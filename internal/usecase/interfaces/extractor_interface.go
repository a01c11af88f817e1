package interfaces

import (
	"context"

	"fukuro_studio/internal/domain/entities"
)

// IExtractor turns one free-text chat message into a partial quote request.
//
// history holds the earlier turns of the conversation, oldest first. Fields the
// message does not mention are left nil. Any transport or format failure is
// returned as an error; no partial fragment accompanies it.
type IExtractor interface {
	Extract(ctx context.Context, text string, history []entities.ConversationTurn) (entities.IntakeData, error)
}
