package interfaces

import (
	"context"

	"fukuro_studio/internal/domain/entities"
)

// INotifier announces newly submitted quotes to the studio and the client.
type INotifier interface {
	NotifyQuoteSubmitted(ctx context.Context, q entities.Quote, receipt string) error
}
