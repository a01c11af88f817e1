package interfaces

import (
	"context"

	"fukuro_studio/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for submitted quotes.
//
// Lookups return a zero Quote (empty ID) when nothing matches.
//   - create a quote on submission (form or chat)
//   - update status on accept/reject/cancel
//   - list quotes of a project for its dashboard

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
