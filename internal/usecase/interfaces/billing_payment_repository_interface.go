package interfaces

import (
	"context"

	"fukuro_studio/internal/domain/entities"
)

// IBillingPaymentRepository abstracts persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BillingPayment, error)
}
