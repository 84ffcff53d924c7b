package interfaces

import (
	"context"

	"cotizaciones_zafir/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// List returns every stored quote ordered by creation time, newest first;
// the pure filtering/aggregation helpers in the usecase layer operate on that
// ordered slice.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}
