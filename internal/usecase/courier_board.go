package usecase

import (
	"context"

	"govcourier/internal/domain/entity"
)

// CourierBoard is the courier-side workflow: browse open delivery jobs and
// accept one. Listings are never mutated locally; acceptance round-trips
// through the server and the caller refetches the board afterwards.
type CourierBoard interface {
	// Orders returns the current board. An empty board is an empty slice.
	Orders(ctx context.Context) ([]entity.OrderListing, error)

	// Accept assigns the order to the courier. Success is terminal for the
	// order; failure leaves the board unchanged and the accept retryable.
	Accept(ctx context.Context, input AcceptOrderInput) error
}

// AcceptOrderInput defines the data required to accept a delivery job.
type AcceptOrderInput struct {
	OrderID      int    `validate:"required"`
	CourierPhone string `validate:"required"`
	CourierIIN   string `validate:"required"`
}
