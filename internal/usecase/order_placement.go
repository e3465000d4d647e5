// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"govcourier/internal/domain/entity"
)

// OrderPlacement sequences the document-requester workflow:
// identity verification → profile lookup → drafting → submission → payment.
//
// Every prerequisite travels as an explicit parameter or return value; the
// caller owns the session state and threads it through. A failed transition
// leaves the caller's state exactly as it was, so re-invoking the same
// operation with the same (or corrected) input is always safe. Callers must
// not invoke two transitions concurrently; each call is awaited to completion
// before the next one starts.
type OrderPlacement interface {
	// VerifyIdentity checks the IIN against the remote registry.
	// A false result or an error keeps the session at the start state.
	VerifyIdentity(ctx context.Context, iin string) (bool, error)

	// LoadProfile fetches the recipient profile for a verified IIN.
	LoadProfile(ctx context.Context, iin string) (*entity.Recipient, error)

	// DraftOrder accumulates the order fields locally and opportunistically
	// geocodes the delivery address. Geocoding failure never fails the draft.
	DraftOrder(ctx context.Context, input DraftOrderInput) (*entity.OrderDraft, error)

	// SubmitOrder sends the draft to the order-creation endpoint. On failure
	// the draft is untouched and may be edited and resubmitted.
	SubmitOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.ConfirmedOrder, error)

	// Pay confirms payment for a created order. Success is terminal for the
	// requester flow; failure keeps the order payable.
	Pay(ctx context.Context, orderID int) error
}

// --- Input DTOs ---

// DraftOrderInput defines the data accumulated while drafting an order.
type DraftOrderInput struct {
	Identity       entity.Identity `validate:"required"`
	Recipient      entity.Recipient
	AddressText    string
	Provider       string
	Instructions   string
	TrustedFaceIIN string
}
