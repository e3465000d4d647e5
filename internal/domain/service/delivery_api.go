// Package service defines the outbound ports of the domain.
package service

import (
	"context"

	"govcourier/internal/domain/entity"
)

// ResolvedLocation is the geocoding result for a free-text address.
// Distance and time are preformatted display hints, not measurements.
type ResolvedLocation struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Distance string  `json:"distance"`
	Time     string  `json:"time"`
}

// DeliveryAPI is the port to the remote delivery service. Each call maps to
// exactly one HTTP round trip and completes exactly once: a decoded value or
// a *NetworkError, never a panic and never a retry. Retries, if ever wanted,
// belong to the caller.
//
// Two kinds of endpoints hide behind this interface. The lookup/creation
// calls are content-authoritative: a 2xx status with a decodable JSON body is
// success, anything else (rejection status, transport failure, undecodable
// body) is a failure with a displayable message. ConfirmPayment and
// AcceptOrder are status-authoritative: only the HTTP status code matters and
// the body is deliberately ignored.
type DeliveryAPI interface {
	// CheckIdentity reports whether the given IIN is known to the service.
	CheckIdentity(ctx context.Context, iin string) (bool, error)

	// GetProfile fetches the recipient profile registered for the IIN.
	GetProfile(ctx context.Context, iin string) (*entity.Recipient, error)

	// ResolveAddress geocodes a free-text street address.
	ResolveAddress(ctx context.Context, street string) (*ResolvedLocation, error)

	// ListOrders returns every order visible on the courier board.
	// An empty board yields an empty slice, not an error.
	ListOrders(ctx context.Context) ([]entity.OrderListing, error)

	// CreateOrder submits the draft and returns the confirmed order.
	CreateOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.ConfirmedOrder, error)

	// ConfirmPayment pays for the order. Success is a 2xx status, nothing else.
	ConfirmPayment(ctx context.Context, orderID int) error

	// AcceptOrder assigns the order to the courier identified by phone and IIN.
	// Success is a 2xx status, nothing else.
	AcceptOrder(ctx context.Context, orderID int, phone, iin string) error
}
