// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"govcourier/internal/domain/entity"
	"govcourier/internal/domain/service"
	"govcourier/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// placementService implements the OrderPlacement interface.
type placementService struct {
	api      service.DeliveryAPI
	validate *validator.Validate
	logger   *slog.Logger
}

// NewPlacementService is the constructor for placementService.
func NewPlacementService(
	api service.DeliveryAPI,
	logger *slog.Logger,
) usecase.OrderPlacement {
	return &placementService{
		api:      api,
		validate: validator.New(),
		logger:   logger,
	}
}

// submitGuard captures the only client-side validation the workflow performs:
// an order cannot be created without an IIN and a request number. Everything
// beyond non-emptiness is the server's call.
type submitGuard struct {
	IIN           string `validate:"required"`
	RequestNumber string `validate:"required"`
}

// VerifyIdentity checks the IIN against the remote registry.
func (srv *placementService) VerifyIdentity(ctx context.Context, iin string) (bool, error) {
	if strings.TrimSpace(iin) == "" {
		return false, errors.New("iin is required")
	}

	srv.logger.Debug("Verifying identity", "iin", iin)

	exists, err := srv.api.CheckIdentity(ctx, iin)
	if err != nil {
		return false, errors.Wrap(err, "failed to check identity")
	}

	return exists, nil
}

// LoadProfile fetches the recipient profile for a verified IIN.
func (srv *placementService) LoadProfile(ctx context.Context, iin string) (*entity.Recipient, error) {
	if strings.TrimSpace(iin) == "" {
		return nil, errors.New("iin is required")
	}

	recipient, err := srv.api.GetProfile(ctx, iin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	srv.logger.Debug("Profile loaded", "iin", iin, "phone", recipient.Phone)

	return recipient, nil
}

// DraftOrder accumulates the order fields into a draft. Address geocoding is
// attempted opportunistically: a failed or unresolvable address leaves the
// coordinates nil and the draft still succeeds.
func (srv *placementService) DraftOrder(ctx context.Context, input usecase.DraftOrderInput) (*entity.OrderDraft, error) {
	draft := &entity.OrderDraft{
		Identity:  input.Identity,
		Recipient: input.Recipient,
		Address: entity.DeliveryAddress{
			RawText: input.AddressText,
		},
		Provider:       input.Provider,
		Instructions:   input.Instructions,
		TrustedFaceIIN: input.TrustedFaceIIN,
	}

	if strings.TrimSpace(input.AddressText) == "" {
		return draft, nil
	}

	location, err := srv.api.ResolveAddress(ctx, input.AddressText)
	if err != nil {
		// Coordinates are display-only, so the draft survives without them.
		srv.logger.Warn("Address did not resolve",
			slog.String("address", input.AddressText),
			slog.Any("error", err),
		)

		return draft, nil
	}

	point := orb.Point{location.Lng, location.Lat}
	draft.Address.Resolved = &point
	draft.Address.DistanceHint = location.Distance
	draft.Address.TimeHint = location.Time

	return draft, nil
}

// SubmitOrder sends the draft to the creation endpoint. The draft is never
// mutated here: a failed submission leaves it exactly as it was, ready for an
// edited resubmission.
func (srv *placementService) SubmitOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.ConfirmedOrder, error) {
	if draft == nil {
		return nil, errors.New("draft is required")
	}

	guard := submitGuard{
		IIN:           draft.Identity.IIN,
		RequestNumber: draft.Identity.RequestNumber,
	}
	if err := srv.validate.Struct(guard); err != nil {
		return nil, errors.Wrap(err, "draft is not submittable")
	}

	srv.logger.Info("Submitting order",
		"iin", draft.Identity.IIN,
		"requestNumber", draft.Identity.RequestNumber,
		"provider", draft.Provider,
	)

	confirmed, err := srv.api.CreateOrder(ctx, draft)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.logger.Info("Order confirmed",
		"orderId", confirmed.OrderID,
		"branch", confirmed.BranchName,
		"price", confirmed.Price,
	)

	return confirmed, nil
}

// Pay confirms payment for a created order.
func (srv *placementService) Pay(ctx context.Context, orderID int) error {
	if orderID <= 0 {
		return errors.New("order id is required")
	}

	if err := srv.api.ConfirmPayment(ctx, orderID); err != nil {
		return errors.Wrap(err, "failed to confirm payment")
	}

	srv.logger.Info("Payment complete", "orderId", orderID)

	return nil
}
