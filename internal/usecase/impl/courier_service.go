package impl

import (
	"context"
	"log/slog"

	"govcourier/internal/domain/entity"
	"govcourier/internal/domain/service"
	"govcourier/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// courierService implements the CourierBoard interface.
type courierService struct {
	api      service.DeliveryAPI
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCourierService is the constructor for courierService.
func NewCourierService(
	api service.DeliveryAPI,
	logger *slog.Logger,
) usecase.CourierBoard {
	return &courierService{
		api:      api,
		validate: validator.New(),
		logger:   logger,
	}
}

// Orders fetches the courier board from the list endpoint.
func (srv *courierService) Orders(ctx context.Context) ([]entity.OrderListing, error) {
	listings, err := srv.api.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	if listings == nil {
		listings = []entity.OrderListing{}
	}

	srv.logger.Debug("Courier board fetched", "orders", len(listings))

	return listings, nil
}

// Accept assigns the order to the courier. The board is not touched locally;
// the caller refetches it after a successful accept.
func (srv *courierService) Accept(ctx context.Context, input usecase.AcceptOrderInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(err, "accept input is incomplete")
	}

	if err := srv.api.AcceptOrder(ctx, input.OrderID, input.CourierPhone, input.CourierIIN); err != nil {
		return errors.Wrap(err, "failed to accept order")
	}

	srv.logger.Info("Order accepted",
		slog.Int("orderId", input.OrderID),
		slog.String("courierIin", input.CourierIIN),
	)

	return nil
}
