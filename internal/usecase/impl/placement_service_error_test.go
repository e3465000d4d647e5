package impl

import (
	"context"
	"testing"

	"govcourier/internal/domain/entity"
	"govcourier/internal/domain/service"
	"govcourier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacementService_VerifyIdentity_EmptyIIN(t *testing.T) {
	fx := createTestPlacementService(t)

	exists, err := fx.service.VerifyIdentity(context.Background(), "  ")

	assert.Error(t, err)
	assert.False(t, exists)
	fx.api.AssertNotCalled(t, "CheckIdentity")
}

func TestPlacementService_VerifyIdentity_NetworkError(t *testing.T) {
	fx := createTestPlacementService(t)

	ctx := context.Background()
	netErr := service.NewNetworkError("connection refused", errors.New("connection refused"))
	fx.api.EXPECT().CheckIdentity(ctx, "123456789012").Return(false, netErr)

	exists, err := fx.service.VerifyIdentity(ctx, "123456789012")

	assert.Error(t, err)
	assert.False(t, exists)
	assert.Contains(t, err.Error(), "failed to check identity")
}

func TestPlacementService_LoadProfile_NetworkError(t *testing.T) {
	fx := createTestPlacementService(t)

	ctx := context.Background()
	netErr := service.NewNetworkError("invalid character '<'", errors.New("decode failed"))
	fx.api.EXPECT().GetProfile(ctx, "123456789012").Return(nil, netErr)

	recipient, err := fx.service.LoadProfile(ctx, "123456789012")

	assert.Error(t, err)
	assert.Nil(t, recipient)
	assert.Contains(t, err.Error(), "failed to load profile")
}

func TestPlacementService_DraftOrder_GeocodingFailureIsTolerated(t *testing.T) {
	fx := createTestPlacementService(t)

	ctx := context.Background()
	netErr := service.NewNetworkError("timeout", errors.New("timeout"))
	fx.api.EXPECT().ResolveAddress(ctx, "nowhere street").Return(nil, netErr)

	draft, err := fx.service.DraftOrder(ctx, usecase.DraftOrderInput{
		Identity:    testIdentity(),
		AddressText: "nowhere street",
	})

	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Nil(t, draft.Address.Resolved)
	assert.Empty(t, draft.Address.DistanceHint)
	assert.Equal(t, "nowhere street", draft.Address.RawText)
}

func TestPlacementService_SubmitOrder_MissingRequestNumber(t *testing.T) {
	fx := createTestPlacementService(t)

	draft := &entity.OrderDraft{
		Identity: entity.Identity{IIN: "123456789012"},
	}

	confirmed, err := fx.service.SubmitOrder(context.Background(), draft)

	assert.Error(t, err)
	assert.Nil(t, confirmed)
	assert.Contains(t, err.Error(), "not submittable")
	fx.api.AssertNotCalled(t, "CreateOrder")
}

func TestPlacementService_SubmitOrder_MissingIIN(t *testing.T) {
	fx := createTestPlacementService(t)

	draft := &entity.OrderDraft{
		Identity: entity.Identity{RequestNumber: "00012345"},
	}

	confirmed, err := fx.service.SubmitOrder(context.Background(), draft)

	assert.Error(t, err)
	assert.Nil(t, confirmed)
	fx.api.AssertNotCalled(t, "CreateOrder")
}

func TestPlacementService_SubmitOrder_FailureLeavesDraftUnchanged(t *testing.T) {
	fx := createTestPlacementService(t)

	ctx := context.Background()
	draft := &entity.OrderDraft{
		Identity:     testIdentity(),
		Provider:     "Казпочта",
		Instructions: "call on arrival",
		Address:      entity.DeliveryAddress{RawText: "Astana, Qabanbay Batyr 53"},
	}
	before := *draft

	netErr := service.NewNetworkError("internal error", errors.New("status 500"))
	fx.api.EXPECT().CreateOrder(ctx, draft).Return(nil, netErr).Once()

	confirmed, err := fx.service.SubmitOrder(ctx, draft)

	assert.Error(t, err)
	assert.Nil(t, confirmed)
	assert.Equal(t, before, *draft)

	// Resubmission of the same draft is allowed and succeeds.
	fx.api.EXPECT().CreateOrder(ctx, draft).
		Return(&entity.ConfirmedOrder{OrderID: 42, Price: 500}, nil).Once()

	confirmed, err = fx.service.SubmitOrder(ctx, draft)

	require.NoError(t, err)
	assert.Equal(t, 42, confirmed.OrderID)
}

func TestPlacementService_Pay_FailureIsRetryable(t *testing.T) {
	fx := createTestPlacementService(t)

	ctx := context.Background()
	netErr := service.NewNetworkError("", errors.New("unexpected status: 500"))
	fx.api.EXPECT().ConfirmPayment(ctx, 42).Return(netErr).Once()
	fx.api.EXPECT().ConfirmPayment(ctx, 42).Return(nil).Once()

	err := fx.service.Pay(ctx, 42)
	require.Error(t, err)

	var boundary *service.NetworkError
	require.ErrorAs(t, err, &boundary)
	assert.Empty(t, boundary.Message)

	// The order id is unchanged; the same transition simply runs again.
	require.NoError(t, fx.service.Pay(ctx, 42))
}

func TestPlacementService_Pay_WithoutOrderID(t *testing.T) {
	fx := createTestPlacementService(t)

	err := fx.service.Pay(context.Background(), 0)

	assert.Error(t, err)
	fx.api.AssertNotCalled(t, "ConfirmPayment")
}
