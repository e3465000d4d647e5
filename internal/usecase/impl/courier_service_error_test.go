package impl

import (
	"context"
	"testing"

	"govcourier/internal/domain/service"
	"govcourier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierService_Orders_NetworkError(t *testing.T) {
	fx := createTestCourierService(t)

	ctx := context.Background()
	netErr := service.NewNetworkError("connection refused", errors.New("connection refused"))
	fx.api.EXPECT().ListOrders(ctx).Return(nil, netErr)

	got, err := fx.service.Orders(ctx)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to list orders")
}

func TestCourierService_Accept_IncompleteInput(t *testing.T) {
	fx := createTestCourierService(t)

	err := fx.service.Accept(context.Background(), usecase.AcceptOrderInput{
		OrderID: 7,
		// no phone, no IIN
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
	fx.api.AssertNotCalled(t, "AcceptOrder")
}

func TestCourierService_Accept_FailureIsRetryable(t *testing.T) {
	fx := createTestCourierService(t)

	ctx := context.Background()
	input := usecase.AcceptOrderInput{
		OrderID:      7,
		CourierPhone: "+77017654321",
		CourierIIN:   "987654321098",
	}

	netErr := service.NewNetworkError("", errors.New("unexpected status: 409"))
	fx.api.EXPECT().AcceptOrder(ctx, 7, input.CourierPhone, input.CourierIIN).Return(netErr).Once()
	fx.api.EXPECT().AcceptOrder(ctx, 7, input.CourierPhone, input.CourierIIN).Return(nil).Once()

	err := fx.service.Accept(ctx, input)
	require.Error(t, err)

	var boundary *service.NetworkError
	require.ErrorAs(t, err, &boundary)
	assert.Empty(t, boundary.Message)

	require.NoError(t, fx.service.Accept(ctx, input))
}
