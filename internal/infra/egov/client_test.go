package egov

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"govcourier/config"
	"govcourier/internal/domain/entity"
	"govcourier/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) service.DeliveryAPI {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Timeout = 2 * time.Second

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(cfg, logger)
}

func requireNetworkError(t *testing.T, err error) *service.NetworkError {
	t.Helper()

	var netErr *service.NetworkError
	require.ErrorAs(t, err, &netErr)

	return netErr
}

func TestClient_CheckIdentity(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/check/123456789012", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		_, _ = w.Write([]byte(`{"is_exists": true}`))
	}))

	exists, err := api.CheckIdentity(context.Background(), "123456789012")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_CheckIdentity_UnknownIIN(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"is_exists": false}`))
	}))

	exists, err := api.CheckIdentity(context.Background(), "000000000000")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_CheckIdentity_UnparsableBody(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))

	_, err := api.CheckIdentity(context.Background(), "123456789012")

	netErr := requireNetworkError(t, err)
	assert.NotEmpty(t, netErr.Message)
}

func TestClient_CheckIdentity_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from now on

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Timeout = time.Second

	api := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := api.CheckIdentity(context.Background(), "123456789012")

	netErr := requireNetworkError(t, err)
	assert.NotEmpty(t, netErr.Message)
}

func TestClient_GetProfile(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/123456789012", r.URL.Path)

		_, _ = w.Write([]byte(`{"firstName":"Aset","middleName":"Serikuly","lastName":"Nurlanov","phone":"+77001234567"}`))
	}))

	recipient, err := api.GetProfile(context.Background(), "123456789012")

	require.NoError(t, err)
	assert.Equal(t, &entity.Recipient{
		FirstName:  "Aset",
		MiddleName: "Serikuly",
		LastName:   "Nurlanov",
		Phone:      "+77001234567",
	}, recipient)
}

func TestClient_GetProfile_NotFound(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"client not found"}`))
	}))

	recipient, err := api.GetProfile(context.Background(), "111111111111")

	netErr := requireNetworkError(t, err)
	assert.Equal(t, "client not found", netErr.Message)
	assert.Nil(t, recipient)
}

func TestClient_ResolveAddress(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/coordinates", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Astana, Qabanbay Batyr 53", body["street"])

		_, _ = w.Write([]byte(`{"lat":51.11,"lng":71.40,"distance":"2.4 km","time":"15 min"}`))
	}))

	location, err := api.ResolveAddress(context.Background(), "Astana, Qabanbay Batyr 53")

	require.NoError(t, err)
	assert.Equal(t, &service.ResolvedLocation{
		Lat:      51.11,
		Lng:      71.40,
		Distance: "2.4 km",
		Time:     "15 min",
	}, location)
}

func TestClient_ResolveAddress_Rejected(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"street is required"}`))
	}))

	location, err := api.ResolveAddress(context.Background(), "   ")

	netErr := requireNetworkError(t, err)
	assert.Equal(t, "street is required", netErr.Message)
	assert.Nil(t, location)
}

func TestClient_ListOrders_UnwrapsEnvelope(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)

		_, _ = w.Write([]byte(`{"orders":[{"id":7,"iin":"123456789012","region":"Akmola","city":"Astana","street":"Qabanbay Batyr","house":"53","deliveryPrice":500,"status":"NEW"}]}`))
	}))

	orders, err := api.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 7, orders[0].ID)
	assert.Equal(t, 500, orders[0].DeliveryPrice)
	assert.Equal(t, "Akmola, Astana, Qabanbay Batyr 53", orders[0].DisplayAddress())
}

func TestClient_ListOrders_EmptyBoard(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"orders": []}`))
	}))

	orders, err := api.ListOrders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClient_CreateOrder_RoundTrip(t *testing.T) {
	var captured map[string]any

	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{"orderId":42,"branchName":"ЦОН Есиль","price":500,"time":45,"distance":2400}`))
	}))

	draft := &entity.OrderDraft{
		Identity: entity.Identity{
			IIN:           "123456789012",
			RequestNumber: "00012345",
			Phone:         "+77001234567",
		},
		Recipient: entity.Recipient{
			FirstName:  "Aset",
			MiddleName: "Serikuly",
			LastName:   "Nurlanov",
		},
		Address:        entity.DeliveryAddress{RawText: "Astana, Qabanbay Batyr 53"},
		Provider:       "Казпочта",
		Instructions:   "call on arrival",
		TrustedFaceIIN: "987654321098",
	}

	confirmed, err := api.CreateOrder(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, &entity.ConfirmedOrder{
		OrderID:    42,
		BranchName: "ЦОН Есиль",
		Price:      500,
		Time:       45,
		Distance:   2400,
	}, confirmed)

	// Wire body carries every field literally, with no renames lost.
	assert.Equal(t, "00012345", captured["requestId"])
	assert.Equal(t, "123456789012", captured["iin"])
	assert.Equal(t, "", captured["branch"])
	assert.Equal(t, "Казпочта", captured["deliveryService"])
	assert.Equal(t, "Aset", captured["firstName"])
	assert.Equal(t, "Nurlanov", captured["lastName"])
	assert.Equal(t, "Serikuly", captured["middleName"])
	assert.Equal(t, "Astana, Qabanbay Batyr 53", captured["address"])
	assert.Equal(t, "+77001234567", captured["phone"])
	assert.Equal(t, "call on arrival", captured["additionalData"])
	assert.Equal(t, "987654321098", captured["trustedFaceIin"])
}

func TestClient_CreateOrder_Rejected(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Error bodies share field names with success bodies, so a lenient
		// decode would yield a zero-valued order. The status must win.
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"iin and requestId are required"}`))
	}))

	confirmed, err := api.CreateOrder(context.Background(), &entity.OrderDraft{})

	netErr := requireNetworkError(t, err)
	assert.Equal(t, "iin and requestId are required", netErr.Message)
	assert.Nil(t, confirmed)
}

func TestClient_CreateOrder_RejectedWithoutMessage(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))

	confirmed, err := api.CreateOrder(context.Background(), &entity.OrderDraft{})

	netErr := requireNetworkError(t, err)
	assert.Equal(t, "Bad Gateway", netErr.Message)
	assert.Nil(t, confirmed)
}

func TestClient_ConfirmPayment_StatusAuthoritative(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/confirm", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 42, body["orderId"])

		// Body is deliberately garbage: only the status code may matter.
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`not json at all`))
	}))

	err := api.ConfirmPayment(context.Background(), 42)

	require.NoError(t, err)
}

func TestClient_ConfirmPayment_ServerError(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	err := api.ConfirmPayment(context.Background(), 42)

	netErr := requireNetworkError(t, err)
	assert.Empty(t, netErr.Message)
}

func TestClient_AcceptOrder(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/start-deliver", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 7, body["orderId"])
		assert.Equal(t, "+77017654321", body["phone"])
		assert.Equal(t, "987654321098", body["iin"])

		w.WriteHeader(http.StatusOK)
	}))

	err := api.AcceptOrder(context.Background(), 7, "+77017654321", "987654321098")

	require.NoError(t, err)
}

func TestClient_AcceptOrder_Conflict(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	err := api.AcceptOrder(context.Background(), 7, "+77017654321", "987654321098")

	netErr := requireNetworkError(t, err)
	assert.Empty(t, netErr.Message)
}
