// Package egov implements the DeliveryAPI port against the remote
// eGov delivery service over JSON HTTP.
package egov

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"govcourier/config"
	"govcourier/internal/domain/entity"
	"govcourier/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const headerXRequestID = "X-Request-Id"

// Client is a stateless request/response wrapper around the remote endpoint
// set. One method call is one HTTP round trip, no retries; every failure is
// classified as *service.NetworkError before it leaves this package.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the HTTP implementation of the DeliveryAPI port.
func NewClient(cfg *config.Config, logger *slog.Logger) service.DeliveryAPI {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		logger: logger,
	}
}

// CheckIdentity asks the existence-check endpoint whether the IIN is known.
func (c *Client) CheckIdentity(ctx context.Context, iin string) (bool, error) {
	var decoded struct {
		IsExists bool `json:"is_exists"`
	}
	if err := c.getJSON(ctx, "/api/check/"+iin, &decoded); err != nil {
		return false, err
	}

	return decoded.IsExists, nil
}

// GetProfile fetches the recipient profile registered for the IIN.
func (c *Client) GetProfile(ctx context.Context, iin string) (*entity.Recipient, error) {
	recipient := new(entity.Recipient)
	if err := c.getJSON(ctx, "/api/client/"+iin, recipient); err != nil {
		return nil, err
	}

	return recipient, nil
}

// ResolveAddress geocodes a free-text street address.
func (c *Client) ResolveAddress(ctx context.Context, street string) (*service.ResolvedLocation, error) {
	location := new(service.ResolvedLocation)
	body := map[string]string{"street": street}
	if err := c.postJSON(ctx, "/api/coordinates", body, location); err != nil {
		return nil, err
	}

	return location, nil
}

// ListOrders fetches the courier board. The response envelope is
// {"orders": [...]}; the array is unwrapped here.
func (c *Client) ListOrders(ctx context.Context) ([]entity.OrderListing, error) {
	var envelope struct {
		Orders []entity.OrderListing `json:"orders"`
	}
	if err := c.getJSON(ctx, "/api/orders", &envelope); err != nil {
		return nil, err
	}

	return envelope.Orders, nil
}

// createOrderBody is the wire shape of the creation request.
type createOrderBody struct {
	RequestID       string `json:"requestId"`
	IIN             string `json:"iin"`
	Branch          string `json:"branch"`
	DeliveryService string `json:"deliveryService"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	MiddleName      string `json:"middleName"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	AdditionalData  string `json:"additionalData"`
	TrustedFaceIIN  string `json:"trustedFaceIin"`
}

// CreateOrder submits the draft and decodes the confirmed order.
func (c *Client) CreateOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.ConfirmedOrder, error) {
	body := createOrderBody{
		RequestID:       draft.Identity.RequestNumber,
		IIN:             draft.Identity.IIN,
		Branch:          "",
		DeliveryService: draft.Provider,
		FirstName:       draft.Recipient.FirstName,
		LastName:        draft.Recipient.LastName,
		MiddleName:      draft.Recipient.MiddleName,
		Address:         draft.Address.RawText,
		Phone:           draft.Identity.Phone,
		AdditionalData:  draft.Instructions,
		TrustedFaceIIN:  draft.TrustedFaceIIN,
	}

	confirmed := new(entity.ConfirmedOrder)
	if err := c.postJSON(ctx, "/api/orders/create", body, confirmed); err != nil {
		return nil, err
	}

	return confirmed, nil
}

// ConfirmPayment pays for the order. Status-authoritative: the response body
// is ignored and a non-2xx status maps to a NetworkError with empty message.
func (c *Client) ConfirmPayment(ctx context.Context, orderID int) error {
	return c.postStatus(ctx, "/api/orders/confirm", map[string]any{"orderId": orderID})
}

// AcceptOrder assigns the order to the courier. Same status-only contract as
// ConfirmPayment.
func (c *Client) AcceptOrder(ctx context.Context, orderID int, phone, iin string) error {
	body := map[string]any{
		"orderId": orderID,
		"phone":   phone,
		"iin":     iin,
	}

	return c.postStatus(ctx, "/api/orders/start-deliver", body)
}

// getJSON performs a content-authoritative GET: a non-2xx status, transport
// failure or undecodable body becomes a NetworkError carrying a
// human-readable message.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return service.NewNetworkError(err.Error(), errors.WithStack(err))
	}

	return c.doJSON(req, out)
}

// postJSON performs a content-authoritative POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	req, err := c.newPost(ctx, path, body)
	if err != nil {
		return err
	}

	return c.doJSON(req, out)
}

// postStatus performs a status-authoritative POST: 2xx is success, anything
// else is a NetworkError with an empty message, and the body is never read.
func (c *Client) postStatus(ctx context.Context, path string, body any) error {
	req, err := c.newPost(ctx, path, body)
	if err != nil {
		return err
	}

	requestID := c.stamp(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("delivery API call failed",
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)

		return service.NewNetworkError(err.Error(), errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("delivery API rejected request",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return service.NewNetworkError("", errors.Errorf("unexpected status: %d", resp.StatusCode))
	}

	return nil
}

func (c *Client) newPost(ctx context.Context, path string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, service.NewNetworkError(err.Error(), errors.WithStack(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, service.NewNetworkError(err.Error(), errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// stamp attaches a fresh tracing id to the outbound request.
func (c *Client) stamp(req *http.Request) string {
	requestID := uuid.New().String()
	req.Header.Set(headerXRequestID, requestID)

	return requestID
}

// errorMessage extracts a displayable message from an error response body,
// falling back to the standard status text.
func errorMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}

	return http.StatusText(status)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	requestID := c.stamp(req)

	c.logger.Debug("calling delivery API",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("delivery API call failed",
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)

		return service.NewNetworkError(err.Error(), errors.WithStack(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return service.NewNetworkError(err.Error(), errors.WithStack(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("delivery API rejected request",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)

		return service.NewNetworkError(errorMessage(resp.StatusCode, raw),
			errors.Errorf("unexpected status: %d", resp.StatusCode))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("delivery API returned unparsable body",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)

		return service.NewNetworkError(err.Error(), errors.WithStack(err))
	}

	return nil
}
