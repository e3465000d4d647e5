// Package egovstub is a local stand-in for the remote delivery service. It
// implements the same endpoint set over an in-memory order table so the shell
// and the HTTP client can be exercised without the real backend. Development
// and tests only; the production service stays an external collaborator.
package egovstub

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"govcourier/config"
	"govcourier/internal/delivery"
	"govcourier/internal/domain/entity"
	"govcourier/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// branchPoint is where stub deliveries depart from (Astana city center).
var branchPoint = orb.Point{71.4304, 51.1282}

// Params defines the dependencies of the stub server.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Server serves the stub endpoints over an in-memory state.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo

	mu       sync.Mutex
	nextID   int
	orders   map[int]*entity.OrderListing
	profiles map[string]entity.Recipient
}

// NewServer builds the stub and registers its lifecycle shutdown hook.
func NewServer(params Params) delivery.Delivery {
	srv := newServer(params.Config, params.Logger)

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

func newServer(cfg *config.Config, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())

	srv := &Server{
		cfg:    cfg,
		logger: logger,
		echo:   e,
		nextID: 1,
		orders: make(map[int]*entity.OrderListing),
		profiles: map[string]entity.Recipient{
			"123456789012": {FirstName: "Aset", MiddleName: "Serikuly", LastName: "Nurlanov", Phone: "+77001234567"},
			"987654321098": {FirstName: "Dana", MiddleName: "Bolatqyzy", LastName: "Alieva", Phone: "+77017654321"},
		},
	}
	srv.routes()

	return srv
}

// Handler exposes the stub as an http.Handler for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Serve starts the stub on the configured port.
func (s *Server) Serve(ctx context.Context) error {
	if s.cfg.Stub == nil {
		return errors.New("stub config is missing")
	}

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Stub.Port))
	s.logger.Info("Starting eGov stub server", slog.String("hostPort", hostPort))

	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve stub")
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down eGov stub server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}

func (s *Server) routes() {
	s.echo.GET("/api/check/:iin", s.checkIIN)
	s.echo.GET("/api/client/:iin", s.getClient)
	s.echo.POST("/api/coordinates", s.coordinates)
	s.echo.GET("/api/orders", s.listOrders)
	s.echo.POST("/api/orders/create", s.createOrder)
	s.echo.POST("/api/orders/confirm", s.confirmOrder)
	s.echo.POST("/api/orders/start-deliver", s.startDeliver)
}

func (s *Server) checkIIN(c echo.Context) error {
	s.mu.Lock()
	_, known := s.profiles[c.Param("iin")]
	s.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{"is_exists": known})
}

func (s *Server) getClient(c echo.Context) error {
	s.mu.Lock()
	profile, known := s.profiles[c.Param("iin")]
	s.mu.Unlock()

	if !known {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "client not found"})
	}

	return c.JSON(http.StatusOK, profile)
}

type coordinatesRequest struct {
	Street string `json:"street"`
}

func (s *Server) coordinates(c echo.Context) error {
	var req coordinatesRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Street) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "street is required"})
	}

	point := syntheticPoint(req.Street)
	meters := geo.Distance(branchPoint, point)

	return c.JSON(http.StatusOK, echo.Map{
		"lat":      point.Lat(),
		"lng":      point.Lon(),
		"distance": strconv.FormatFloat(meters/1000, 'f', 1, 64) + " km",
		"time":     strconv.Itoa(int(meters/500)+5) + " min",
	})
}

// syntheticPoint derives a stable pseudo-location near the branch from the
// address text, so repeated lookups of one address agree with each other.
func syntheticPoint(street string) orb.Point {
	var h uint32
	for _, r := range street {
		h = h*31 + uint32(r)
	}

	dLon := float64(h%1000)/10000 - 0.05
	dLat := float64((h/1000)%1000)/10000 - 0.05

	return orb.Point{branchPoint.Lon() + dLon, branchPoint.Lat() + dLat}
}

func (s *Server) listOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := make([]entity.OrderListing, 0, len(s.orders))
	for id := 1; id < s.nextID; id++ {
		if order, ok := s.orders[id]; ok {
			listings = append(listings, *order)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"orders": listings})
}

type createOrderRequest struct {
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

func (s *Server) createOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "malformed body"})
	}
	if req.IIN == "" || req.RequestID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "iin and requestId are required"})
	}

	point := syntheticPoint(req.Address)
	meters := int(geo.Distance(branchPoint, point))
	price := 500 + meters/10
	minutes := meters/500 + 15

	region, city, street, house := splitAddress(req.Address)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.orders[id] = &entity.OrderListing{
		ID:               id,
		IIN:              req.IIN,
		RequestID:        req.RequestID,
		ServiceName:      "Доставка документа",
		OrganizationCode: "esil-01",
		OrganizationName: "ЦОН Есиль",
		RecipientName:    req.FirstName,
		RecipientSurname: req.LastName,
		RecipientPhone:   req.Phone,
		Region:           region,
		City:             city,
		Street:           street,
		House:            house,
		AdditionalData:   req.AdditionalData,
		TrustedFaceIIN:   req.TrustedFaceIIN,
		DeliveryPrice:    price,
		Status:           "NEW",
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{
		"orderId":    id,
		"branchName": "ЦОН Есиль",
		"price":      price,
		"time":       minutes,
		"distance":   meters,
	})
}

// splitAddress breaks "Region, City, Street House" into listing fields,
// tolerating shorter inputs.
func splitAddress(address string) (region, city, street, house string) {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 0:
		return "", "", "", ""
	case 1:
		street, house = splitHouse(parts[0])

		return "", "", street, house
	case 2:
		street, house = splitHouse(parts[1])

		return "", parts[0], street, house
	default:
		street, house = splitHouse(parts[len(parts)-1])

		return parts[0], parts[1], street, house
	}
}

func splitHouse(streetHouse string) (street, house string) {
	idx := strings.LastIndex(streetHouse, " ")
	if idx < 0 {
		return streetHouse, ""
	}

	last := streetHouse[idx+1:]
	if last == "" || last[0] < '0' || last[0] > '9' {
		return streetHouse, ""
	}

	return streetHouse[:idx], last
}

type orderIDRequest struct {
	OrderID int `json:"orderId"`
}

func (s *Server) confirmOrder(c echo.Context) error {
	var req orderIDRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[req.OrderID]
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	order.Status = "PAID"

	return c.NoContent(http.StatusOK)
}

type startDeliverRequest struct {
	OrderID int    `json:"orderId"`
	Phone   string `json:"phone"`
	IIN     string `json:"iin"`
}

func (s *Server) startDeliver(c echo.Context) error {
	var req startDeliverRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[req.OrderID]
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	if order.CourierIIN != "" {
		return c.NoContent(http.StatusConflict)
	}

	order.CourierIIN = req.IIN
	order.CourierPhone = req.Phone
	order.Status = "DELIVERING"

	return c.NoContent(http.StatusOK)
}
