// Package http is the echo adapter: JSON endpoints over the command and query
// handlers, validated against the embedded OpenAPI document.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/rider"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
)

// CommandHandler is any handler of a write use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is any handler of a read use case.
type QueryHandler[Q any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// RejectionRecorder is told about requests refused by lifecycle rules.
type RejectionRecorder interface {
	Reject(kind lifecycle.Kind, err error)
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	CreateOrder               CommandHandler[commands.CreateOrderCommand]
	CreatePurchaseOrder       CommandHandler[commands.CreatePurchaseOrderCommand]
	CreateDelivery            CommandHandler[commands.CreateDeliveryCommand]
	CreateRider               CommandHandler[commands.CreateRiderCommand]
	ChangeStatus              CommandHandler[commands.ChangeStatusCommand]
	UpdatePaymentStatus       CommandHandler[commands.UpdatePaymentStatusCommand]
	RecordReceipts            CommandHandler[commands.RecordReceiptsCommand]
	MarkPurchaseOrderReceived CommandHandler[commands.MarkPurchaseOrderReceivedCommand]
	AssignRider               CommandHandler[commands.AssignRiderCommand]
	UnassignRider             CommandHandler[commands.UnassignRiderCommand]
	CompleteDelivery          CommandHandler[commands.CompleteDeliveryCommand]
	DispatchPendingDelivery   CommandHandler[commands.DispatchPendingDeliveryCommand]
	UpdateRiderAvailability   CommandHandler[commands.UpdateRiderAvailabilityCommand]
	UpdateRiderLocation       CommandHandler[commands.UpdateRiderLocationCommand]
	RateRider                 CommandHandler[commands.RateRiderCommand]

	GetActiveDeliveries QueryHandler[queries.GetActiveDeliveriesQuery, []queries.GetActiveDeliveriesQueryResponse]
	GetAvailableRiders  QueryHandler[queries.GetAvailableRidersQuery, []queries.GetAvailableRidersQueryResponse]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers   Handlers
	lifecycle  services.Lifecycle
	rejections RejectionRecorder
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewServer creates the server. rejections may be nil.
func NewServer(handlers Handlers, rejections RejectionRecorder, clock kernel.Clock, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers:   handlers,
		lifecycle:  services.NewLifecycle(),
		rejections: rejections,
		clock:      clock,
		logger:     logger.With("component", "http"),
	}
}

// NewEcho builds the echo instance with middleware and every route.
// metrics is mounted at /metrics when non-nil.
func NewEcho(s *Server, doc *openapi3.T, metrics http.Handler) (*echo.Echo, error) {
	validate, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/api/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api/v1", validate)
	s.RegisterRoutes(api)
	return e, nil
}

// RegisterRoutes mounts the API on g.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", s.CreateOrder)
	g.POST("/orders/:id/status", s.changeStatus(lifecycle.KindOrder))
	g.POST("/orders/:id/payment-status", s.UpdatePaymentStatus)

	g.POST("/purchase-orders", s.CreatePurchaseOrder)
	g.POST("/purchase-orders/:id/status", s.changeStatus(lifecycle.KindPurchaseOrder))
	g.POST("/purchase-orders/:id/receipts", s.RecordReceipts)
	g.POST("/purchase-orders/:id/receive-all", s.MarkPurchaseOrderReceived)

	g.POST("/deliveries", s.CreateDelivery)
	g.GET("/deliveries/active", s.GetActiveDeliveries)
	g.POST("/deliveries/dispatch", s.DispatchPendingDelivery)
	g.POST("/deliveries/:id/status", s.changeStatus(lifecycle.KindDelivery))
	g.POST("/deliveries/:id/rider", s.AssignRider)
	g.DELETE("/deliveries/:id/rider", s.UnassignRider)
	g.POST("/deliveries/:id/complete", s.CompleteDelivery)

	g.POST("/riders", s.CreateRider)
	g.GET("/riders/available", s.GetAvailableRiders)
	g.POST("/riders/:id/availability", s.UpdateRiderAvailability)
	g.POST("/riders/:id/location", s.UpdateRiderLocation)
	g.POST("/riders/:id/rating", s.RateRider)

	g.GET("/lifecycle/:kind/:status", s.ProjectDisplay)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req NewOrderRequest
	if err := s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindOrder, err)
	}

	details, err := req.toDetails()
	if err != nil {
		return s.respondError(c, lifecycle.KindOrder, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, details)
	if err != nil {
		return s.respondError(c, lifecycle.KindOrder, err)
	}
	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindOrder, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(c echo.Context) error {
	var req NewPurchaseOrderRequest
	if err := s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}

	details, err := req.toDetails()
	if err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(id, details)
	if err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}
	if err = s.handlers.CreatePurchaseOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	var req NewDeliveryRequest
	if err := s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	details, err := req.toDetails()
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(id, details)
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}
	if err = s.handlers.CreateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// CreateRider handles POST /api/v1/riders.
func (s *Server) CreateRider(c echo.Context) error {
	var req NewRiderRequest
	if err := s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRiderCommand(id, req.toContact())
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	if err = s.handlers.CreateRider.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// changeStatus handles POST /api/v1/{kind}/{id}/status.
func (s *Server) changeStatus(kind lifecycle.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathUUID(c, "id")
		if err != nil {
			return s.respondError(c, kind, err)
		}
		var req StatusRequest
		if err = s.bind(c, &req); err != nil {
			return s.respondError(c, kind, err)
		}

		cmd, err := commands.NewChangeStatusCommand(kind, id, req.Status)
		if err != nil {
			return s.respondError(c, kind, err)
		}
		if err = s.handlers.ChangeStatus.Handle(c.Request().Context(), cmd); err != nil {
			return s.respondError(c, kind, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// UpdatePaymentStatus handles POST /api/v1/orders/{id}/payment-status.
func (s *Server) UpdatePaymentStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindPayment, err)
	}
	var req StatusRequest
	if err = s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindPayment, err)
	}

	status, err := order.ParsePaymentStatus(req.Status)
	if err != nil {
		return s.respondError(c, lifecycle.KindPayment, err)
	}
	cmd, err := commands.NewUpdatePaymentStatusCommand(id, status)
	if err != nil {
		return s.respondError(c, lifecycle.KindPayment, err)
	}
	if err = s.handlers.UpdatePaymentStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindPayment, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RecordReceipts handles POST /api/v1/purchase-orders/{id}/receipts.
func (s *Server) RecordReceipts(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}
	var req ReceiptsRequest
	if err = s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}

	receipts, err := req.toDomain()
	if err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}
	cmd, err := commands.NewRecordReceiptsCommand(id, receipts)
	if err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}
	if err = s.handlers.RecordReceipts.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkPurchaseOrderReceived handles POST /api/v1/purchase-orders/{id}/receive-all.
func (s *Server) MarkPurchaseOrderReceived(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}

	cmd, err := commands.NewMarkPurchaseOrderReceivedCommand(id)
	if err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}
	if err = s.handlers.MarkPurchaseOrderReceived.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindPurchaseOrder, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignRider handles POST /api/v1/deliveries/{id}/rider.
func (s *Server) AssignRider(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}
	var req AssignRiderRequest
	if err = s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, errs.NewValueIsInvalidErrorWithCause("riderId", err))
	}

	cmd, err := commands.NewAssignRiderCommand(id, riderID)
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}
	if err = s.handlers.AssignRider.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UnassignRider handles DELETE /api/v1/deliveries/{id}/rider.
func (s *Server) UnassignRider(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	cmd, err := commands.NewUnassignRiderCommand(id)
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}
	if err = s.handlers.UnassignRider.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/deliveries/{id}/complete. The body is optional.
func (s *Server) CompleteDelivery(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}
	var req CompleteDeliveryRequest
	if err = s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id, delivery.Proof{
		Signature: req.Signature,
		Photos:    req.Photos,
	})
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}
	if err = s.handlers.CompleteDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DispatchPendingDelivery handles POST /api/v1/deliveries/dispatch.
func (s *Server) DispatchPendingDelivery(c echo.Context) error {
	cmd := commands.NewDispatchPendingDeliveryCommand()
	if err := s.handlers.DispatchPendingDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateRiderAvailability handles POST /api/v1/riders/{id}/availability.
func (s *Server) UpdateRiderAvailability(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	var req StatusRequest
	if err = s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	status, err := rider.ParseStatus(req.Status)
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	cmd, err := commands.NewUpdateRiderAvailabilityCommand(id, status)
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	if err = s.handlers.UpdateRiderAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateRiderLocation handles POST /api/v1/riders/{id}/location.
func (s *Server) UpdateRiderLocation(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	var req LocationRequest
	if err = s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	location, err := kernel.NewGeoLocation(*req.Latitude, *req.Longitude, s.clock.Now())
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	cmd, err := commands.NewUpdateRiderLocationCommand(id, location)
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	if err = s.handlers.UpdateRiderLocation.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RateRider handles POST /api/v1/riders/{id}/rating.
func (s *Server) RateRider(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	var req RatingRequest
	if err = s.bind(c, &req); err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	cmd, err := commands.NewRateRiderCommand(id, *req.Rating)
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}
	if err = s.handlers.RateRider.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(c echo.Context) error {
	deliveries, err := s.handlers.GetActiveDeliveries.Handle(c.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return s.respondError(c, lifecycle.KindDelivery, err)
	}

	response := make([]ActiveDeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = newActiveDeliveryResponse(d)
	}
	return c.JSON(http.StatusOK, response)
}

// GetAvailableRiders handles GET /api/v1/riders/available.
func (s *Server) GetAvailableRiders(c echo.Context) error {
	riders, err := s.handlers.GetAvailableRiders.Handle(c.Request().Context(), queries.NewGetAvailableRidersQuery())
	if err != nil {
		return s.respondError(c, lifecycle.KindRider, err)
	}

	response := make([]AvailableRiderResponse, len(riders))
	for i, r := range riders {
		response[i] = newAvailableRiderResponse(r)
	}
	return c.JSON(http.StatusOK, response)
}

// ProjectDisplay handles GET /api/v1/lifecycle/{kind}/{status}. With
// lenient=true an unknown status gets the neutral fallback badge instead of 400.
func (s *Server) ProjectDisplay(c echo.Context) error {
	kind, err := lifecycle.ParseKind(c.Param("kind"))
	if err != nil {
		return s.respondError(c, lifecycle.KindUnknown, err)
	}

	var lenient bool
	if err = runtime.BindQueryParameter("form", true, false, "lenient", c.QueryParams(), &lenient); err != nil {
		return s.respondError(c, kind, errs.NewValueIsInvalidErrorWithCause("lenient", err))
	}

	status := c.Param("status")
	display, err := s.lifecycle.ProjectDisplay(kind, status)
	if err != nil {
		if !lenient || !errors.Is(err, lifecycle.ErrUnknownStatus) {
			return s.respondError(c, kind, err)
		}
		display = lifecycle.FallbackDisplay(status)
	}

	return c.JSON(http.StatusOK, StatusDisplayResponse{
		Kind:    kind.String(),
		Status:  status,
		Display: display,
	})
}

// bind decodes the JSON body into req and validates its tags.
func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// pathUUID binds a UUID path parameter the way generated oapi-codegen wrappers do.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}
