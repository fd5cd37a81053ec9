package cmd

import (
	"log/slog"

	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/kafka"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/jobs"
	"backoffice/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	clock      kernel.Clock
	logger     *slog.Logger
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	publisher  *kafka.StatusChangedPublisher
	uowFactory ports.UnitOfWorkFactory
}

// NewCompositionRoot wires the unit of work with its event publishers.
// Kafka publishing is enabled when KafkaHost is set.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, err
	}

	publishers := []ports.EventPublisher{recorder}
	var publisher *kafka.StatusChangedPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewStatusChangedPublisher(kafka.NewWriter(config.KafkaHost, config.KafkaStatusChangedTopic))
		publishers = append(publishers, publisher)
	} else {
		logger.Warn("KAFKA_HOST is not set, status changes will not be published")
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		clock:      kernel.SystemClock(),
		logger:     logger,
		registry:   registry,
		recorder:   recorder,
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger, publishers...),
	}, nil
}

// Close releases the Kafka writer.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) purchaseOrderUoWFactory() commands.PurchaseOrderUoWFactory {
	return FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) allUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	return commands.NewUpdatePaymentStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	return commands.NewCreatePurchaseOrderCommandHandler(c.purchaseOrderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRecordReceiptsCommandHandler() commands.RecordReceiptsCommandHandler {
	return commands.NewRecordReceiptsCommandHandler(c.purchaseOrderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkPurchaseOrderReceivedCommandHandler() commands.MarkPurchaseOrderReceivedCommandHandler {
	return commands.NewMarkPurchaseOrderReceivedCommandHandler(c.purchaseOrderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUnassignRiderCommandHandler() commands.UnassignRiderCommandHandler {
	return commands.NewUnassignRiderCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDispatchPendingDeliveryCommandHandler() commands.DispatchPendingDeliveryCommandHandler {
	return commands.NewDispatchPendingDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	return commands.NewCreateRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRiderAvailabilityCommandHandler() commands.UpdateRiderAvailabilityCommandHandler {
	return commands.NewUpdateRiderAvailabilityCommandHandler(c.riderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateRiderLocationCommandHandler() commands.UpdateRiderLocationCommandHandler {
	return commands.NewUpdateRiderLocationCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateRateRiderCommandHandler() commands.RateRiderCommandHandler {
	return commands.NewRateRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	return commands.NewChangeStatusCommandHandler(c.allUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.gormDB)
}

// NewEcho builds the HTTP server with every use case and the /metrics endpoint.
func (c *CompositionRoot) NewEcho(doc *openapi3.T) (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:               c.CreateCreateOrderCommandHandler(),
		CreatePurchaseOrder:       c.CreateCreatePurchaseOrderCommandHandler(),
		CreateDelivery:            c.CreateCreateDeliveryCommandHandler(),
		CreateRider:               c.CreateCreateRiderCommandHandler(),
		ChangeStatus:              c.CreateChangeStatusCommandHandler(),
		UpdatePaymentStatus:       c.CreateUpdatePaymentStatusCommandHandler(),
		RecordReceipts:            c.CreateRecordReceiptsCommandHandler(),
		MarkPurchaseOrderReceived: c.CreateMarkPurchaseOrderReceivedCommandHandler(),
		AssignRider:               c.CreateAssignRiderCommandHandler(),
		UnassignRider:             c.CreateUnassignRiderCommandHandler(),
		CompleteDelivery:          c.CreateCompleteDeliveryCommandHandler(),
		DispatchPendingDelivery:   c.CreateDispatchPendingDeliveryCommandHandler(),
		UpdateRiderAvailability:   c.CreateUpdateRiderAvailabilityCommandHandler(),
		UpdateRiderLocation:       c.CreateUpdateRiderLocationCommandHandler(),
		RateRider:                 c.CreateRateRiderCommandHandler(),
		GetActiveDeliveries:       c.CreateGetActiveDeliveriesQueryHandler(),
		GetAvailableRiders:        c.CreateGetAvailableRidersQueryHandler(),
	}, c.recorder, c.clock, c.logger)

	return httpin.NewEcho(server, doc, promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}

// NewJobManager creates the manager for the scheduled jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	dispatchJob := jobs.NewRiderDispatchJob(
		c.CreateDispatchPendingDeliveryCommandHandler(),
		c.recorder,
		c.config.DispatchSchedule,
		c.logger,
	)
	return jobs.NewJobManager(dispatchJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

func (f FuncPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
