//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	bookingGateway "service/internal/gateway/kafka/booking"
	"service/internal/handlers/rest/inquiries_get"
	"service/internal/handlers/rest/inquiry_cancel_post"
	"service/internal/handlers/rest/inquiry_confirm_post"
	"service/internal/handlers/rest/inquiry_convert_post"
	"service/internal/handlers/rest/inquiry_post"
	"service/internal/handlers/rest/inquiry_vehicle_post"
	"service/internal/handlers/rest/pod_dispatch_put"
	"service/internal/handlers/rest/pod_post"
	"service/internal/handlers/rest/shipment_get"
	"service/internal/handlers/rest/shipments_get"
	"service/internal/handlers/tasks/worklist_refresh"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/refnumber"

	bookingRepo "service/internal/repository/booking"
	"service/internal/repository/directory"
	inquiryRepo "service/internal/repository/inquiry"
	manifestRepo "service/internal/repository/manifest"
	podRepo "service/internal/repository/pod"
	tripRepo "service/internal/repository/trip"
	inquiryService "service/internal/service/inquiry"
	podService "service/internal/service/pod"
	shipmentService "service/internal/service/shipment"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RefreshInterval time.Duration
)

type Application struct {
	ServiceInquiry    ServiceInquiry
	ServiceShipment   ServiceShipment
	ServicePOD        ServicePOD
	BackgroundWorkers *background.Worker
}

type ServiceInquiry interface {
	inquiry_post.Service
	inquiries_get.Service
	inquiry_confirm_post.Service
	inquiry_vehicle_post.Service
	inquiry_cancel_post.Service
	inquiry_convert_post.Service
}

type ServiceShipment interface {
	shipments_get.Service
	shipment_get.Service
}

type ServicePOD interface {
	pod_post.Service
	pod_dispatch_put.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRefreshInterval,

		provideBookingRepository,
		provideManifestRepository,
		provideTripRepository,
		providePODRepository,
		provideInquiryRepository,
		provideBranchDirectory,
		provideCityDirectory,
		provideVehicleDirectory,
		provideDriverDirectory,
		provideStaffDirectory,

		provideBookingGateway,
		refnumber.New,

		provideServiceShipment,
		provideServiceInquiry,
		provideServicePOD,

		provideWorklistRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceInquiry), new(*inquiryService.Inquiry)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServicePOD), new(*podService.POD)),

		wire.Bind(new(shipmentService.BookingRepository), new(*bookingRepo.Repository)),
		wire.Bind(new(shipmentService.ManifestRepository), new(*manifestRepo.Repository)),
		wire.Bind(new(shipmentService.TripRepository), new(*tripRepo.Repository)),
		wire.Bind(new(shipmentService.PODRepository), new(*podRepo.Repository)),
		wire.Bind(new(shipmentService.BranchDirectory), new(*directory.Branches)),
		wire.Bind(new(shipmentService.CityDirectory), new(*directory.Cities)),
		wire.Bind(new(shipmentService.VehicleDirectory), new(*directory.Vehicles)),

		wire.Bind(new(inquiryService.Repository), new(*inquiryRepo.Repository)),
		wire.Bind(new(inquiryService.VehicleDirectory), new(*directory.Vehicles)),
		wire.Bind(new(inquiryService.DriverDirectory), new(*directory.Drivers)),
		wire.Bind(new(inquiryService.BookingGateway), new(*bookingGateway.BookingGateway)),
		wire.Bind(new(inquiryService.NumberFactory), new(*refnumber.NumberFactory)),
		wire.Bind(new(inquiryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(podService.Repository), new(*podRepo.Repository)),
		wire.Bind(new(podService.BookingRepository), new(*bookingRepo.Repository)),
		wire.Bind(new(podService.StaffDirectory), new(*directory.Staff)),
		wire.Bind(new(podService.StatusInvalidator), new(*shipmentService.Service)),
		wire.Bind(new(podService.NumberFactory), new(*refnumber.NumberFactory)),
		wire.Bind(new(podService.TxManager), new(*tx.Manager)),

		wire.Bind(new(worklist_refresh.Service), new(*shipmentService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	InquiryService  *inquiryService.Inquiry
	ShipmentService *shipmentService.Service
}

// InitializeKafkaWorkerApp wires the booking-created worker
// (cmd/worker-booking-created).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideBookingRepository,
		provideManifestRepository,
		provideTripRepository,
		providePODRepository,
		provideInquiryRepository,
		provideBranchDirectory,
		provideCityDirectory,
		provideVehicleDirectory,
		provideDriverDirectory,

		provideBookingGateway,
		refnumber.New,

		provideServiceShipment,
		provideServiceInquiry,

		wire.Bind(new(shipmentService.BookingRepository), new(*bookingRepo.Repository)),
		wire.Bind(new(shipmentService.ManifestRepository), new(*manifestRepo.Repository)),
		wire.Bind(new(shipmentService.TripRepository), new(*tripRepo.Repository)),
		wire.Bind(new(shipmentService.PODRepository), new(*podRepo.Repository)),
		wire.Bind(new(shipmentService.BranchDirectory), new(*directory.Branches)),
		wire.Bind(new(shipmentService.CityDirectory), new(*directory.Cities)),
		wire.Bind(new(shipmentService.VehicleDirectory), new(*directory.Vehicles)),

		wire.Bind(new(inquiryService.Repository), new(*inquiryRepo.Repository)),
		wire.Bind(new(inquiryService.VehicleDirectory), new(*directory.Vehicles)),
		wire.Bind(new(inquiryService.DriverDirectory), new(*directory.Drivers)),
		wire.Bind(new(inquiryService.BookingGateway), new(*bookingGateway.BookingGateway)),
		wire.Bind(new(inquiryService.NumberFactory), new(*refnumber.NumberFactory)),
		wire.Bind(new(inquiryService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideManifestRepository(querier *querier.Querier) *manifestRepo.Repository {
	return manifestRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func providePODRepository(querier *querier.Querier) *podRepo.Repository {
	return podRepo.New(querier)
}

func provideInquiryRepository(querier *querier.Querier) *inquiryRepo.Repository {
	return inquiryRepo.New(querier)
}

func provideBranchDirectory(querier *querier.Querier) *directory.Branches {
	return directory.NewBranches(querier)
}

func provideCityDirectory(querier *querier.Querier) *directory.Cities {
	return directory.NewCities(querier)
}

func provideVehicleDirectory(querier *querier.Querier) *directory.Vehicles {
	return directory.NewVehicles(querier)
}

func provideDriverDirectory(querier *querier.Querier) *directory.Drivers {
	return directory.NewDrivers(querier)
}

func provideStaffDirectory(querier *querier.Querier) *directory.Staff {
	return directory.NewStaff(querier)
}

func provideBookingGateway(producer sarama.SyncProducer, cfg *config.Config) *bookingGateway.BookingGateway {
	return bookingGateway.New(producer, cfg.Kafka.Topics.InquiryConverted)
}

func provideServiceShipment(
	bookings shipmentService.BookingRepository,
	manifests shipmentService.ManifestRepository,
	trips shipmentService.TripRepository,
	pods shipmentService.PODRepository,
	branches shipmentService.BranchDirectory,
	cities shipmentService.CityDirectory,
	vehicles shipmentService.VehicleDirectory,
) *shipmentService.Service {
	return shipmentService.New(bookings, manifests, trips, pods, branches, cities, vehicles)
}

func provideServiceInquiry(
	repository inquiryService.Repository,
	vehicles inquiryService.VehicleDirectory,
	drivers inquiryService.DriverDirectory,
	gateway inquiryService.BookingGateway,
	numberFactory inquiryService.NumberFactory,
	txManager inquiryService.TxManager,
) *inquiryService.Inquiry {
	return inquiryService.New(repository, vehicles, drivers, gateway, numberFactory, txManager)
}

func provideServicePOD(
	repository podService.Repository,
	bookings podService.BookingRepository,
	staff podService.StaffDirectory,
	invalidator podService.StatusInvalidator,
	numberFactory podService.NumberFactory,
	txManager podService.TxManager,
) *podService.POD {
	return podService.New(repository, bookings, staff, invalidator, numberFactory, txManager)
}

func provideRefreshInterval(cfg *config.Config) RefreshInterval {
	return RefreshInterval(cfg.Tasks.WorklistRefreshInterval)
}

func provideWorklistRefreshTask(
	log logger.Logger,
	shipmentService worklist_refresh.Service,
	interval RefreshInterval,
) *worklist_refresh.WorklistRefresh {
	return worklist_refresh.NewWorklistRefresh(log, shipmentService, time.Duration(interval))
}

func provideTaskList(
	worklistRefreshTask *worklist_refresh.WorklistRefresh,
) []background.Task {
	return []background.Task{
		worklistRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
