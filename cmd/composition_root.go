package cmd

import (
	"errors"
	"log/slog"

	httpadapter "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/ors"
	"parcel/internal/adapters/out/postgres"
	geocache "parcel/internal/adapters/out/redis"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"
	"parcel/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	router     ports.Router
	logger     *slog.Logger
}

// NewCompositionRoot wires the outbound adapters. redisClient may be nil, in
// which case geocoding goes straight to the geocoding service.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
) (CompositionRoot, error) {
	orsConfig := ors.Config{
		BaseURL: configs.ORSBaseURL,
		APIKey:  configs.ORSAPIKey,
		Profile: configs.ORSProfile,
		Country: configs.ORSCountry,
		Timeout: configs.UpstreamTimeout,
	}

	var geocoder ports.Geocoder = ors.NewGeocoder(orsConfig, nil)
	if redisClient != nil {
		cached, err := geocache.NewCachingGeocoder(
			geocoder, redisClient, configs.GeocodeCacheTTL, configs.UpstreamTimeout, logger)
		if err != nil {
			return CompositionRoot{}, err
		}
		geocoder = cached
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geocoder,
		router:     ors.NewRouter(orsConfig, nil),
		logger:     logger,
	}, nil
}

// CreateQuoter builds the quote pipeline for the named pricing strategy using
// the configured distance mode and size measure.
func (c *CompositionRoot) CreateQuoter(pricingStrategy string) (*services.Quoter, error) {
	resolver, err := services.NewLocalityResolver(c.geocoder)
	if err != nil {
		return nil, err
	}

	distance, err := services.NewDistanceStrategy(c.configs.DistanceMode, c.router)
	if err != nil {
		return nil, err
	}

	measure, err := services.ParseSizeMeasure(c.configs.SizeMeasure)
	if err != nil {
		return nil, err
	}

	pricing, err := services.NewPricingStrategy(pricingStrategy, measure)
	if err != nil {
		return nil, err
	}

	return services.NewQuoter(resolver, distance, pricing)
}

func (c *CompositionRoot) CreateRegisterShipmentCommandHandler() (commands.RegisterShipmentCommandHandler, error) {
	quoter, err := c.CreateQuoter(services.PricingBracketed)
	if err != nil {
		return commands.RegisterShipmentCommandHandler{}, err
	}

	var dispatcher commands.CourierDispatcher
	if c.configs.AssignCourierOnCreate {
		dispatcher = services.NewCourierDispatcher(nil)
	}

	return commands.NewRegisterShipmentCommandHandler(
		c.uowFactoryFunc(),
		quoter,
		services.NewTrackingCodeGenerator(nil, nil),
		dispatcher,
	), nil
}

func (c *CompositionRoot) CreateAssignPendingCourierCommandHandler() commands.AssignPendingCourierCommandHandler {
	return commands.NewAssignPendingCourierCommandHandler(c.uowFactoryFunc(), services.NewCourierDispatcher(nil))
}

func (c *CompositionRoot) CreateTransitionShipmentStatusCommandHandler() commands.TransitionShipmentStatusCommandHandler {
	return commands.NewTransitionShipmentStatusCommandHandler(c.shipmentUoWFactoryFunc())
}

func (c *CompositionRoot) CreateFinalizeByTrackingCodeCommandHandler() commands.FinalizeByTrackingCodeCommandHandler {
	return commands.NewFinalizeByTrackingCodeCommandHandler(c.shipmentUoWFactoryFunc())
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactoryFunc())
}

func (c *CompositionRoot) CreateSetCustomerEnabledCommandHandler() commands.SetCustomerEnabledCommandHandler {
	return commands.NewSetCustomerEnabledCommandHandler(c.customerUoWFactoryFunc())
}

func (c *CompositionRoot) CreateCalculateQuoteQueryHandler() (queries.CalculateQuoteQueryHandler, error) {
	quoter, err := c.CreateQuoter(c.configs.PricingStrategy)
	if err != nil {
		return queries.CalculateQuoteQueryHandler{}, err
	}
	return queries.NewCalculateQuoteQueryHandler(quoter), nil
}

func (c *CompositionRoot) CreateGetShipmentByTrackingCodeQueryHandler() queries.GetShipmentByTrackingCodeQueryHandler {
	return queries.NewGetShipmentByTrackingCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierShipmentsQueryHandler() queries.GetCourierShipmentsQueryHandler {
	return queries.NewGetCourierShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP server with every use case it serves.
func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	if c.configs.JWTSecret == "" {
		return nil, errors.New("JWT secret is not configured")
	}

	register, err := c.CreateRegisterShipmentCommandHandler()
	if err != nil {
		return nil, err
	}

	calculate, err := c.CreateCalculateQuoteQueryHandler()
	if err != nil {
		return nil, err
	}

	createCourier := c.CreateCreateCourierCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		RegisterShipment:          register,
		TransitionShipmentStatus:  c.CreateTransitionShipmentStatusCommandHandler(),
		FinalizeByTrackingCode:    c.CreateFinalizeByTrackingCodeCommandHandler(),
		CreateCourier:             &createCourier,
		CreateCustomer:            c.CreateCreateCustomerCommandHandler(),
		SetCustomerEnabled:        c.CreateSetCustomerEnabledCommandHandler(),
		CalculateQuote:            calculate,
		GetShipmentByTrackingCode: c.CreateGetShipmentByTrackingCodeQueryHandler(),
		GetCourierShipments:       c.CreateGetCourierShipmentsQueryHandler(),
		GetAllCouriers:            c.CreateGetAllCouriersQueryHandler(),
	}, quote.Policy{HeightLimited: c.configs.HeightLimited}, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignPendingCourierCommandHandler(), c.configs.AssignmentSchedule, c.logger)
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactoryFunc() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactoryFunc() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
