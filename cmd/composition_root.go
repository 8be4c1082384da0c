package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	httpadapter "orderwizard/internal/adapters/in/http"
	"orderwizard/internal/adapters/out/countries"
	"orderwizard/internal/adapters/out/eventbus"
	"orderwizard/internal/adapters/out/httpclient"
	"orderwizard/internal/adapters/out/metrics"
	"orderwizard/internal/adapters/out/ordersapi"
	"orderwizard/internal/adapters/out/postgres"
	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/application/usecases/queries"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
	"orderwizard/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultCountriesAPIURL   = "https://restcountries.com"
	defaultStatesAPIURL      = "https://api.countrystatecity.in"
	defaultCountriesCacheTTL = 24 * time.Hour
	defaultDraftTTL          = 30 * 24 * time.Hour
	defaultOrderPlacedTopic  = "orderwizard.order-placed"
)

type publisher interface {
	ports.EventPublisher
	io.Closer
}

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	publisher  publisher
	controller services.SectionController
	calculator services.Calculator
	countries  *countries.Cache
	gateway    ports.OrderGateway
	rates      ports.RateProvider
	draftTTL   time.Duration
	now        commands.Clock
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	surcharge := services.DefaultShippingSurcharge
	if configs.ShippingSurcharge != "" {
		parsed, err := decimal.NewFromString(configs.ShippingSurcharge)
		if err != nil {
			return nil, fmt.Errorf("WIZARD_SHIPPING_SURCHARGE: %w", err)
		}
		surcharge = parsed
	}
	calculator, err := services.NewCalculator(surcharge)
	if err != nil {
		return nil, fmt.Errorf("WIZARD_SHIPPING_SURCHARGE: %w", err)
	}

	hsn, err := form.ParseHSNPolicy(configs.HSNPolicy)
	if err != nil {
		return nil, fmt.Errorf("WIZARD_HSN_POLICY: %w", err)
	}
	orderIDRequired := false
	if configs.OrderIDRequired != "" {
		if orderIDRequired, err = strconv.ParseBool(configs.OrderIDRequired); err != nil {
			return nil, fmt.Errorf("WIZARD_ORDER_ID_REQUIRED: %w", err)
		}
	}

	draftTTL, err := durationOr(configs.DraftTTL, defaultDraftTTL)
	if err != nil {
		return nil, fmt.Errorf("WIZARD_DRAFT_TTL: %w", err)
	}
	cacheTTL, err := durationOr(configs.CountriesCacheTTL, defaultCountriesCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("COUNTRIES_CACHE_TTL: %w", err)
	}
	timeout, err := durationOr(configs.ServiceTimeout, httpclient.DefaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("SERVICE_TIMEOUT: %w", err)
	}

	if configs.OrdersAPIURL == "" {
		return nil, errors.New("ORDERS_API_URL is required")
	}

	m := metrics.New(metrics.DefaultNamespace)
	observe := httpclient.WithObserver(m)

	directory := countries.NewDirectory(
		httpclient.New(httpclient.Config{
			Service: "countries",
			BaseURL: valueOr(configs.CountriesAPIURL, defaultCountriesAPIURL),
			Timeout: timeout,
		}, observe),
		httpclient.New(httpclient.Config{
			Service: "states",
			BaseURL: valueOr(configs.StatesAPIURL, defaultStatesAPIURL),
			Headers: map[string]string{"X-CSCAPI-KEY": configs.StatesAPIKey},
			Timeout: timeout,
		}, observe),
	)

	orders := httpclient.New(httpclient.Config{
		Service: "orders",
		BaseURL: configs.OrdersAPIURL,
		Token:   configs.OrdersAPIToken,
		Timeout: timeout,
	}, observe)

	var rates ports.RateProvider = ordersapi.StaticRates{}
	if configs.RatesAPIURL != "" {
		rates = ordersapi.NewRateProvider(httpclient.New(httpclient.Config{
			Service: "rates",
			BaseURL: configs.RatesAPIURL,
			Token:   configs.OrdersAPIToken,
			Timeout: timeout,
		}, observe))
	}

	var events publisher = eventbus.NewLogPublisher(slog.Default())
	if configs.KafkaHost != "" {
		events = eventbus.NewKafkaPublisher(eventbus.KafkaConfig{
			Brokers: strings.Split(configs.KafkaHost, ","),
			Topic:   valueOr(configs.OrderPlacedTopic, defaultOrderPlacedTopic),
		})
	}

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, events),
		metrics:    m,
		publisher:  events,
		controller: services.NewSectionController(form.NewRules(form.Policy{HSN: hsn, OrderIDRequired: orderIDRequired})),
		calculator: calculator,
		countries:  countries.NewCache(directory, cacheTTL),
		gateway:    ordersapi.NewGateway(orders),
		rates:      rates,
		draftTTL:   draftTTL,
		now:        time.Now,
	}, nil
}

func (c *CompositionRoot) draftUoWFactory() commands.DraftUoWFactory {
	return FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) kycUoWFactory() commands.KycUoWFactory {
	return FuncKycUoWFactory(func() commands.KycUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartDraftCommandHandler() commands.StartDraftCommandHandler {
	return commands.NewStartDraftCommandHandler(c.draftUoWFactory())
}

func (c *CompositionRoot) CreateSubmitConsignorCommandHandler() commands.SubmitConsignorCommandHandler {
	return commands.NewSubmitConsignorCommandHandler(c.draftUoWFactory(), c.controller, c.metrics)
}

func (c *CompositionRoot) CreateSubmitConsigneeCommandHandler() commands.SubmitConsigneeCommandHandler {
	return commands.NewSubmitConsigneeCommandHandler(c.draftUoWFactory(), c.controller, c.metrics)
}

func (c *CompositionRoot) CreateSubmitShipmentCommandHandler() commands.SubmitShipmentCommandHandler {
	return commands.NewSubmitShipmentCommandHandler(c.draftUoWFactory(), c.controller, c.gateway, c.metrics)
}

func (c *CompositionRoot) CreateRequestQuotesCommandHandler() commands.RequestQuotesCommandHandler {
	return commands.NewRequestQuotesCommandHandler(c.draftUoWFactory(), c.rates)
}

func (c *CompositionRoot) CreateSelectShippingOptionCommandHandler() commands.SelectShippingOptionCommandHandler {
	return commands.NewSelectShippingOptionCommandHandler(c.draftUoWFactory(), c.controller, c.metrics)
}

func (c *CompositionRoot) CreateReopenSectionCommandHandler() commands.ReopenSectionCommandHandler {
	return commands.NewReopenSectionCommandHandler(c.draftUoWFactory(), c.controller)
}

func (c *CompositionRoot) CreateDraftEditCommandHandler() commands.DraftEditCommandHandler {
	return commands.NewDraftEditCommandHandler(c.draftUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.draftUoWFactory(), c.controller, c.calculator, c.gateway, c.metrics, c.now,
	)
}

func (c *CompositionRoot) CreatePurgeStaleDraftsCommandHandler() commands.PurgeStaleDraftsCommandHandler {
	return commands.NewPurgeStaleDraftsCommandHandler(c.draftUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateKycReviewCommandHandler() commands.KycReviewCommandHandler {
	return commands.NewKycReviewCommandHandler(c.kycUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateGetDraftQueryHandler() queries.GetDraftQueryHandler {
	return queries.NewGetDraftQueryHandler(c.uowFactory.Create().DraftRepository(), c.calculator, c.controller)
}

func (c *CompositionRoot) CreateListCountriesQueryHandler() queries.ListCountriesQueryHandler {
	return queries.NewListCountriesQueryHandler(c.countries)
}

func (c *CompositionRoot) CreateListStatesQueryHandler() queries.ListStatesQueryHandler {
	return queries.NewListStatesQueryHandler(c.countries)
}

func (c *CompositionRoot) CreateGetKycCustomersQueryHandler() queries.GetKycCustomersQueryHandler {
	return queries.NewGetKycCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKycDocumentsQueryHandler() queries.GetKycDocumentsQueryHandler {
	return queries.NewGetKycDocumentsQueryHandler(c.gormDB)
}

// NewHTTPRouter builds the echo instance serving the API.
func (c *CompositionRoot) NewHTTPRouter(ctx context.Context) (*echo.Echo, error) {
	contract, err := httpadapter.LoadContract(ctx)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		StartDraft:           c.CreateStartDraftCommandHandler(),
		SubmitConsignor:      c.CreateSubmitConsignorCommandHandler(),
		SubmitConsignee:      c.CreateSubmitConsigneeCommandHandler(),
		SubmitShipment:       c.CreateSubmitShipmentCommandHandler(),
		RequestQuotes:        c.CreateRequestQuotesCommandHandler(),
		SelectShippingOption: c.CreateSelectShippingOptionCommandHandler(),
		ReopenSection:        c.CreateReopenSectionCommandHandler(),
		EditDraft:            c.CreateDraftEditCommandHandler(),
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		KycReview:            c.CreateKycReviewCommandHandler(),
		GetDraft:             c.CreateGetDraftQueryHandler(),
		ListCountries:        c.CreateListCountriesQueryHandler(),
		ListStates:           c.CreateListStatesQueryHandler(),
		GetKycCustomers:      c.CreateGetKycCustomersQueryHandler(),
		GetKycDocuments:      c.CreateGetKycDocumentsQueryHandler(),
	})

	return httpadapter.NewRouter(server, contract, c.metrics, c.ping), nil
}

// NewJobManager wires the background jobs.
func (c *CompositionRoot) NewJobManager(logger *slog.Logger) *jobs.JobManager {
	purge := c.CreatePurgeStaleDraftsCommandHandler()
	return jobs.NewJobManager(&purge, c.draftTTL, c.countries, logger)
}

// Close flushes the event publisher and closes the database pool.
func (c *CompositionRoot) Close() error {
	var closeErrs []error
	if err := c.publisher.Close(); err != nil {
		closeErrs = append(closeErrs, err)
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		closeErrs = append(closeErrs, sqlDB.Close())
	}
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type FuncDraftUoWFactory func() commands.DraftUoW

func (f FuncDraftUoWFactory) Create() commands.DraftUoW {
	return f()
}

type FuncKycUoWFactory func() commands.KycUoW

func (f FuncKycUoWFactory) Create() commands.KycUoW {
	return f()
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func durationOr(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}
