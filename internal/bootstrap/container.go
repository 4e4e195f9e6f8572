package bootstrap

import (
	"time"

	"jf-travels-be/internal/config"
	"jf-travels-be/internal/controller"
	"jf-travels-be/internal/mapper"
	"jf-travels-be/internal/pkg/logger"
	"jf-travels-be/internal/repository/contract"
	"jf-travels-be/internal/repository/memory"
	"jf-travels-be/internal/service"
	"jf-travels-be/internal/websocket"
	"jf-travels-be/pkg/exchange"
	"jf-travels-be/pkg/identity"
	"jf-travels-be/pkg/rolecheck"
)

type Container struct {
	// Controllers
	NavigationController controller.INavigationController
	CurrencyController   controller.ICurrencyController
	AuthController       controller.IAuthController
	SessionController    controller.ISessionController
	CatalogController    controller.ICatalogController
	AdminController      controller.IAdminController

	// Session lifecycle root, exposed so main can start/stop the
	// identity subscription.
	SessionService interface {
		Start() error
		Stop()
	}

	// Render feed
	RenderHub *websocket.Hub

	IdentityProvider *identity.GoChannelProvider

	// SessionRepository backs the JWT guard's live-session check.
	SessionRepository contract.SessionRepository
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Fixtures & repositories
	rates := memory.DefaultRates()
	rateRepo := memory.NewRateRepository(rates)
	tourRepo := memory.NewTourRepository(memory.DefaultTours())
	bookingRepo := memory.NewBookingRepository(memory.DefaultBookings())
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Auth.SessionTTLHours) * time.Hour)

	// 3. Conversion engine & mappers
	converter := exchange.NewConverter(rates)
	currencyMapper := mapper.NewCurrencyMapper()
	catalogMapper := mapper.NewCatalogMapper(converter)

	// 4. Identity bus + role lookup
	provider := identity.NewGoChannelProvider(sysLogger)
	roleClient := rolecheck.NewClient(cfg.Auth.AdminCheckURL)

	// 5. Render feed
	renderHub := websocket.NewHub(sysLogger)
	go renderHub.Run()

	// 6. Services
	sessionService := service.NewSessionService(provider, roleClient, converter, cfg.Exchange.DefaultCurrency, sysLogger)
	navigationService := service.NewNavigationService(sessionService, renderHub, sysLogger)
	sessionService.BindNavigator(navigationService)

	currencyService := service.NewCurrencyService(converter, rateRepo, currencyMapper, sysLogger)
	authService := service.NewAuthService(userRepo, sessionRepo, provider, cfg.Auth.JwtSecret,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour, sysLogger)
	catalogService := service.NewCatalogService(tourRepo, bookingRepo, converter, catalogMapper)
	adminService := service.NewAdminService(tourRepo, bookingRepo, userRepo, converter, catalogMapper, sysLogger)

	return &Container{
		NavigationController: controller.NewNavigationController(navigationService),
		CurrencyController:   controller.NewCurrencyController(currencyService),
		AuthController:       controller.NewAuthController(authService),
		SessionController:    controller.NewSessionController(sessionService, authService, navigationService),
		CatalogController:    controller.NewCatalogController(catalogService, sessionService),
		AdminController:      controller.NewAdminController(adminService, currencyService, sessionService),
		SessionService:       sessionService,
		RenderHub:            renderHub,
		IdentityProvider:     provider,
		SessionRepository:    sessionRepo,
	}
}
