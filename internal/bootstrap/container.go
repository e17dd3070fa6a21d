package bootstrap

import (
	"context"
	"log"

	"fikrswap-academy-be/internal/authstate"
	"fikrswap-academy-be/internal/config"
	"fikrswap-academy-be/internal/controller"
	"fikrswap-academy-be/internal/handler"
	"fikrswap-academy-be/internal/identity"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/pkg/mailer"
	"fikrswap-academy-be/internal/pkg/notifier"
	"fikrswap-academy-be/internal/repository/implementation"
	"fikrswap-academy-be/internal/repository/memory"
	"fikrswap-academy-be/internal/repository/unitofwork"
	"fikrswap-academy-be/internal/service"
	"fikrswap-academy-be/internal/websocket"

	pktNats "fikrswap-academy-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	CourseController    controller.ICourseController
	LiveClassController controller.ILiveClassController
	UserController      controller.IUserController
	ContactController   controller.IContactController
	ContentController   controller.IContentController

	// Session state facade, shared by controllers and middleware.
	AuthStore *authstate.Store

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Identity Provider & Session State
	bus := identity.NewEventBus(sysLogger)
	oauthManager := identity.NewOAuthManager(cfg)
	provider := identity.NewLocalProvider(uowFactory, bus, oauthManager, emailService, natsPub, cfg, sysLogger)

	// The store's toasts go to stdout in this deployment; navigation
	// intents are surfaced to clients through controller responses, so
	// server side we only record them.
	authStore := authstate.NewStore(
		provider,
		notifier.NewConsole(),
		authstate.NavigatorFunc(func(path string) {
			sysLogger.Info("AuthStore", "Navigation requested", map[string]interface{}{"path": path})
		}),
		sysLogger,
	)
	authStore.Initialize(context.Background())

	// 4. Services
	sessionRepo := memory.NewLiveSessionRepository()

	userService := service.NewUserService(uowFactory)
	courseService := service.NewCourseService(uowFactory, natsPub, sysLogger)
	liveClassService := service.NewLiveClassService(uowFactory, sessionRepo, wsHub, natsPub, sysLogger)
	contactService := service.NewContactService(uowFactory, natsPub, sysLogger)
	dashboardService := service.NewDashboardService(courseService, liveClassService, sysLogger)

	// 5. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 6. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authStore, provider),
		CourseController:    controller.NewCourseController(courseService),
		LiveClassController: controller.NewLiveClassController(liveClassService, userService),
		UserController:      controller.NewUserController(userService, dashboardService),
		ContactController:   controller.NewContactController(contactService),
		ContentController:   controller.NewContentController(),

		AuthStore: authStore,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
