package bootstrap

import (
	"context"
	"log"

	"service-marketplace-be/internal/config"
	"service-marketplace-be/internal/controller"
	"service-marketplace-be/internal/pkg/logger"
	"service-marketplace-be/internal/pkg/mailer"
	"service-marketplace-be/internal/repository/unitofwork"
	"service-marketplace-be/internal/service"
	"service-marketplace-be/internal/websocket"

	pkgNats "service-marketplace-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController    controller.IUserController
	AgentController   controller.IAgentController
	AdminController   controller.IAdminController
	ContentController controller.IContentController

	// Background services (main.go starts these)
	BroadcastConsumer   service.IBroadcastConsumerService
	NotificationService service.INotificationService

	// WebSockets
	WebSocketHub *websocket.Hub
	ChatRelay    service.IChatRelayService
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

	// 2. Event Bus (in-process, carries persisted messages to the hub)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
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
		rdb = nil
	}

	// WebSocket Hub, with its own log file so chat traffic doesn't drown
	// the application log.
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	wsHub := websocket.NewHub(rdb, chatLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(natsPub, sysLogger)

	chatService := service.NewChatService(uowFactory, publisherService)
	chatRelay := service.NewChatRelayService(chatService, pubSub, chatLogger)
	broadcastConsumer := service.NewBroadcastConsumerService(pubSub, wsHub, chatLogger)

	userService := service.NewUserService(uowFactory, publisherService, cfg)
	agentService := service.NewAgentService(uowFactory, publisherService, emailService, sysLogger, cfg)
	adminService := service.NewAdminService(uowFactory, cfg)
	queryService := service.NewQueryService(uowFactory, publisherService)
	contentService := service.NewContentService(uowFactory)

	notificationService := service.NewNotificationService(uowFactory, natsSub, sysLogger)

	// 4. Controllers
	return &Container{
		UserController:    controller.NewUserController(userService, chatService, queryService, cfg),
		AgentController:   controller.NewAgentController(agentService, chatService, cfg),
		AdminController:   controller.NewAdminController(adminService, contentService, cfg),
		ContentController: controller.NewContentController(contentService),

		BroadcastConsumer:   broadcastConsumer,
		NotificationService: notificationService,

		WebSocketHub: wsHub,
		ChatRelay:    chatRelay,
	}
}
