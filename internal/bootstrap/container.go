package bootstrap

import (
	"context"
	"log"
	"time"

	"blogmosaic/internal/config"
	"blogmosaic/internal/controller"
	"blogmosaic/internal/gateway"
	"blogmosaic/internal/handler"
	"blogmosaic/internal/pkg/logger"
	"blogmosaic/internal/service"
	"blogmosaic/internal/session"
	"blogmosaic/internal/websocket"

	pktNats "blogmosaic/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

const toastTopic = "toasts"

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	PageController controller.IPageController
	PostController controller.IPostController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	AuditService    service.IAuditService // nil when NATS is not configured

	// WebSockets & Toasts
	ToastHandler *handler.ToastHandler
	WebSocketHub *websocket.Hub

	// Shared infrastructure the server middleware needs
	Logger       logger.ILogger
	SessionStore session.Store
	TokenCodec   *session.TokenCodec
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			natsSub = nil
		}
	}

	// Redis (optional, enables cross-instance toast fan-out and sessions)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// Session store: memory by default, redis when configured
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var store session.Store
	if cfg.Session.Backend == "redis" && rdb != nil {
		store = session.NewRedisStore(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		store = session.NewMemoryStore(sessionTTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}
	codec := session.NewTokenCodec(cfg.Session.JWTSecret, sessionTTL)

	// Remote content service gateways
	remote := gateway.NewClient(cfg.Remote)
	accounts := gateway.NewAccountGateway(remote)
	docs := gateway.NewDocumentGateway(remote)
	files, err := gateway.NewFileStore(cfg.Storage)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize file storage: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/toasts.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	toastService := service.NewToastService(pubSub, toastTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, toastTopic, wsHub)

	var auditService service.IAuditService
	if natsSub != nil {
		auditService = service.NewAuditService(natsSub, sysLogger)
	}

	authService := service.NewAuthService(accounts, store, codec, toastService, natsPub, sysLogger)
	postService := service.NewPostService(docs, files, toastService, natsPub, sysLogger)

	// Handler
	toastHandler := handler.NewToastHandler(store, codec, cfg.Session.CookieName, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService, cfg.Session.CookieName, sessionTTL),
		PageController: controller.NewPageController(postService),
		PostController: controller.NewPostController(postService),

		ConsumerService: consumerService,
		AuditService:    auditService,

		ToastHandler: toastHandler,
		WebSocketHub: wsHub,

		Logger:       sysLogger,
		SessionStore: store,
		TokenCodec:   codec,
	}
}
