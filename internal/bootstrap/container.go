package bootstrap

import (
	"context"
	"log"
	"os"

	"ai-shopassist-be/internal/config"
	"ai-shopassist-be/internal/controller"
	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/internal/repository/implementation"
	"ai-shopassist-be/internal/repository/memory"
	redisrepo "ai-shopassist-be/internal/repository/redis"
	"ai-shopassist-be/internal/service"
	"ai-shopassist-be/pkg/assist/recommend"
	"ai-shopassist-be/pkg/assist/require"
	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/llm/factory"

	pktNats "ai-shopassist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	CatalogController controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	domainLogger := log.New(os.Stdout, "", log.LstdFlags)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS (best effort; chat works without the event stream)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Session store backend
	var sessionRepo contract.SessionRepository
	if cfg.Session.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisrepo.NewSessionRepository(rdb, cfg.Session.TTL)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(cfg.Session.TTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 4. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBase,
		cfg.Keys.GoogleGemini,
		cfg.Ai.Timeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Catalog + Conversation Engine
	catalogRepo := implementation.NewCatalogRepository(db)
	accessor := catalog.NewAccessor(service.NewCatalogSource(catalogRepo), cfg.App.ImageBaseURL)

	extractor := require.NewExtractor(llmProvider, domainLogger)
	orchestrator := recommend.NewOrchestrator(accessor, llmProvider, extractor, domainLogger)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.AnalyticsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.AnalyticsTopic)

	chatService := service.NewChatService(
		sessionRepo,
		orchestrator,
		publisherService,
		natsPub,
		sysLogger,
	)
	catalogService := service.NewCatalogService(accessor)

	// 7. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService, consumerService),
		CatalogController: controller.NewCatalogController(catalogService),

		ConsumerService: consumerService,
	}
}
