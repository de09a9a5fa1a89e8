package bootstrap

import (
	"context"
	"log"
	"time"

	"renderiq-ambassador-be/internal/config"
	"renderiq-ambassador-be/internal/constant"
	"renderiq-ambassador-be/internal/controller"
	"renderiq-ambassador-be/internal/pkg/logger"
	"renderiq-ambassador-be/internal/pkg/mailer"
	"renderiq-ambassador-be/internal/repository/memory"
	"renderiq-ambassador-be/internal/repository/unitofwork"
	"renderiq-ambassador-be/internal/service"
	"renderiq-ambassador-be/pkg/store"

	pktNats "renderiq-ambassador-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AmbassadorController controller.IAmbassadorController
	ReferralController   controller.IReferralController
	PaymentController    controller.IPaymentController
	AdminController      controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService   service.IConsumerService
	EventAuditService service.IEventAuditService
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
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
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

	// Caches
	discountCache := store.NewRedisDiscountCache(rdb, time.Duration(cfg.Program.CodeCacheTTLSeconds)*time.Second)
	tierCache := memory.NewTierCache(time.Duration(cfg.Program.TierCacheTTLSeconds) * time.Second)

	// Midtrans Core API client, used to cross-check webhook notifications.
	var coreClient *coreapi.Client
	if cfg.Midtrans.ServerKey != "" {
		midtransEnv := midtrans.Sandbox
		if cfg.Midtrans.IsProduction {
			midtransEnv = midtrans.Production
		}
		coreClient = &coreapi.Client{}
		coreClient.New(cfg.Midtrans.ServerKey, midtransEnv)
	}

	// 3. Services
	publisherService := service.NewPublisherService(constant.TopicReferralRecorded, pubSub)

	ambassadorService := service.NewAmbassadorService(uowFactory, natsPub, emailService, discountCache, sysLogger)
	referralService := service.NewReferralService(uowFactory, publisherService, discountCache, sysLogger)
	commissionService := service.NewCommissionService(uowFactory, natsPub, coreClient, cfg.Midtrans.ServerKey, sysLogger)
	payoutService := service.NewPayoutService(uowFactory, natsPub, emailService, sysLogger)
	tierService := service.NewVolumeTierService(uowFactory, tierCache, discountCache, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		constant.TopicReferralRecorded,
		tierService,
	)
	eventAuditService := service.NewEventAuditService(natsSub, sysLogger)

	// 4. Controllers
	return &Container{
		AmbassadorController: controller.NewAmbassadorController(ambassadorService, referralService, commissionService, payoutService),
		ReferralController:   controller.NewReferralController(referralService),
		PaymentController:    controller.NewPaymentController(commissionService),
		AdminController:      controller.NewAdminController(ambassadorService, payoutService, tierService),

		ConsumerService:   consumerService,
		EventAuditService: eventAuditService,
	}
}
