package bootstrap

import (
	"log"
	"time"

	"sakhi-support-be/internal/config"
	"sakhi-support-be/internal/constant"
	"sakhi-support-be/internal/controller"
	"sakhi-support-be/internal/pkg/logger"
	"sakhi-support-be/internal/pkg/mailer"
	"sakhi-support-be/internal/pkg/serverutils"
	"sakhi-support-be/internal/pkg/storage"
	"sakhi-support-be/internal/repository/unitofwork"
	"sakhi-support-be/internal/service"
	"sakhi-support-be/pkg/chatbot"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	AuthController   controller.IAuthController
	ChatController   controller.IChatController
	ReportController controller.IReportController

	// Background services, exposed for main.go to run.
	ConsumerService service.IConsumerService
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
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	fileStore, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize upload dir: %v", err)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Gateway
	geminiClient := chatbot.NewGeminiClient(cfg.Keys.GoogleGemini)
	assistant := chatbot.NewGeminiAssistant(
		geminiClient,
		constant.SakhiSystemPromptV1,
		constant.SakhiSystemPromptAckV1,
		constant.ChatbotEmptyReplyFallback,
		constant.ChatbotErrorReplyFallback,
		constant.ChatbotTitleFallback,
	)

	// 4. Services
	statsCache := cache.New(30*time.Second, time.Minute)
	publisherService := service.NewPublisherService(cfg.Report.CreatedTopicName, pubSub)

	authService := service.NewAuthService(uowFactory, cfg.JWT, emailService, sysLogger)
	chatService := service.NewChatService(uowFactory, assistant, sysLogger)
	reportService := service.NewReportService(uowFactory, fileStore, publisherService, statsCache, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Report.CreatedTopicName,
		emailService,
		cfg.Report.AdminNotifyEmail,
		sysLogger,
	)

	// 5. Controllers
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.JWT, uowFactory)

	return &Container{
		Logger:           sysLogger,
		AuthController:   controller.NewAuthController(authService, jwtMiddleware),
		ChatController:   controller.NewChatController(chatService, jwtMiddleware),
		ReportController: controller.NewReportController(reportService),
		ConsumerService:  consumerService,
	}
}
