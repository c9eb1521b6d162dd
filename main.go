package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/polymertrack/sms-notifier/controller"
	"github.com/polymertrack/sms-notifier/dao"
	_ "github.com/polymertrack/sms-notifier/docs"
	"github.com/polymertrack/sms-notifier/health"
	"github.com/polymertrack/sms-notifier/log"
	"github.com/polymertrack/sms-notifier/provider"
	"github.com/polymertrack/sms-notifier/service"
	"github.com/polymertrack/sms-notifier/util"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Sms notification HTTP API
// @description Multi-provider sms delivery service of the plastics ERP

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Error.Println(err)
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	//create db client
	dbClient, err := dao.GetClient(util.GetEnv("DB_PATH", "notifier.db"))
	if err != nil {
		log.Fatal(err)
	}

	//gateway adapters, credentials injected explicitly
	primary := provider.NewSmsline(provider.SmslineConfig{
		ApiUrl:   util.GetEnv("SMSLINE_API_URL", ""),
		ApiKey:   util.GetEnv("SMSLINE_API_KEY", ""),
		SenderId: util.GetEnv("SMSLINE_SENDER_ID", ""),
	}, nil, logger)

	secondary := provider.NewTwilio(provider.TwilioConfig{
		AccountSid: util.GetEnv("TWILIO_ACCOUNT_SID", ""),
		AuthToken:  util.GetEnv("TWILIO_AUTH_TOKEN", ""),
		FromNumber: util.GetEnv("TWILIO_FROM_NUMBER", ""),
	}, nil, logger)

	tracker := health.NewTracker(dao.NewHealthDao(dbClient),
		util.GetEnvAsInt("HEALTH_DEGRADED_AT", health.DefaultDegradedAt),
		util.GetEnvAsInt("HEALTH_DOWN_AT", health.DefaultDownAt),
		logger)

	smsService := service.NewService(
		primary,
		secondary,
		tracker,
		dao.NewMessageDao(dbClient),
		util.GetEnvAsInt("STATUS_STORE_DAYS", 30),
		util.GetEnvAsInt("SMS_MAX_LEN", 300),
		util.GetEnvAsInt("TRX_PER_SEC", 10),
		util.GetEnv("WEB_HOOK", ""),
		util.GetEnv("PHONE_MASK", `\+?\d{10,15}`),
	)

	//attach http handlers
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.HideBanner = true
	e.Use(middleware.BodyLimit("2K"))

	bindRoutes(e, smsService)

	//start http server
	log.Fatal(e.Start(":" + util.GetEnv("HTTP_PORT", "8080")))
}

func bindRoutes(e *echo.Echo, srv service.Service) {

	e.POST("/notifications/order", controller.GetSendOrderNotificationFunc(srv))
	e.POST("/notifications/job-order", controller.GetSendJobOrderUpdateFunc(srv))
	e.POST("/notifications/custom", controller.GetSendCustomMessageFunc(srv))

	e.GET("/notifications", controller.GetListMessagesFunc(srv))
	e.GET("/notifications/:id", controller.GetCheckMessageFunc(srv))

	e.GET("/providers/health", controller.GetProviderHealthFunc(srv))
}
