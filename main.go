package main

import (
	"github.com/gotx/contact-service/controller"
	"github.com/gotx/contact-service/dao"
	_ "github.com/gotx/contact-service/docs"
	"github.com/gotx/contact-service/mail"
	"github.com/gotx/contact-service/metrics"
	"github.com/gotx/contact-service/service"
	"github.com/gotx/contact-service/util"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title GOTX contact pipeline HTTP API
// @description Contact, verification, subscription and log endpoints of the GOTX marketing site

func init() {
	logger, _ := zap.NewProduction()
	zap.ReplaceGlobals(logger)

	if err := godotenv.Load(); err != nil {
		//.env is optional outside local runs
		zap.L().Info("No .env file loaded", zap.Error(err))
	}
}

func main() {
	defer zap.L().Sync()

	//open submission store; the site keeps working without durable logging,
	//mirroring an unbound store binding
	var submissionDao dao.SubmissionDao
	dbClient, err := dao.GetClient(util.GetEnv("DB_PATH", "submissions.db"))
	if err != nil {
		zap.L().Warn("Submission store unavailable, persistence disabled", zap.Error(err))
	} else {
		submissionDao = dao.NewSubmissionDao(dbClient)
	}

	//create mail client
	notifier := mail.NewClient(
		util.GetEnv("ZEPTO_URL", "https://api.zeptomail.eu/v1.1/email"),
		util.GetEnv("ZEPTO_TOKEN", ""),
		util.GetEnvAsInt("MAIL_PER_SEC", 10))

	contactService := service.NewService(
		notifier,
		submissionDao,
		util.GetEnv("ADMIN_EMAIL", "info@gotx.uk"),
		util.GetEnv("FROM_ADDRESS", "no-reply@gotx.uk"),
		util.GetEnv("LOGS_TOKEN", ""),
		util.GetEnv("EMAIL_MASK", `^\S+@\S+\.\S+$`),
	)

	metrics.Init()

	//attach http handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.BodyLimit("16K"))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	staticDir := util.GetEnv("STATIC_DIR", "public")
	if !util.FileExists(staticDir) {
		zap.L().Warn("Static site directory not found", zap.String("dir", staticDir))
	}
	e.Static("/", staticDir)

	bindRoutes(e, contactService)

	//start http server
	zap.L().Fatal("Server stopped", zap.Error(e.Start(":"+util.GetEnv("HTTP_PORT", "8080"))))
}

func bindRoutes(e *echo.Echo, srv service.Service) {

	e.POST("/api/submit", controller.GetSubmitFunc(srv))

	e.POST("/api/verify", controller.GetVerifyFunc(srv))

	e.POST("/api/subscribe", controller.GetSubscribeFunc(srv))

	e.GET("/api/logs", controller.GetLogsFunc(srv))
}
