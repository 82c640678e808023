package main

import (
	"flag"
	"strconv"
	"time"

	apiHttp "integrate/internal/api/http"
	"integrate/internal/controllers"
	mongoRepo "integrate/internal/repository/mongo"
	"integrate/internal/repository/postgres"
	redisRepo "integrate/internal/repository/redis"
	"integrate/internal/usecasees"

	"github.com/gofiber/fiber/v2"
)

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	app.Name = "integrate-dashboard"

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()
	app.initHTTPClient()
	app.InitMetrics()

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	if app.Config.RedisUrl != "" {
		if err := app.initRedis(); err != nil {
			panic(err)
		}
	}

	if app.Config.LokiAddr != "" {
		if err := app.initLoki(); err != nil {
			app.Logger.Error(err)
		}
	}

	instrumentRepo := postgres.NewInstrumentRepository(app.DB)
	if err := instrumentRepo.SetDefault(); err != nil {
		panic(err)
	}

	presetsRepo := mongoRepo.NewPresetsRepository(app.Mongo, app.Config.Mongo.DBName)
	if err := presetsRepo.SetDefault(); err != nil {
		panic(err)
	}

	var tokenSource usecasees.TokenSource = instrumentRepo
	if app.Redis != nil {
		tokenSource = redisRepo.NewTokenCache(app.Redis, instrumentRepo, time.Hour)
	}

	sessionController := controllers.NewSessionController(
		app.Config.IntegrateApiToken,
		app.Config.IntegrateApiSecret,
	)
	sessionController.SetSessionKeys(
		app.Config.IntegrateUID,
		app.Config.IntegrateActID,
		app.Config.IntegrateApiSessionKey,
		app.Config.IntegrateWsSessionKey,
	)

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Logger,
	)

	var tgmController controllers.TgmCtrl
	if app.Config.TelegramApiToken != "" {
		if err := app.initTgBot(); err != nil {
			panic(err)
		}

		chatID, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
		if err != nil {
			panic(err)
		}

		tgmController = controllers.NewTgmController(app.TGM, chatID)
	}

	quoteUseCase := usecasees.NewQuoteUseCase(
		clientController,
		sessionController,
		tokenSource,
		app.Config.IntegrateUrl,
		app.Logger,
	)

	orderUseCase := usecasees.NewOrderUseCase(
		clientController,
		sessionController,
		tgmController,
		quoteUseCase,
		app.PromTail,
		app.Metrics.Order,
		app.Config.IntegrateUrl,
		app.Logger,
	)

	f := fiber.New()

	apiHttp.NewMiddleware(f, app.Name).UseMetrics()
	apiHttp.RegisterHTTPEndpoints(f, orderUseCase, quoteUseCase, presetsRepo, instrumentRepo, app.Logger)

	if err := f.Listen(app.Config.ListenAddr); err != nil {
		app.Logger.Fatal(err)
	}
}
