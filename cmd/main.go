package main

import (
	"context"
	"log"
	"time"

	"cricket-booking/config"
	bookinghandler "cricket-booking/internal/module/booking/handler"
	bookingrepositories "cricket-booking/internal/module/booking/repositories"
	bookingusecases "cricket-booking/internal/module/booking/usecases"
	matchhandler "cricket-booking/internal/module/match/handler"
	matchrepositories "cricket-booking/internal/module/match/repositories"
	matchusecases "cricket-booking/internal/module/match/usecases"
	"cricket-booking/internal/pkg/database"
	"cricket-booking/internal/pkg/http"
	"cricket-booking/internal/pkg/httpclient"
	log_internal "cricket-booking/internal/pkg/log"
	"cricket-booking/internal/pkg/messagestream"
	"cricket-booking/internal/pkg/middleware"
	"cricket-booking/internal/pkg/monitoring"
	"cricket-booking/internal/pkg/redis"
	"cricket-booking/internal/pkg/scheduler"
	router "cricket-booking/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	go func() {
		if err := monitoring.StartMetricsServer(cfg.HttpServer.MetricsPort); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logger := log_internal.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Error("failed to create subscriber: " + err.Error())
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Error("failed to create publisher: " + err.Error())
	}

	// init task scheduler
	sched := scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)

	flowTTL := time.Duration(cfg.Payment.FlowTTLMin) * time.Minute

	bookingRepo := bookingrepositories.New(db, logger, httpClient, redisClient, asynqClient, &cfg.UserService, flowTTL)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher, &cfg.Payment)

	matchRepo := matchrepositories.New(db, logger)
	matchUsecase := matchusecases.New(matchRepo, logger)

	m := middleware.Middleware{
		Log:  logger,
		Repo: bookingRepo,
	}

	v := validator.New()
	bookingHandler := bookinghandler.BookingHandler{
		Log:       logger,
		Validator: v,
		Usecase:   bookingUsecase,
	}
	matchHandler := matchhandler.MatchHandler{
		Log:     logger,
		Usecase: matchUsecase,
	}

	var messageRouters []*message.Router

	bookingConfirmedRouter, err := messagestream.NewRouter(publisher, "booking_confirmed_poisoned", "booking_confirmed_handler", "booking_confirmed", subscriber, bookingHandler.ConsumeBookingConfirmed)
	if err != nil {
		logger.Ctx(ctx).Error("failed to create booking_confirmed router: " + err.Error())
	}
	messageRouters = append(messageRouters, bookingConfirmedRouter)

	// deferred claim reconciliation worker + its dashboard
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeReconcileClaim},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.ReconcileClaim},
	)
	go sched.StartMonitoring(&cfg.Redis, cfg.HttpServer.MonitoringPort)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &matchHandler, &m)

	return r, messageRouters
}
