// launching the server, postgres, redis, rabbitMQ and workers
package appServer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nutritrack/notification-service/config"
	"github.com/nutritrack/notification-service/internal/database"
	"github.com/nutritrack/notification-service/internal/rabbitMQ"
	"github.com/nutritrack/notification-service/internal/service"
	"github.com/nutritrack/notification-service/internal/transport"
	"github.com/nutritrack/notification-service/internal/worker"
	"github.com/nutritrack/notification-service/pkg/fcm"
	"github.com/nutritrack/notification-service/pkg/postgres"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.SetOutput(os.Stdout)

	// Push gateway is built once per process; a missing server key is
	// an explicit startup failure instead of a silent no-op client.
	gateway, err := fcm.NewClient(cfg.FCM.ServerKey, cfg.FCM.Endpoint, cfg.FCM.Timeout)
	if err != nil {
		logrus.Fatalf("Failed to configure push gateway: %s", err.Error())
	}

	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %s", err.Error())
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %s", err.Error())
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolTimeout:  cfg.Redis.PoolTimeout,
		IdleTimeout:  cfg.Redis.IdleTimeout,
	})
	defer redisClient.Close()

	var rabbitMQURL string
	if cfg.Rabbit.URL != "" {
		rabbitMQURL = cfg.Rabbit.URL
	} else {
		rabbitMQURL = fmt.Sprintf("amqp://%s:%s@%s:%d/",
			cfg.Rabbit.Username,
			cfg.Rabbit.Password,
			cfg.Rabbit.Host,
			cfg.Rabbit.Port)
	}

	taskQueue, err := rabbitMQ.NewRabbitMQ(rabbitMQ.RabbitMQConfig{
		URL:          rabbitMQURL,
		QueueName:    cfg.Rabbit.QueueName,
		ExchangeName: cfg.Rabbit.ExchangeName,
	})
	if err != nil {
		logrus.Fatalf("Failed to connect to RabbitMQ: %s", err.Error())
	}
	defer taskQueue.Close()

	profileRepo := database.NewProfileRepository(db)
	cachedRepo := database.NewCachedProfileRepository(profileRepo, redisClient, cfg.Redis.CacheTTL)

	matcher := service.NewTimeMatcher(cfg.Reminder.DefaultTimezone)
	builder := service.NewMessageBuilder(cfg.Reminder.DeepLink, cfg.Reminder.Icon, cfg.Reminder.Badge)

	reminderUseCase := service.NewReminderUseCase(cachedRepo, gateway, matcher, builder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	taskWorker := worker.NewTaskWorker(taskQueue, reminderUseCase)
	if err := taskWorker.Start(ctx); err != nil {
		logrus.Fatalf("Failed to start task worker: %s", err.Error())
	}

	cadence := worker.NewCadenceScheduler(taskQueue, cfg.Worker.ScanInterval, cfg.Worker.SweepInterval)
	go cadence.Start(ctx)

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(reminderUseCase, cfg)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
