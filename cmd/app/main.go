package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripbooking/api"
	"tripbooking/config"
	"tripbooking/internal/bootstrap"
	"tripbooking/internal/cache"
	"tripbooking/internal/kafka"
	"tripbooking/internal/resource"
	"tripbooking/internal/service/bookings"
	"tripbooking/internal/service/customers"
	"tripbooking/internal/service/trips"
	"tripbooking/internal/storage"
	"tripbooking/internal/upload"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gateway, err := storage.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer gateway.Close(context.Background())

	if err := gateway.Migrate(ctx, "migrations"); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.TripsTTLSeconds)*time.Second)
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tripService := trips.NewService(gateway, redisCache)
	destinationService := resource.NewService(gateway, resource.DestinationSchema())
	customerService := customers.NewService(gateway)
	meetingService := resource.NewService(gateway, resource.MeetingSchema())
	bookingService := bookings.NewService(
		gateway,
		producer,
		cfg.Kafka.BookingTopic,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	uploadStore, err := upload.NewStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes())
	if err != nil {
		log.Fatalf("init upload store: %v", err)
	}

	handlers := bootstrap.Handlers{
		Trips:        api.NewResourceHandler("trip", tripService),
		Destinations: api.NewResourceHandler("destination", destinationService),
		Customers:    api.NewCustomerHandler(customerService),
		Meetings:     api.NewResourceHandler("meeting", meetingService),
		Bookings:     api.NewResourceHandler("booking", bookingService),
		Upload:       api.NewUploadHandler(uploadStore),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
