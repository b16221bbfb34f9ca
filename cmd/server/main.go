package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhoini/Storefront-gateway/config"
	"github.com/Dhoini/Storefront-gateway/internal/api/rest"
	"github.com/Dhoini/Storefront-gateway/internal/integration/stripe"
	"github.com/Dhoini/Storefront-gateway/internal/kafka"
	"github.com/Dhoini/Storefront-gateway/internal/kafka/producer"
	"github.com/Dhoini/Storefront-gateway/internal/metrics"
	"github.com/Dhoini/Storefront-gateway/internal/service"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

var log *logger.Logger

func init() {
	// Загружаем переменные окружения
	if err := godotenv.Load(); err != nil {
		// Пропускаем ошибку, если .env файл не найден
	}

	// Инициализация логгера
	logLevel := logger.INFO
	if os.Getenv("DEBUG") == "true" {
		logLevel = logger.DEBUG
	}
	log = logger.New(logLevel)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	// Инициализация Prometheus
	promRegistry := prometheus.NewRegistry()
	gatewayMetrics := metrics.NewGatewayMetrics(promRegistry, log)
	systemMetrics := metrics.NewSystemMetrics(promRegistry, log)

	// Запускаем сбор системных метрик
	systemMetrics.StartRecording(15 * time.Second)
	defer systemMetrics.Stop()

	// Клиент Stripe
	stripeClient := stripe.NewClient(cfg, gatewayMetrics, log)

	// Продюсер событий (по умолчанию выключен)
	var events producer.EventProducer = producer.NopProducer{}
	if cfg.Events.Enabled {
		kafkaConfig := kafka.NewConfig(cfg.Events.Brokers)
		saramaConfig := kafka.NewSaramaConfig(kafkaConfig, log)

		kafkaProducer, err := sarama.NewSyncProducer(kafkaConfig.Brokers, saramaConfig)
		if err != nil {
			log.Fatal("Failed to create Kafka producer: %v", err)
		}

		events = producer.NewKafkaEventProducer(kafkaProducer, log)
		defer events.Close()
	}

	// Сервисы
	catalogService := service.NewCatalogService(stripeClient, events, gatewayMetrics, cfg, log)
	orderService := service.NewOrderService(stripeClient, cfg, log)
	checkoutService := service.NewCheckoutService(stripeClient, events, gatewayMetrics, log)

	// Установка режима Gin
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Настройка маршрутизатора
	router := rest.SetupRouter(cfg, catalogService, orderService, checkoutService, gatewayMetrics, promRegistry, log)

	// Создание и запуск HTTP сервера
	server := rest.NewServer(router, cfg, log)

	// Запуск сервера в горутине
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Останавливаем сервер
	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
