package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dhoini/Storefront-gateway/internal/domain"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const (
	TopicProductCreated  = "product.created"
	TopicProductUpdated  = "product.updated"
	TopicProductArchived = "product.archived"
	TopicCheckoutCreated = "checkout.session.created"
)

// StorefrontEvent представляет событие витрины для Kafka
type StorefrontEvent struct {
	EventID   string    `json:"event_id"`
	EntityID  string    `json:"entity_id"`
	Name      string    `json:"name,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	PriceID   string    `json:"price_id,omitempty"`
	URL       string    `json:"url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventProducer интерфейс для отправки событий витрины.
// Публикация — best effort: сервис не владеет состоянием, поэтому потеря
// события не нарушает консистентности; ошибки публикации только логируются.
type EventProducer interface {
	PublishProductCreated(ctx context.Context, product domain.Product) error
	PublishProductUpdated(ctx context.Context, product domain.Product) error
	PublishProductArchived(ctx context.Context, productID string) error
	PublishCheckoutCreated(ctx context.Context, sessionID, priceID, url string) error
	Close() error
}

type kafkaEventProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewKafkaEventProducer создает новый продюсер событий витрины
func NewKafkaEventProducer(producer sarama.SyncProducer, log *logger.Logger) EventProducer {
	return &kafkaEventProducer{
		producer: producer,
		log:      log,
	}
}

// PublishProductCreated публикует событие о создании товара
func (p *kafkaEventProducer) PublishProductCreated(ctx context.Context, product domain.Product) error {
	return p.publishEvent(TopicProductCreated, StorefrontEvent{
		EntityID: product.ID,
		Name:     product.Name,
		Amount:   product.Price,
		PriceID:  product.PriceID,
	})
}

// PublishProductUpdated публикует событие об обновлении товара
func (p *kafkaEventProducer) PublishProductUpdated(ctx context.Context, product domain.Product) error {
	return p.publishEvent(TopicProductUpdated, StorefrontEvent{
		EntityID: product.ID,
		Name:     product.Name,
		Amount:   product.Price,
		PriceID:  product.PriceID,
	})
}

// PublishProductArchived публикует событие об архивации товара
func (p *kafkaEventProducer) PublishProductArchived(ctx context.Context, productID string) error {
	return p.publishEvent(TopicProductArchived, StorefrontEvent{
		EntityID: productID,
	})
}

// PublishCheckoutCreated публикует событие о создании checkout-сессии
func (p *kafkaEventProducer) PublishCheckoutCreated(ctx context.Context, sessionID, priceID, url string) error {
	return p.publishEvent(TopicCheckoutCreated, StorefrontEvent{
		EntityID: sessionID,
		PriceID:  priceID,
		URL:      url,
	})
}

// Close закрывает продюсер
func (p *kafkaEventProducer) Close() error {
	return p.producer.Close()
}

// publishEvent публикует событие витрины в Kafka
func (p *kafkaEventProducer) publishEvent(topic string, event StorefrontEvent) error {
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now()

	messageValue, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal storefront event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.EntityID),
		Value: sarama.ByteEncoder(messageValue),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte(topic),
			},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.log.Errorw("Failed to publish storefront event", "topic", topic, "entityID", event.EntityID, "error", err)
		return fmt.Errorf("failed to publish event to topic %s: %w", topic, err)
	}

	p.log.Debugw("Storefront event published",
		"topic", topic,
		"entityID", event.EntityID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

// NopProducer ничего не публикует; используется, когда события выключены
type NopProducer struct{}

// PublishProductCreated реализует EventProducer
func (NopProducer) PublishProductCreated(ctx context.Context, product domain.Product) error {
	return nil
}

// PublishProductUpdated реализует EventProducer
func (NopProducer) PublishProductUpdated(ctx context.Context, product domain.Product) error {
	return nil
}

// PublishProductArchived реализует EventProducer
func (NopProducer) PublishProductArchived(ctx context.Context, productID string) error { return nil }

// PublishCheckoutCreated реализует EventProducer
func (NopProducer) PublishCheckoutCreated(ctx context.Context, sessionID, priceID, url string) error {
	return nil
}

// Close реализует EventProducer
func (NopProducer) Close() error { return nil }
