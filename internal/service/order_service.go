package service

import (
	"context"
	"fmt"

	"github.com/Dhoini/Storefront-gateway/config"
	"github.com/Dhoini/Storefront-gateway/internal/domain"
	stripeclient "github.com/Dhoini/Storefront-gateway/internal/integration/stripe"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"

	"github.com/stripe/stripe-go/v78"
)

// OrderService читает завершенные заказы из Stripe
type OrderService struct {
	stripe    stripeclient.Client
	log       *logger.Logger
	pageLimit int64
}

// NewOrderService создает новый сервис заказов
func NewOrderService(client stripeclient.Client, cfg *config.Config, log *logger.Logger) *OrderService {
	return &OrderService{
		stripe:    client,
		log:       log,
		pageLimit: cfg.Stripe.OrdersPageLimit,
	}
}

// ListOrders возвращает заказы, собранные из завершенных checkout-сессий.
// Любая ошибка платформы обрывает весь вызов: частичная выдача заказов
// хуже, чем ее отсутствие.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	sessions, err := s.stripe.ListCompletedSessions(ctx, s.pageLimit)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(sessions))
	for _, session := range sessions {
		items, err := s.stripe.ListSessionLineItems(ctx, session.ID)
		if err != nil {
			return nil, err
		}

		item, err := singleLineItem(session.ID, items)
		if err != nil {
			return nil, err
		}

		orders = append(orders, stripeclient.ToDomainOrder(session, item))
	}

	s.log.Info("Returned %d orders", len(orders))
	return orders, nil
}

// singleLineItem проверяет инвариант витрины: ровно одна позиция на сессию.
// Сессия с другим числом позиций создана не этой витриной; молча брать
// первую позицию нельзя, нарушение обрывает вызов целиком.
func singleLineItem(sessionID string, items []*stripe.LineItem) (*stripe.LineItem, error) {
	if len(items) != 1 {
		return nil, fmt.Errorf("%w: session %s has %d line items, expected exactly one",
			domain.ErrInternal, sessionID, len(items))
	}
	return items[0], nil
}
