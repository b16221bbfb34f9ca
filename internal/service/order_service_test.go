package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Dhoini/Storefront-gateway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"
)

func completedSession(id string, amountTotal int64, created int64, email string) *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		ID:          id,
		AmountTotal: amountTotal,
		Created:     created,
		CustomerDetails: &stripe.CheckoutSessionCustomerDetails{
			Email: email,
		},
	}
}

func TestListOrders(t *testing.T) {
	fake := &fakeStripe{
		listCompletedSessionsFn: func(ctx context.Context, limit int64) ([]*stripe.CheckoutSession, error) {
			assert.Equal(t, int64(10), limit)
			return []*stripe.CheckoutSession{
				completedSession("cs_1", 450, 1700000000, "john@example.com"),
				completedSession("cs_2", 300, 1700000100, "jane@example.com"),
			}, nil
		},
		listSessionLineItemsFn: func(ctx context.Context, sessionID string) ([]*stripe.LineItem, error) {
			if sessionID == "cs_1" {
				return []*stripe.LineItem{{Description: "Latte"}}, nil
			}
			return []*stripe.LineItem{{Description: "Small Coffee"}}, nil
		},
	}

	orders, err := newTestOrders(fake).ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, domain.Order{
		ID:            "cs_1",
		ProductName:   "Latte",
		Amount:        4.5,
		Timestamp:     1700000000,
		CustomerEmail: "john@example.com",
	}, orders[0])
	assert.Equal(t, "Small Coffee", orders[1].ProductName)
}

func TestListOrdersEmpty(t *testing.T) {
	orders, err := newTestOrders(&fakeStripe{}).ListOrders(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestListOrdersUpstreamError(t *testing.T) {
	fake := &fakeStripe{
		listCompletedSessionsFn: func(ctx context.Context, limit int64) ([]*stripe.CheckoutSession, error) {
			return nil, domain.NewUpstreamError("list_sessions", "API key expired", 401, errors.New("boom"))
		},
	}

	orders, err := newTestOrders(fake).ListOrders(context.Background())

	assert.True(t, errors.Is(err, domain.ErrUpstream))
	assert.Nil(t, orders)
}

func TestListOrdersRejectsMultipleLineItems(t *testing.T) {
	fake := &fakeStripe{
		listCompletedSessionsFn: func(ctx context.Context, limit int64) ([]*stripe.CheckoutSession, error) {
			return []*stripe.CheckoutSession{completedSession("cs_1", 750, 1700000000, "john@example.com")}, nil
		},
		listSessionLineItemsFn: func(ctx context.Context, sessionID string) ([]*stripe.LineItem, error) {
			return []*stripe.LineItem{{Description: "Latte"}, {Description: "Bundle"}}, nil
		},
	}

	// Нарушение инварианта "одна позиция на сессию" обрывает весь вызов
	orders, err := newTestOrders(fake).ListOrders(context.Background())

	assert.True(t, errors.Is(err, domain.ErrInternal))
	assert.Contains(t, err.Error(), "cs_1")
	assert.Nil(t, orders)
}

func TestListOrdersRejectsEmptyLineItems(t *testing.T) {
	fake := &fakeStripe{
		listCompletedSessionsFn: func(ctx context.Context, limit int64) ([]*stripe.CheckoutSession, error) {
			return []*stripe.CheckoutSession{completedSession("cs_1", 0, 1700000000, "john@example.com")}, nil
		},
	}

	_, err := newTestOrders(fake).ListOrders(context.Background())

	assert.True(t, errors.Is(err, domain.ErrInternal))
}
