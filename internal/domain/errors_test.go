package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorIs(t *testing.T) {
	err := CreateProductRequest{}.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "Invalid data")
}

func TestNotFoundErrorIs(t *testing.T) {
	err := NewNotFoundError("product", "prod_123")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "product with ID prod_123 not found", err.Error())
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamError("create_price", "", 0, cause)

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.True(t, errors.Is(err, cause))
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := NewUpstreamError("create_price", "No such price: price_x", 400, errors.New("raw"))
	assert.Equal(t, "Stripe error: No such price: price_x", err.Error())

	noMsg := NewUpstreamError("create_price", "", 0, errors.New("raw"))
	assert.Equal(t, "Stripe error: create_price failed", noMsg.Error())
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"create valid", CreateProductRequest{Name: "Latte", Price: 4.5}.Validate(), false},
		{"create empty name", CreateProductRequest{Price: 4.5}.Validate(), true},
		{"create zero price", CreateProductRequest{Name: "Latte"}.Validate(), true},
		{"create negative price", CreateProductRequest{Name: "Latte", Price: -1}.Validate(), true},
		{"update valid", UpdateProductRequest{Name: "Latte", Price: 5, PriceID: "price_1"}.Validate(), false},
		{"update missing price id", UpdateProductRequest{Name: "Latte", Price: 5}.Validate(), true},
		{"update missing name", UpdateProductRequest{Price: 5, PriceID: "price_1"}.Validate(), true},
		{"checkout valid", CheckoutRequest{PriceID: "price_1"}.Validate(), false},
		{"checkout missing price id", CheckoutRequest{}.Validate(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				assert.True(t, errors.Is(tt.err, ErrInvalidInput), fmt.Sprintf("got %v", tt.err))
			} else {
				assert.NoError(t, tt.err)
			}
		})
	}
}
