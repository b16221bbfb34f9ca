package domain

import (
	"errors"
	"fmt"
)

// Application errors
var (
	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput неверные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")

	// ErrUpstream платежная платформа отклонила или не выполнила вызов
	ErrUpstream = errors.New("payment platform error")
)

// ValidationError представляет ошибку валидации входных данных
type ValidationError struct {
	Field   string
	Message string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid data: %s", e.Message)
}

// Is проверяет, является ли ошибка ошибкой валидации
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError представляет ошибку "не найдено"
type NotFoundError struct {
	Entity string
	ID     string
}

// Error реализует интерфейс error
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// Is проверяет, является ли ошибка ошибкой типа "не найдено"
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError создает новую ошибку "не найдено"
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// UpstreamError представляет ошибку платежной платформы.
// Message содержит пользовательское сообщение платформы и может быть
// показан вызывающей стороне без изменений.
type UpstreamError struct {
	Op          string
	Message     string
	StatusCode  int
	OriginalErr error
}

// Error реализует интерфейс error
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Stripe error: %s", e.Message)
	}
	return fmt.Sprintf("Stripe error: %s failed", e.Op)
}

// Unwrap возвращает оригинальную ошибку
func (e *UpstreamError) Unwrap() error {
	return e.OriginalErr
}

// Is проверяет, является ли ошибка ошибкой платформы
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NewUpstreamError создает новую ошибку платежной платформы
func NewUpstreamError(op, message string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Op:          op,
		Message:     message,
		StatusCode:  statusCode,
		OriginalErr: err,
	}
}
