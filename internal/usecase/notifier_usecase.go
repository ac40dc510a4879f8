package usecase

import (
	"context"
	"errors"

	"printshop/internal/domain/service"
)

// NotifierUsecase fans inventory events out to staff devices.
type NotifierUsecase interface {
	// HandleInventoryEvent pushes one event to every active staff device.
	// A returned error means the event may be redelivered.
	HandleInventoryEvent(ctx context.Context, event *service.InventoryEvent) error
}

// RetryableError marks a failure that should make the message broker redeliver.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err or any error it wraps is retryable.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
