package usecase

import (
	"errors"
	"fmt"
)

// Sentinel errors the HTTP layer maps onto statuses. Anything that does not
// match is an internal failure and is surfaced generically.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyCart       = errors.New("cart is empty")
)

// InsufficientStockError rejects a requested quantity that exceeds the
// product's current stock. Available carries the remaining count so the
// response can report it.
type InsufficientStockError struct {
	ProductID string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d items available in stock", e.Available)
}

// domainError attaches a caller-facing message to one of the sentinels above,
// so errors.Is still matches while the handler can echo the message as-is.
type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }
func (e *domainError) Unwrap() error { return e.kind }

func invalidArg(msg string) error { return &domainError{kind: ErrInvalidArgument, msg: msg} }
func notFound(msg string) error   { return &domainError{kind: ErrNotFound, msg: msg} }
