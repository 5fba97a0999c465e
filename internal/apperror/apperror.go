// Package apperror defines the error kinds the service layer returns. Handlers
// translate kinds into HTTP status codes; services never touch HTTP status
// themselves. Every validation failure carries enough structured detail
// (kind + offending identifier) to render a user-facing message.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// InvalidInput covers empty item lists, unresolvable references inside a
	// request body, and attempts to mutate immutable fields.
	InvalidInput Kind = iota
	// NotFound means the addressed entity (sale, product, customer, user)
	// does not resolve.
	NotFound
	// InsufficientStock is raised by the inventory ledger when a requested
	// quantity exceeds the available stock of a product.
	InsufficientStock
	// Conflict covers uniqueness violations (duplicate product name,
	// duplicate customer document).
	Conflict
)

type Error struct {
	Kind    Kind
	Message string
	// Entity is the offending identifier (product name, UUID, ...), when known.
	Entity string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// StockError reports the first item of a sale that failed the availability
// check. The workflow stops at the first failing item; it does not collect
// every violation.
type StockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d available, %d requested",
		e.ProductName, e.Available, e.Requested)
}

// KindOf extracts the Kind from err. Unknown errors map to -1 so callers can
// fall through to a generic 500.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	var se *StockError
	if errors.As(err, &se) {
		return InsufficientStock
	}
	return -1
}
