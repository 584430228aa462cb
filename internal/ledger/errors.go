package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets an id that is not in the collection.
var ErrNotFound = errors.New("record not found")

// Field names the input a validation failure is about, so a form can focus it.
type Field string

const (
	FieldText     Field = "text"
	FieldCustomer Field = "customer"
	FieldProduct  Field = "product"
	FieldQty      Field = "qty"
	FieldPrice    Field = "price"
	FieldDueDate  Field = "dueDate"
)

// FieldError rejects a mutation because one input is missing or invalid.
type FieldError struct {
	Field  Field
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func fieldErr(f Field, reason string) error {
	return &FieldError{Field: f, Reason: reason}
}

// FieldOf extracts the offending field from err, if it is a FieldError.
func FieldOf(err error) (Field, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field, true
	}
	return "", false
}
