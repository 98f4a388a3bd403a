package common

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MessageNotFound          = "No record found"
	MessageInvalidQuery      = "Invalid query params"
	MessageMissingAttributes = "Record is missing one or more attributes"
	MessageInternal          = "Internal server error"
)

// NotFoundError reports that a referenced record does not exist
type NotFoundError struct {
	Model string
	ID    any
}

func NewNotFoundError(model string, id any) *NotFoundError {
	return &NotFoundError{Model: model, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Couldn't find %s with 'id'=%v", e.Model, e.ID)
}

// InvalidQueryError is a rejected search query string
type InvalidQueryError struct {
	Reason string
}

func NewInvalidQueryError(reason string) *InvalidQueryError {
	return &InvalidQueryError{Reason: reason}
}

func (e *InvalidQueryError) Error() string {
	return e.Reason
}

// MissingAttributesError lists field-level validation failures
type MissingAttributesError struct {
	Messages []string
}

func NewMissingAttributesError(messages ...string) *MissingAttributesError {
	return &MissingAttributesError{Messages: messages}
}

func (e *MissingAttributesError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
