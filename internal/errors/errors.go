// internal/errors/errors.go
package appErrors

import "fmt"

// ErrNotFound is a sentinel error for a missing referenced entity
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// Helper constructor
func NewNotFound(entity, id string) error {
	return &ErrNotFound{Entity: entity, ID: id}
}

// ErrExternalService wraps a data-store or generation-endpoint failure
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("%s error: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error { return e.Err }

func NewExternalService(service string, err error) error {
	return &ErrExternalService{Service: service, Err: err}
}

// ErrValidation marks missing or malformed required fields
type ErrValidation struct {
	Field  string
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ErrValidation{Field: field, Reason: reason}
}

// ErrUnknownEngagementType is the dispatch fallthrough
type ErrUnknownEngagementType struct {
	Type string
}

func (e *ErrUnknownEngagementType) Error() string {
	return fmt.Sprintf("unknown engagement type: %s", e.Type)
}

func NewUnknownEngagementType(t string) error {
	return &ErrUnknownEngagementType{Type: t}
}

// ErrQueueItemNotPending is returned when a claim loses the pending ->
// processing transition, e.g. a concurrent invocation already took the item.
type ErrQueueItemNotPending struct {
	ID     string
	Status string
}

func (e *ErrQueueItemNotPending) Error() string {
	return fmt.Sprintf("queue item %s is not pending (status: %s)", e.ID, e.Status)
}

func NewQueueItemNotPending(id, status string) error {
	return &ErrQueueItemNotPending{ID: id, Status: status}
}
