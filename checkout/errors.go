package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("shipping information is incomplete")
	ErrWrongStep           = errors.New("action not allowed at the current step")
	ErrRedirectInProgress  = errors.New("redirect in progress")
	ErrSubmitInProgress    = errors.New("submission in progress")
	ErrNotPickup           = errors.New("product is not collected from a store")
	ErrIntegrationDisabled = errors.New("store map integration is disabled")
	ErrUnknownStore        = errors.New("unknown store")
	ErrNoStoreType         = errors.New("no store type chosen")
	ErrInvalidStoreType    = errors.New("store type has no map lookup")
	ErrStoreFromMap        = errors.New("store must be picked from the map")
	ErrSessionNotFound     = errors.New("checkout session not found")
	ErrUnknownCity         = errors.New("unknown city")
	ErrUnknownDistrict     = errors.New("district does not belong to city")
	ErrUnknownTimeSlot     = errors.New("unknown delivery time slot")
	ErrNotificationFailed  = errors.New("notification was not accepted")
)

// ValidationError carries the gate result that refused to leave the shipping form.
type ValidationError struct {
	Validity Validity
}

func (e *ValidationError) Error() string {
	var missing []Field
	if !e.Validity.Name {
		missing = append(missing, FieldName)
	}
	if !e.Validity.Phone {
		missing = append(missing, FieldPhone)
	}
	if !e.Validity.Store {
		missing = append(missing, FieldStore)
	}
	if !e.Validity.Address {
		missing = append(missing, FieldAddress)
	}
	return fmt.Sprintf("%s: invalid %v", ErrValidation, missing)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
