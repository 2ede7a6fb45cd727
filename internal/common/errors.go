// Package common defines shared constants and sentinel errors used across
// the SafeNotes client and server components. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Dispatch errors. ErrNoEmergencyContact blocks composition entirely:
	// it must surface before any network call is attempted.
	ErrNoEmergencyContact = errors.New("no emergency contact configured")

	// Validation errors for settings mutations.
	ErrInvalidContactNumber = errors.New("invalid contact number")
	ErrInvalidPin           = errors.New("invalid pin")

	// Evidence selection errors, enforced at selection time.
	ErrSelectionFull        = errors.New("selection limit reached")
	ErrVideoAlreadySelected = errors.New("only one video can be selected")

	// Publisher boundary errors.
	ErrMediaCountOutOfRange = errors.New("must include 1 to 5 media URLs")
)
