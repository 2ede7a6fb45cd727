package models

import (
	"regexp"

	"github.com/safenotes/safenotes/internal/common"
)

// localMobilePattern matches an 8-digit local mobile number starting with
// 8 or 9.
var localMobilePattern = regexp.MustCompile(`^[89]\d{7}$`)

// EmergencyContact is the configured SOS recipient.
type EmergencyContact struct {
	Name         string `json:"name"`
	Number       string `json:"number"`
	Relationship string `json:"relationship"`
}

// Validate checks the dialing-number shape. Name and relationship are
// free text.
func (c EmergencyContact) Validate() error {
	if !localMobilePattern.MatchString(c.Number) {
		return common.ErrInvalidContactNumber
	}
	return nil
}
