package models

// SOSDraft is the ephemeral input to message composition. Only the message
// text survives app restarts (it lives in settings); the selection is rebuilt
// each time.
type SOSDraft struct {
	MessageText      string
	IncludeLocation  bool
	SelectedEvidence []EvidenceItem
}

// DispatchPackage is the composed result handed to the platform SMS facility.
type DispatchPackage struct {
	// Message is the final assembled text, including any partial-failure
	// markers.
	Message string

	// ContactNumber is the resolved emergency contact number.
	ContactNumber string

	// SMSURI is the sms:<number>?body=<url-encoded message> handoff URI.
	SMSURI string
}
