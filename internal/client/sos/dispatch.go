package sos

import (
	"context"
	"net/url"
	"os/exec"
	"strings"

	"github.com/safenotes/safenotes/internal/client/models"
	"github.com/safenotes/safenotes/internal/logging"
)

// SMSURI builds the platform handoff URI: sms:<number>?body=<encoded>.
// Spaces are percent-encoded, not '+': the body is a URI component, not a
// query form.
func SMSURI(number, body string) string {
	return "sms:" + number + "?body=" + strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
}

// Dispatcher hands a composed package to the platform's SMS facility.
type Dispatcher interface {
	Dispatch(ctx context.Context, pkg *models.DispatchPackage) error
}

// PlatformDispatcher opens the sms: URI through the OS URI handler. The
// handoff is fire-and-forget: dispatch counts as sent once the platform
// accepts the URI, nothing observes the outcome.
type PlatformDispatcher struct {
	opener string
	log    logging.Logger
}

// NewPlatformDispatcher returns a dispatcher using the given opener command
// (e.g. "xdg-open").
func NewPlatformDispatcher(opener string, log logging.Logger) *PlatformDispatcher {
	return &PlatformDispatcher{opener: opener, log: log.With("component", "dispatch")}
}

func (d *PlatformDispatcher) Dispatch(ctx context.Context, pkg *models.DispatchPackage) error {
	cmd := exec.CommandContext(ctx, d.opener, pkg.SMSURI)
	if err := cmd.Start(); err != nil {
		return err
	}
	d.log.Info(ctx, "sos handed to platform", "contact", pkg.ContactNumber)
	// reap the handler in the background; its exit status is irrelevant
	go func() { _ = cmd.Wait() }()
	return nil
}
