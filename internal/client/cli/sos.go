package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/safenotes/safenotes/internal/client/models"
	"github.com/safenotes/safenotes/internal/client/sos"
)

// getSimpleText is an indirection used to facilitate testing.
var getSimpleText = GetSimpleText

// SOS walks the user through composing and dispatching the emergency
// message: pick evidence from the journal, confirm the message text, then
// hand the composed package to the platform's SMS facility.
func (a *App) SOS(ctx context.Context) error {
	items, err := a.journal.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	selection, err := a.pickEvidence(items)
	if err != nil {
		return err
	}

	msg, err := getSimpleText(a.reader, "Message (Enter to use the saved message)", os.Stdout)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = a.store.EmergencyMessage()
	}

	pkg, err := a.composer.Compose(ctx, models.SOSDraft{
		MessageText:      msg,
		IncludeLocation:  a.store.LocationEnabled(),
		SelectedEvidence: selection.Items(),
	})
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("--- message preview ---")
	fmt.Println(pkg.Message)
	fmt.Println("-----------------------")

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Send to %s? (y/N)", pkg.ContactNumber), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.dispatcher.Dispatch(ctx, pkg); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Sent")

	// a completed dispatch returns to the calculator disguise
	a.gate.Relock()
	if err := a.store.Flush(ctx); err != nil {
		a.log.Warn(ctx, "settings flush failed", "error", err)
	}
	return nil
}

// pickEvidence shows the journal and prompts for a comma-separated list of
// item numbers. Selection bounds are reported as they are hit.
func (a *App) pickEvidence(items []models.EvidenceItem) (*sos.Selection, error) {
	selection := &sos.Selection{}
	if len(items) == 0 {
		return selection, nil
	}

	for i, item := range items {
		fmt.Printf("%2d) %-5s %s\n", i+1, item.Kind, item.LocalPath)
	}

	line, err := getSimpleText(a.reader, "Evidence numbers to attach (e.g. 1,3; Enter for none)", os.Stdout)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return selection, nil
	}

	for _, tok := range strings.Split(line, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < 1 || n > len(items) {
			fmt.Println("Skipping invalid number:", strings.TrimSpace(tok))
			continue
		}
		if err := selection.Add(items[n-1]); err != nil {
			fmt.Println(err.Error())
		}
	}
	return selection, nil
}

// promptLocator asks the user for coordinates instead of reading a GPS
// device. A blank or malformed answer counts as "no fix" and the composed
// message carries the location marker.
type promptLocator struct {
	reader *bufio.Reader
}

func (p *promptLocator) Current(_ context.Context) (sos.Coordinates, error) {
	line, err := getSimpleText(p.reader, "Current coordinates as lat,lng (Enter to skip)", os.Stdout)
	if err != nil {
		return sos.Coordinates{}, err
	}

	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return sos.Coordinates{}, fmt.Errorf("no location fix")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return sos.Coordinates{}, fmt.Errorf("no location fix")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return sos.Coordinates{}, fmt.Errorf("no location fix")
	}
	return sos.Coordinates{Latitude: lat, Longitude: lng}, nil
}
