package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/safenotes/safenotes/internal/client/models"
)

// getPin is an indirection used to facilitate testing.
var getPin = GetPin

// SetPin changes the unlock PIN. Input is read without echo and confirmed
// by repetition.
func (a *App) SetPin(_ context.Context) error {
	pin, err := getPin("New PIN (4-8 digits, no leading zero)", os.Stdout)
	if err != nil {
		return err
	}
	again, err := getPin("Repeat PIN", os.Stdout)
	if err != nil {
		return err
	}
	if pin != again {
		fmt.Println("PINs do not match")
		return nil
	}

	if err := a.store.SetPin(pin); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("PIN updated")
	return nil
}

// SetContact prompts for and stores the emergency contact.
func (a *App) SetContact(_ context.Context) error {
	name, err := getSimpleText(a.reader, "Contact name", os.Stdout)
	if err != nil {
		return err
	}
	number, err := getSimpleText(a.reader, "Mobile number (8 digits, starts with 8 or 9)", os.Stdout)
	if err != nil {
		return err
	}
	relationship, err := getSimpleText(a.reader, "Relationship", os.Stdout)
	if err != nil {
		return err
	}

	err = a.store.SetEmergencyContact(models.EmergencyContact{
		Name:         name,
		Number:       number,
		Relationship: relationship,
	})
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Emergency contact saved")
	return nil
}

// SetMessage replaces the saved emergency message template.
func (a *App) SetMessage(_ context.Context) error {
	msg, err := GetMultiline(a.reader, "Emergency message", os.Stdout)
	if err != nil {
		return err
	}
	if msg == "" {
		fmt.Println("Message unchanged")
		return nil
	}
	a.store.SetEmergencyMessage(msg)
	fmt.Println("Emergency message saved")
	return nil
}

// SetLocation toggles location sharing for composed messages.
func (a *App) SetLocation(_ context.Context, value string) error {
	switch value {
	case "on":
		a.store.SetLocationEnabled(true)
		fmt.Println("Location sharing on")
	case "off":
		a.store.SetLocationEnabled(false)
		fmt.Println("Location sharing off")
	default:
		fmt.Println("Usage: location <on|off>")
	}
	return nil
}

// Lock returns to the calculator disguise. The calculator input is cleared
// so nothing from the session leaks onto the display. The state flip itself
// is synchronous and in-memory; pending settings writes are drained after.
func (a *App) Lock(ctx context.Context) error {
	a.gate.Relock()
	if err := a.store.Flush(ctx); err != nil {
		a.log.Warn(ctx, "settings flush failed", "error", err)
	}
	return nil
}
