package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isUnlocked() bool
	CalculatorLine(ctx context.Context, line string) string
	Journal(ctx context.Context) error
	AddMedia(ctx context.Context, path string) error
	RemoveMedia(ctx context.Context, id string) error
	ClearJournal(ctx context.Context) error
	SetTTL(ctx context.Context, value string) error
	SOS(ctx context.Context) error
	SetPin(ctx context.Context) error
	SetContact(ctx context.Context) error
	SetMessage(ctx context.Context) error
	SetLocation(ctx context.Context, value string) error
	Lock(ctx context.Context) error
}

// runREPL is the SafeNotes read–eval–print loop.
//
// While locked, the prompt behaves like a plain calculator: the whole line is
// fed through the gate keystroke by keystroke and submitted on Enter. An
// expression prints its value, the PIN silently unlocks, and anything
// malformed prints "Error". Nothing in this mode hints that more exists;
// only "exit"/"quit" is intercepted.
//
// Once unlocked, the first token of each line is dispatched as a command
// (see the package doc for the list). Errors returned by command handlers
// are ignored here; handlers report their own errors. This keeps the loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		if a.isUnlocked() {
			printlnFn("safenotes> ")
		} else {
			printlnFn("calc> ")
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		if !a.isUnlocked() {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case "exit", "quit":
				return
			}
			if out := a.CalculatorLine(ctx, line); out != "" {
				printlnFn("= " + out)
			}
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: journal, addmedia <path>, remove <id>, clearjournal, ttl <24h|48h|never>, sos, setpin, setcontact, setmessage, location <on|off>, lock, exit")

		case "journal":
			_ = a.Journal(ctx)

		case "addmedia":
			if len(args) == 0 {
				printlnFn("Usage: addmedia <path>")
				continue
			}
			_ = a.AddMedia(ctx, args[0])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <id>")
				continue
			}
			_ = a.RemoveMedia(ctx, args[0])

		case "clearjournal":
			_ = a.ClearJournal(ctx)

		case "ttl":
			if len(args) == 0 {
				printlnFn("Usage: ttl <24h|48h|never>")
				continue
			}
			_ = a.SetTTL(ctx, args[0])

		case "sos":
			_ = a.SOS(ctx)

		case "setpin":
			_ = a.SetPin(ctx)

		case "setcontact":
			_ = a.SetContact(ctx)

		case "setmessage":
			_ = a.SetMessage(ctx)

		case "location":
			if len(args) == 0 {
				printlnFn("Usage: location <on|off>")
				continue
			}
			_ = a.SetLocation(ctx, args[0])

		case "lock":
			_ = a.Lock(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
