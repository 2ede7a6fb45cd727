// Package cli implements the interactive SafeNotes client.
//
// The program starts disguised as a plain calculator: every input line is fed
// through the calculator gate keystroke by keystroke and evaluated on Enter.
// Typing the configured PIN instead of an expression unlocks the real
// application; "lock" returns to the calculator with the input cleared.
//
// Unlocked commands
//
//	journal            — list journaled evidence (newest first)
//	addmedia <path>    — copy a media file into the journal
//	remove <id>        — drop one journal entry and its file
//	clearjournal       — wipe the whole journal
//	ttl <24h|48h|never> — set the journal auto-wipe window
//	sos                — compose and dispatch the emergency message
//	setpin             — change the unlock PIN (no echo)
//	setcontact         — set the emergency contact
//	setmessage         — set the emergency message template
//	location <on|off>  — toggle location sharing
//	lock               — return to the calculator disguise
//	exit | quit        — leave the program
package cli
