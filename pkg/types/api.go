package types

import (
	"errors"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO               ErrKind = iota // open/read/write/stat failure on the container
	ErrKindOutOfRange                      // offset outside the container
	ErrKindUnsupportedLevel                // level index missing from the title's tables
	ErrKindNotLocatable                    // a heuristic scan exhausted its search space
	ErrKindInvalid                         // caller supplied a value the field cannot hold
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrOutOfRange)
// holds for every out-of-range failure regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrIO indicates the container could not be opened, read or written.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "container i/o failure"}
	// ErrOutOfRange indicates an offset beyond the container bounds.
	ErrOutOfRange = &Error{Kind: ErrKindOutOfRange, Msg: "offset out of range"}
	// ErrUnsupportedLevel indicates the slot's level has no layout entry.
	ErrUnsupportedLevel = &Error{Kind: ErrKindUnsupportedLevel, Msg: "unsupported level"}
	// ErrNotLocatable indicates a health or secondary ammo scan found nothing.
	ErrNotLocatable = &Error{Kind: ErrKindNotLocatable, Msg: "field not locatable"}
	// ErrInvalid indicates a value or name the codec cannot accept.
	ErrInvalid = &Error{Kind: ErrKindInvalid, Msg: "invalid value"}
)

// IOError wraps cause as an ErrKindIO error.
func IOError(msg string, cause error) error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: cause}
}

// OutOfRange reports an access of n bytes at off against a container of size bytes.
func OutOfRange(off, n int, size int64) error {
	return &Error{
		Kind: ErrKindOutOfRange,
		Msg:  fmt.Sprintf("offset 0x%X (+%d) outside container of %d bytes", off, n, size),
	}
}

// UnsupportedLevel reports a level index that has no table entry.
func UnsupportedLevel(level uint8) error {
	return &Error{Kind: ErrKindUnsupportedLevel, Msg: fmt.Sprintf("unsupported level %d", level)}
}

// NotLocatable reports an exhausted heuristic scan for field.
func NotLocatable(field string) error {
	return &Error{Kind: ErrKindNotLocatable, Msg: field + " not locatable"}
}

// Invalid reports a rejected argument.
func Invalid(format string, args ...any) error {
	return &Error{Kind: ErrKindInvalid, Msg: fmt.Sprintf(format, args...)}
}

// IsRecoverable reports whether err is an expected degraded state
// (unsupported level or unlocatable field) rather than a failure.
func IsRecoverable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == ErrKindUnsupportedLevel || e.Kind == ErrKindNotLocatable
}

// -----------------------------------------------------------------------------
// Titles, Platforms, Game Modes
// -----------------------------------------------------------------------------

// Title identifies one of the supported game titles.
type Title int

const (
	TitleTR2 Title = iota // Title A: level-indexed layout, secondary ammo mirror
	TitleTR5              // Title B: static layout
)

func (t Title) String() string {
	switch t {
	case TitleTR2:
		return "tr2"
	case TitleTR5:
		return "tr5"
	default:
		return fmt.Sprintf("UNKNOWN_TITLE_%d", int(t))
	}
}

// ParseTitle accepts "tr2" or "tr5" (case-insensitive).
func ParseTitle(s string) (Title, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tr2":
		return TitleTR2, nil
	case "tr5":
		return TitleTR5, nil
	}
	return 0, Invalid("unknown title %q (want tr2 or tr5)", s)
}

// Platform selects the build variant a container was produced by.
// Only Title A health brackets and secondary ammo tables depend on it.
type Platform int

const (
	PlatformPC Platform = iota
	PlatformConsole
)

func (p Platform) String() string {
	switch p {
	case PlatformPC:
		return "pc"
	case PlatformConsole:
		return "console"
	default:
		return fmt.Sprintf("UNKNOWN_PLATFORM_%d", int(p))
	}
}

// ParsePlatform accepts "pc" or "console" (case-insensitive).
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pc":
		return PlatformPC, nil
	case "console":
		return PlatformConsole, nil
	}
	return 0, Invalid("unknown platform %q (want pc or console)", s)
}

// GameMode is derived from the slot's mode byte: zero is Normal, anything else Plus.
type GameMode int

const (
	GameModeNormal GameMode = iota
	GameModePlus
)

// GameModeFromByte decodes a raw mode byte.
func GameModeFromByte(b uint8) GameMode {
	if b == 0 {
		return GameModeNormal
	}
	return GameModePlus
}

func (m GameMode) String() string {
	if m == GameModePlus {
		return "Plus"
	}
	return "Normal"
}

// MarshalText renders the mode name so reports carry "Normal" or "Plus".
func (m GameMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
