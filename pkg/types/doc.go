// Package types defines the shared vocabulary of the savegame codec: the
// typed error taxonomy and the title, platform and game mode enums.
//
// Error kinds are stable categories:
//   - ErrKindIO and ErrKindOutOfRange are failures of the triggering call.
//   - ErrKindUnsupportedLevel and ErrKindNotLocatable are expected states;
//     callers disable the affected field instead of aborting.
//   - ErrKindInvalid rejects arguments before anything is written.
//
// This package has no dependencies beyond the standard library.
package types
