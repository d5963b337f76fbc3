// Package mmfile provides platform-specific helpers for mapping savegame
// containers into memory for one-shot full reads.
package mmfile
