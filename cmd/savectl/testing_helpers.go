package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/savekit/internal/config"
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
	"github.com/joshuapare/savekit/save/tr2"
	"github.com/joshuapare/savekit/save/tr5"
)

// resetFlags restores every package-level flag to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	quiet = false
	verbose = false
	jsonOut = false
	debug = false
	settings = config.Default()
	setBackup = false
	setDurable = false
}

// slotFixture describes one slot written by writeContainer.
type slotFixture struct {
	level      uint8
	saveNumber int32
	plus       bool
	// health is planted at the level's first scan position when nonzero.
	health uint16
	// mirrored marks tr2 secondary record index as sentinel-filled.
	mirrored  bool
	secondary int
}

// writeContainer builds a container for p holding slots and returns its
// path inside t.TempDir().
func writeContainer(t *testing.T, p *save.Profile, slots map[int]slotFixture) string {
	t.Helper()
	n := 0
	for i := range slots {
		if i+1 > n {
			n = i + 1
		}
	}
	b := save.NewBuffer(make([]byte, p.SlotOffset(n+1)))
	for i, s := range slots {
		off := p.SlotOffset(i)
		mode := uint8(0)
		if s.plus {
			mode = 1
		}
		must(t, b.WriteU8(off+p.StatusOffset, 1))
		must(t, b.WriteU8(off+p.LevelOffset, s.level))
		must(t, b.WriteU8(off+p.GameModeOffset, mode))
		must(t, save.WriteI32(b, off+p.SaveNumberOffset, s.saveNumber))
		if s.health != 0 {
			plantHealth(t, b, p.Title, off, s.level, s.health)
		}
		if s.mirrored {
			plantSentinels(t, b, off, s.level, s.secondary)
		}
	}

	path := filepath.Join(t.TempDir(), "savegame.dat")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write container: %v", err)
	}
	return path
}

// plantHealth writes a standing signature and v at the start of the level's
// PC health bracket.
func plantHealth(t *testing.T, b *save.Buffer, title types.Title, slotOff int, level uint8, v uint16) {
	t.Helper()
	var (
		off    int
		window int
		sig    [4]byte
	)
	switch title {
	case types.TitleTR5:
		l := tr5.Resolve(level)
		off, window, sig = l.Health.Min, tr5.Scanner.Window, tr5.Signatures[0].Bytes
	default:
		l := tr2.Resolve(level, types.PlatformPC)
		off, window, sig = l.Health.Min, tr2.Scanner.Window, tr2.Signatures[0].Bytes
	}
	for i, c := range sig {
		must(t, b.WriteU8(slotOff+off-window+i, c))
	}
	must(t, save.WriteU16(b, slotOff+off, v))
}

// plantSentinels fills the PC quad run of record index with sentinel bytes.
func plantSentinels(t *testing.T, b *save.Buffer, slotOff int, level uint8, index int) {
	t.Helper()
	q, ok := tr2.SecondaryQuad(level, types.PlatformPC)
	if !ok {
		t.Fatalf("no secondary quad for level %d", level)
	}
	for _, off := range q {
		must(t, b.WriteU8(slotOff+off+index*0xC, 0xFF))
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe
	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON and decodes it into v when
// v is not nil
func assertJSON(t *testing.T, output string, v any) {
	t.Helper()
	if v == nil {
		var result any
		v = &result
	}
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
