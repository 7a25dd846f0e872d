package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/errors"
	"github.com/matzehuels/pinout/pkg/pintable"
)

func TestRenderPinTable(t *testing.T) {
	d, err := component.Read(strings.NewReader(ne555))
	if err != nil {
		t.Fatal(err)
	}
	out := renderPinTable(pintable.Rows(d))
	for _, want := range []string{"Pin", "Direction", "TRIG", "activeLow", "VCC", "power"} {
		if !strings.Contains(out, want) {
			t.Errorf("table lacks %q:\n%s", want, out)
		}
	}
}

func TestWritePinTable(t *testing.T) {
	d, err := component.Read(strings.NewReader(ne555))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	path := filepath.Join(dir, "ne555.xlsx")
	if err := writePinTable(path, d); err != nil {
		t.Fatalf("writePinTable() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("xlsx not written: %v", err)
	}

	if err := writePinTable(filepath.Join(dir, "ne555.csv"), d); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("writePinTable(.csv) error = %v, want INVALID_FORMAT", err)
	}
}
