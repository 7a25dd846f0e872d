package component

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pinout/pkg/errors"
)

type document struct {
	Info    Info           `toml:"info"`
	Pins    map[string]Pin `toml:"pins"`
	Details Details        `toml:"details"`
}

// Read decodes a TOML component description from r and validates it.
//
// Decode failures and pin keys that are not positive integers are
// reported as MALFORMED_DESCRIPTOR; see [Descriptor.Validate] for the
// remaining checks.
func Read(r io.Reader) (Descriptor, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return Descriptor{}, errors.Wrap(errors.ErrCodeMalformedDescriptor, err, "decode component")
	}

	d := Descriptor{
		Info:    doc.Info,
		Pins:    make(map[int]Pin, len(doc.Pins)),
		Details: doc.Details,
	}
	for key, pin := range doc.Pins {
		n, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || n < 1 {
			return Descriptor{}, errors.New(errors.ErrCodeMalformedDescriptor, "pin key %q is not a pin position", key)
		}
		if _, dup := d.Pins[n]; dup {
			return Descriptor{}, errors.New(errors.ErrCodeMalformedDescriptor, "pin %d is defined twice", n)
		}
		d.Pins[n] = pin
	}

	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Load reads the component file at path. See [Read].
func Load(path string) (Descriptor, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Descriptor{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "component %s", path)
	}
	if err != nil {
		return Descriptor{}, err
	}
	defer f.Close()
	return Read(f)
}
