package component

import (
	"maps"
	"math"
	"slices"

	"github.com/matzehuels/pinout/pkg/errors"
)

// Validate checks the invariants every layout relies on.
//
// An unknown package kind is reported as UNSUPPORTED_PACKAGE. Everything
// else is MALFORMED_DESCRIPTOR:
//   - num_pins must be positive and even
//   - PLCC needs num_pins divisible by 4
//   - QFP needs num_pins divisible by 4, or 0 < num_pins_base < num_pins/2
//   - an explicit width must be finite and non-negative
//   - pins must hold exactly the positions 1..num_pins
//   - directions and flags must be known values
func (d Descriptor) Validate() error {
	info := d.Info
	if !info.Package.Supported() {
		return errors.New(errors.ErrCodeUnsupportedPackage, "package %q has no layout (want one of %v)", info.Package, Kinds())
	}

	n := info.NumPins
	if n <= 0 || n%2 != 0 {
		return errors.New(errors.ErrCodeMalformedDescriptor, "num_pins must be a positive even number, got %d", n)
	}

	switch info.Package {
	case PLCC:
		if n%4 != 0 {
			return errors.New(errors.ErrCodeMalformedDescriptor, "PLCC num_pins must be divisible by 4, got %d", n)
		}
	case QFP:
		if info.NumPinsBase != 0 {
			if info.NumPinsBase < 0 || info.NumPinsBase >= n/2 {
				return errors.New(errors.ErrCodeMalformedDescriptor,
					"QFP num_pins_base must be between 1 and %d, got %d", n/2-1, info.NumPinsBase)
			}
		} else if n%4 != 0 {
			return errors.New(errors.ErrCodeMalformedDescriptor,
				"QFP num_pins must be divisible by 4 unless num_pins_base is set, got %d", n)
		}
	}

	if w := info.Width.Value; math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return errors.New(errors.ErrCodeMalformedDescriptor, "width must be a finite non-negative number, got %v", w)
	}

	for i := 1; i <= n; i++ {
		if _, ok := d.Pin(i); !ok {
			return errors.New(errors.ErrCodeMalformedDescriptor, "pin %d of %d has no entry", i, n)
		}
	}
	for _, pos := range slices.Sorted(maps.Keys(d.Pins)) {
		p := d.Pins[pos]
		if pos < 1 || pos > n {
			return errors.New(errors.ErrCodeMalformedDescriptor, "pin %d is outside 1..%d", pos, n)
		}
		if !p.Dir.Valid() {
			return errors.New(errors.ErrCodeMalformedDescriptor, "pin %d: unknown direction %q", pos, p.Dir)
		}
		for _, f := range p.Flags {
			if !f.Valid() {
				return errors.New(errors.ErrCodeMalformedDescriptor, "pin %d: unknown flag %q", pos, f)
			}
		}
	}
	return nil
}
