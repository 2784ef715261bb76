package flavor

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"flavorize/cielab"
)

// Entry is one named color of a flavor.
type Entry struct {
	Name  string
	Color cielab.Color
}

// Flavor is an ordered, named set of target colors. Instances are built from
// the static tables in this package and never change after construction.
type Flavor struct {
	Name    string
	Entries []Entry

	labs []cielab.Lab
}

func newFlavor(name string, entries []Entry) *Flavor {
	labs := make([]cielab.Lab, len(entries))
	for i, e := range entries {
		labs[i] = cielab.ToLab(e.Color)
	}
	return &Flavor{Name: name, Entries: entries, labs: labs}
}

// Labs returns the flavor's colors converted to CIELAB, in declaration
// order. The slice is shared and must not be modified.
func (f *Flavor) Labs() []cielab.Lab {
	return f.labs
}

// Nearest returns the entry with minimum CIELAB distance to c. Ties go to
// the earlier entry.
func (f *Flavor) Nearest(c cielab.Color) Entry {
	lc := cielab.ToLab(c)
	best, bestSum := 0, math.MaxFloat64
	for i, v := range f.labs {
		sum := lc.DistanceSquared(v)
		if sum < bestSum {
			if sum == 0 {
				return f.Entries[i]
			}
			best, bestSum = i, sum
		}
	}
	return f.Entries[best]
}

// Palette returns the flavor's colors as an image/color palette.
func (f *Flavor) Palette() color.Palette {
	pal := make(color.Palette, len(f.Entries))
	for i, e := range f.Entries {
		pal[i] = e.Color
	}
	return pal
}

// Lookup finds a flavor by name, case-insensitively.
func Lookup(name string) (*Flavor, bool) {
	f, ok := byName[strings.ToLower(name)]
	return f, ok
}

// Names lists all flavor names in canonical (light to dark) order.
func Names() []string {
	names := make([]string, len(All))
	for i, f := range All {
		names[i] = f.Name
	}
	return names
}

// ParseHex reads a #RGB or #RRGGBB color string. The leading '#' is
// optional.
func ParseHex(s string) (cielab.Color, error) {
	s = strings.TrimPrefix(s, "#")

	var c cielab.Color
	switch len(s) {
	case 3:
		n, err := fmt.Sscanf(s, "%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return c, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 6:
		n, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return c, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return c, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}

	c.A = 0xFF
	return c, nil
}
