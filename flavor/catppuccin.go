// Catppuccin color tables: https://catppuccin.com/palette

package flavor

import "flavorize/cielab"

func rgb(r, g, b uint8) cielab.Color {
	return cielab.Color{R: r, G: g, B: b, A: 0xFF}
}

var (
	Latte = newFlavor("latte", []Entry{
		{"rosewater", rgb(0xdc, 0x8a, 0x78)},
		{"flamingo", rgb(0xdd, 0x78, 0x78)},
		{"pink", rgb(0xea, 0x76, 0xcb)},
		{"mauve", rgb(0x88, 0x39, 0xef)},
		{"red", rgb(0xd2, 0x0f, 0x39)},
		{"maroon", rgb(0xe6, 0x45, 0x53)},
		{"peach", rgb(0xfe, 0x64, 0x0b)},
		{"yellow", rgb(0xdf, 0x8e, 0x1d)},
		{"green", rgb(0x40, 0xa0, 0x2b)},
		{"teal", rgb(0x17, 0x92, 0x99)},
		{"sky", rgb(0x04, 0xa5, 0xe5)},
		{"sapphire", rgb(0x20, 0x9f, 0xb5)},
		{"blue", rgb(0x1e, 0x66, 0xf5)},
		{"lavender", rgb(0x72, 0x87, 0xfd)},
		{"text", rgb(0x4c, 0x4f, 0x69)},
		{"subtext1", rgb(0x5c, 0x5f, 0x77)},
		{"subtext0", rgb(0x6c, 0x6f, 0x85)},
		{"overlay2", rgb(0x7c, 0x7f, 0x93)},
		{"overlay1", rgb(0x8c, 0x8f, 0xa1)},
		{"overlay0", rgb(0x9c, 0xa0, 0xb0)},
		{"surface2", rgb(0xac, 0xb0, 0xbe)},
		{"surface1", rgb(0xbc, 0xc0, 0xcc)},
		{"surface0", rgb(0xcc, 0xd0, 0xda)},
		{"base", rgb(0xef, 0xf1, 0xf5)},
		{"mantle", rgb(0xe6, 0xe9, 0xef)},
		{"crust", rgb(0xdc, 0xe0, 0xe8)},
	})

	Frappe = newFlavor("frappe", []Entry{
		{"rosewater", rgb(0xf2, 0xd5, 0xcf)},
		{"flamingo", rgb(0xee, 0xbe, 0xbe)},
		{"pink", rgb(0xf4, 0xb8, 0xe4)},
		{"mauve", rgb(0xca, 0x9e, 0xe6)},
		{"red", rgb(0xe7, 0x82, 0x84)},
		{"maroon", rgb(0xea, 0x99, 0x9c)},
		{"peach", rgb(0xef, 0x9f, 0x76)},
		{"yellow", rgb(0xe5, 0xc8, 0x90)},
		{"green", rgb(0xa6, 0xd1, 0x89)},
		{"teal", rgb(0x81, 0xc8, 0xbe)},
		{"sky", rgb(0x99, 0xd1, 0xdb)},
		{"sapphire", rgb(0x85, 0xc1, 0xdc)},
		{"blue", rgb(0x8c, 0xaa, 0xee)},
		{"lavender", rgb(0xba, 0xbb, 0xf1)},
		{"text", rgb(0xc6, 0xd0, 0xf5)},
		{"subtext1", rgb(0xb5, 0xbf, 0xe2)},
		{"subtext0", rgb(0xa5, 0xad, 0xce)},
		{"overlay2", rgb(0x94, 0x9c, 0xbb)},
		{"overlay1", rgb(0x83, 0x8b, 0xa7)},
		{"overlay0", rgb(0x73, 0x79, 0x94)},
		{"surface2", rgb(0x62, 0x68, 0x80)},
		{"surface1", rgb(0x51, 0x57, 0x6d)},
		{"surface0", rgb(0x41, 0x45, 0x59)},
		{"base", rgb(0x30, 0x34, 0x46)},
		{"mantle", rgb(0x29, 0x2c, 0x3c)},
		{"crust", rgb(0x23, 0x26, 0x34)},
	})

	Macchiato = newFlavor("macchiato", []Entry{
		{"rosewater", rgb(0xf4, 0xdb, 0xd6)},
		{"flamingo", rgb(0xf0, 0xc6, 0xc6)},
		{"pink", rgb(0xf5, 0xbd, 0xe6)},
		{"mauve", rgb(0xc6, 0xa0, 0xf6)},
		{"red", rgb(0xed, 0x87, 0x96)},
		{"maroon", rgb(0xee, 0x99, 0xa0)},
		{"peach", rgb(0xf5, 0xa9, 0x7f)},
		{"yellow", rgb(0xee, 0xd4, 0x9f)},
		{"green", rgb(0xa6, 0xda, 0x95)},
		{"teal", rgb(0x8b, 0xd5, 0xca)},
		{"sky", rgb(0x91, 0xd7, 0xe3)},
		{"sapphire", rgb(0x7d, 0xc4, 0xe4)},
		{"blue", rgb(0x8a, 0xad, 0xf4)},
		{"lavender", rgb(0xb7, 0xbd, 0xf8)},
		{"text", rgb(0xca, 0xd3, 0xf5)},
		{"subtext1", rgb(0xb8, 0xc0, 0xe0)},
		{"subtext0", rgb(0xa5, 0xad, 0xcb)},
		{"overlay2", rgb(0x93, 0x9a, 0xb7)},
		{"overlay1", rgb(0x80, 0x87, 0xa2)},
		{"overlay0", rgb(0x6e, 0x73, 0x8d)},
		{"surface2", rgb(0x5b, 0x60, 0x78)},
		{"surface1", rgb(0x49, 0x4d, 0x64)},
		{"surface0", rgb(0x36, 0x3a, 0x4f)},
		{"base", rgb(0x24, 0x27, 0x3a)},
		{"mantle", rgb(0x1e, 0x20, 0x30)},
		{"crust", rgb(0x18, 0x19, 0x26)},
	})

	Mocha = newFlavor("mocha", []Entry{
		{"rosewater", rgb(0xf5, 0xe0, 0xdc)},
		{"flamingo", rgb(0xf2, 0xcd, 0xcd)},
		{"pink", rgb(0xf5, 0xc2, 0xe7)},
		{"mauve", rgb(0xcb, 0xa6, 0xf7)},
		{"red", rgb(0xf3, 0x8b, 0xa8)},
		{"maroon", rgb(0xeb, 0xa0, 0xac)},
		{"peach", rgb(0xfa, 0xb3, 0x87)},
		{"yellow", rgb(0xf9, 0xe2, 0xaf)},
		{"green", rgb(0xa6, 0xe3, 0xa1)},
		{"teal", rgb(0x94, 0xe2, 0xd5)},
		{"sky", rgb(0x89, 0xdc, 0xeb)},
		{"sapphire", rgb(0x74, 0xc7, 0xec)},
		{"blue", rgb(0x89, 0xb4, 0xfa)},
		{"lavender", rgb(0xb4, 0xbe, 0xfe)},
		{"text", rgb(0xcd, 0xd6, 0xf4)},
		{"subtext1", rgb(0xba, 0xc2, 0xde)},
		{"subtext0", rgb(0xa6, 0xad, 0xc8)},
		{"overlay2", rgb(0x93, 0x99, 0xb2)},
		{"overlay1", rgb(0x7f, 0x84, 0x9c)},
		{"overlay0", rgb(0x6c, 0x70, 0x86)},
		{"surface2", rgb(0x58, 0x5b, 0x70)},
		{"surface1", rgb(0x45, 0x47, 0x5a)},
		{"surface0", rgb(0x31, 0x32, 0x44)},
		{"base", rgb(0x1e, 0x1e, 0x2e)},
		{"mantle", rgb(0x18, 0x18, 0x25)},
		{"crust", rgb(0x11, 0x11, 0x1b)},
	})

	// All flavors, light to dark.
	All = []*Flavor{Latte, Frappe, Macchiato, Mocha}

	byName = map[string]*Flavor{
		"latte":     Latte,
		"frappe":    Frappe,
		"macchiato": Macchiato,
		"mocha":     Mocha,
	}
)
