package style

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is either an explicit ARGB value or a reference into the workbook
// theme palette with an optional tint.
type Color struct {
	ARGB    string // upper-case AARRGGBB, empty for theme colors
	Theme   int
	IsTheme bool
	Tint    float64
}

// Black is the default color of edges and fonts.
var Black = Color{ARGB: "FF000000"}

// RGB returns an opaque color from RRGGBB or AARRGGBB hex digits, a leading
// '#' is ignored.
func RGB(value string) (Color, error) {
	v := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(value), "#"))
	switch len(v) {
	case 6:
		v = "FF" + v
	case 8:
	default:
		return Color{}, configError("color %q must have 6 or 8 hex digits", value)
	}
	if _, err := hex.DecodeString(v); err != nil {
		return Color{}, configError("color %q is not hexadecimal", value)
	}
	return Color{ARGB: v}, nil
}

// ThemeColor references theme palette entry idx.
func ThemeColor(idx int, tint float64) Color {
	return Color{Theme: idx, IsTheme: true, Tint: tint}
}

// ParseColor accepts a hex string or a mapping with rgb, argb, theme and tint
// keys.
func ParseColor(in any) (Color, error) {
	switch v := in.(type) {
	case Color:
		return v, nil
	case string:
		return RGB(v)
	}
	cfg, err := asConfig(in, "color")
	if err != nil {
		return Color{}, err
	}

	var (
		c        Color
		haveTint bool
		tint     float64
		haveRGB  bool
	)
	err = walkConfig(cfg, "color", func(key string, val any) (bool, error) {
		switch key {
		case "rgb", "argb":
			s, err := asString(val)
			if err != nil {
				return true, err
			}
			if key == "argb" && len(strings.TrimPrefix(s, "#")) != 8 {
				return true, configError("argb %q must have 8 hex digits", s)
			}
			rgb, err := RGB(s)
			if err != nil {
				return true, err
			}
			c.ARGB, haveRGB = rgb.ARGB, true
		case "theme":
			idx, err := asInt(val)
			if err != nil {
				return true, err
			}
			if idx < 0 {
				return true, configError("theme index %d is negative", idx)
			}
			c.Theme, c.IsTheme = idx, true
		case "tint":
			f, err := asFloat(val)
			if err != nil {
				return true, err
			}
			if f < -1 || f > 1 {
				return true, configError("tint %v out of range [-1, 1]", f)
			}
			tint, haveTint = f, true
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return Color{}, err
	}

	switch {
	case haveRGB && c.IsTheme:
		return Color{}, configError("color cannot be both rgb and theme")
	case !haveRGB && !c.IsTheme:
		return Color{}, configError("color needs rgb, argb or theme")
	}
	if haveTint {
		c.Tint = tint
	}
	if c.IsTheme {
		c.ARGB = ""
	}
	return c, nil
}

func (c Color) Hash() Digest {
	return c.encode(newCanonical(schemaColor)).sum()
}

func (c Color) encode(enc *canonical) *canonical {
	return enc.bool(c.IsTheme).str(c.ARGB).int(c.Theme).float(c.Tint)
}

func (c Color) String() string {
	if c.IsTheme {
		if c.Tint != 0 {
			return fmt.Sprintf("theme:%d%+g", c.Theme, c.Tint)
		}
		return fmt.Sprintf("theme:%d", c.Theme)
	}
	return c.ARGB
}
