// Package style holds the concrete cell style values, their configuration
// parsing, structural hashing and the workbook-scoped deduplicating registry.
//
// Every value here is immutable: "changing" a style builds a new value which
// is then registered again, so cells sharing a style never observe each
// other's edits.
package style

import (
	"go.uber.org/multierr"
)

// Style is the full formatting of a cell. It is what cells reference by index.
type Style struct {
	Borders      Borders
	Font         Font
	Fill         Fill
	Alignment    Alignment
	NumberFormat NumberFormat
}

// Default returns the workbook default style.
func Default() Style {
	return Style{
		Borders:      DefaultBorders(),
		Font:         DefaultFont(),
		Fill:         DefaultFill(),
		Alignment:    DefaultAlignment(),
		NumberFormat: DefaultNumberFormat(),
	}
}

// Category keys of a style configuration.
const (
	KeyBorders      = "borders"
	KeyFont         = "font"
	KeyFill         = "fill"
	KeyAlignment    = "alignment"
	KeyNumberFormat = "numberFormat"
)

// StylePatch is a validated style configuration split by category. Absent
// categories are nil.
type StylePatch struct {
	Borders      *BordersPatch
	Font         Config
	Fill         Config
	Alignment    Config
	NumberFormat Config
}

func (p StylePatch) IsZero() bool {
	return p.Borders == nil && p.Font == nil && p.Fill == nil && p.Alignment == nil && p.NumberFormat == nil
}

// WithBorders returns a copy of p carrying bp as its borders part.
func (p StylePatch) WithBorders(bp BordersPatch) StylePatch {
	p.Borders = &bp
	return p
}

// ParseStylePatch reads and validates a style configuration mapping. Every
// category is checked up front so a bad configuration is rejected before any
// cell is touched.
func ParseStylePatch(in any) (StylePatch, error) {
	if p, ok := in.(StylePatch); ok {
		return p, nil
	}
	cfg, err := asConfig(in, "style")
	if err != nil {
		return StylePatch{}, err
	}
	var p StylePatch
	err = walkConfig(cfg, "style", func(key string, val any) (bool, error) {
		var err error
		switch key {
		case "borders":
			var bp BordersPatch
			if bp, err = ParseBordersPatch(val); err == nil {
				p.Borders = &bp
			}
		case "font":
			if p.Font, err = asConfig(val, KeyFont); err == nil {
				_, err = DefaultFont().ApplyFromConfig(p.Font)
			}
		case "fill":
			if p.Fill, err = asConfig(val, KeyFill); err == nil {
				_, err = DefaultFill().ApplyFromConfig(p.Fill)
			}
		case "alignment":
			if p.Alignment, err = asConfig(val, KeyAlignment); err == nil {
				_, err = DefaultAlignment().ApplyFromConfig(p.Alignment)
			}
		case "numberformat":
			if p.NumberFormat, err = asConfig(val, KeyNumberFormat); err == nil {
				_, err = DefaultNumberFormat().ApplyFromConfig(p.NumberFormat)
			}
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return StylePatch{}, err
	}
	return p, nil
}

// Config renders the patch back into configuration form.
func (p StylePatch) Config() Config {
	cfg := Config{}
	if p.Borders != nil {
		cfg[KeyBorders] = p.Borders.Config()
	}
	if p.Font != nil {
		cfg[KeyFont] = p.Font
	}
	if p.Fill != nil {
		cfg[KeyFill] = p.Fill
	}
	if p.Alignment != nil {
		cfg[KeyAlignment] = p.Alignment
	}
	if p.NumberFormat != nil {
		cfg[KeyNumberFormat] = p.NumberFormat
	}
	return cfg
}

// Apply returns a copy of s with every category present in p applied.
func (s Style) Apply(p StylePatch) (Style, error) {
	var err, e error
	out := s
	if p.Borders != nil {
		out.Borders, e = out.Borders.Apply(*p.Borders)
		err = multierr.Append(err, e)
	}
	if p.Font != nil {
		out.Font, e = out.Font.ApplyFromConfig(p.Font)
		err = multierr.Append(err, e)
	}
	if p.Fill != nil {
		out.Fill, e = out.Fill.ApplyFromConfig(p.Fill)
		err = multierr.Append(err, e)
	}
	if p.Alignment != nil {
		out.Alignment, e = out.Alignment.ApplyFromConfig(p.Alignment)
		err = multierr.Append(err, e)
	}
	if p.NumberFormat != nil {
		out.NumberFormat, e = out.NumberFormat.ApplyFromConfig(p.NumberFormat)
		err = multierr.Append(err, e)
	}
	if err != nil {
		return s, err
	}
	return out, nil
}

// ApplyFromConfig parses cfg and applies it to a copy of s.
func (s Style) ApplyFromConfig(cfg any) (Style, error) {
	p, err := ParseStylePatch(cfg)
	if err != nil {
		return s, err
	}
	return s.Apply(p)
}

func (s Style) Hash() Digest {
	enc := newCanonical(schemaStyle)
	enc.digest(s.Borders.Hash()).
		digest(s.Font.Hash()).
		digest(s.Fill.Hash()).
		digest(s.Alignment.Hash()).
		digest(s.NumberFormat.Hash())
	return enc.sum()
}
