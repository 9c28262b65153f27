package style

// Font describes how cell text is drawn.
type Font struct {
	Name      string
	Size      float64
	Bold      bool
	Italic    bool
	Strike    bool
	Underline Underline
	Color     Color
}

const (
	DefaultFontName = "Calibri"
	DefaultFontSize = 11.0
)

func DefaultFont() Font {
	return Font{Name: DefaultFontName, Size: DefaultFontSize, Color: Black}
}

// ApplyFromConfig merges a font configuration mapping into a copy of f.
func (f Font) ApplyFromConfig(in any) (Font, error) {
	cfg, err := asConfig(in, "font")
	if err != nil {
		return f, err
	}
	out := f
	err = walkConfig(cfg, "font", func(key string, val any) (bool, error) {
		var err error
		switch key {
		case "name":
			var name string
			if name, err = asString(val); err == nil {
				if name == "" {
					return true, configError("font name is empty")
				}
				out.Name = name
			}
		case "size":
			var size float64
			if size, err = asFloat(val); err == nil {
				if size <= 0 || size > 409 {
					return true, configError("font size %v out of range (0, 409]", size)
				}
				out.Size = size
			}
		case "bold":
			out.Bold, err = asBool(val)
		case "italic":
			out.Italic, err = asBool(val)
		case "strike", "strikethrough":
			out.Strike, err = asBool(val)
		case "underline":
			out.Underline, err = parseUnderline(val)
		case "color":
			out.Color, err = ParseColor(val)
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return f, err
	}
	return out, nil
}

func parseUnderline(in any) (Underline, error) {
	switch v := in.(type) {
	case Underline:
		return v, nil
	case bool:
		if v {
			return UnderlineSingle, nil
		}
		return UnderlineNone, nil
	case string:
		if v == "" {
			return UnderlineNone, nil
		}
		u, err := ParseUnderline(v)
		if err != nil {
			return UnderlineNone, configError("%v", err)
		}
		return u, nil
	default:
		return UnderlineNone, configError("underline must be a name or boolean, got %T", in)
	}
}

func (f Font) Hash() Digest {
	enc := newCanonical(schemaFont)
	enc.str(f.Name).float(f.Size).bool(f.Bold).bool(f.Italic).bool(f.Strike).int(int(f.Underline)).digest(f.Color.Hash())
	return enc.sum()
}
