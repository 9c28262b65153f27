package style

// Fill is the cell background.
type Fill struct {
	Pattern    FillPattern
	StartColor Color
	EndColor   Color
}

var white = Color{ARGB: "FFFFFFFF"}

func DefaultFill() Fill {
	return Fill{Pattern: FillPatternNone, StartColor: white, EndColor: Black}
}

// ApplyFromConfig merges a fill configuration mapping into a copy of f.
// "color" is an alias of "startColor".
func (f Fill) ApplyFromConfig(in any) (Fill, error) {
	cfg, err := asConfig(in, "fill")
	if err != nil {
		return f, err
	}
	out := f
	err = walkConfig(cfg, "fill", func(key string, val any) (bool, error) {
		var err error
		switch key {
		case "type", "filltype", "pattern":
			out.Pattern, err = parseFillPattern(val)
		case "startcolor", "color":
			out.StartColor, err = ParseColor(val)
		case "endcolor":
			out.EndColor, err = ParseColor(val)
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

func parseFillPattern(in any) (FillPattern, error) {
	switch v := in.(type) {
	case FillPattern:
		return v, nil
	case string:
		if v == "" {
			return FillPatternNone, nil
		}
		p, err := ParseFillPattern(v)
		if err != nil {
			return FillPatternNone, configError("%v", err)
		}
		return p, nil
	default:
		return FillPatternNone, configError("fill type must be a name, got %T", in)
	}
}

func (f Fill) Hash() Digest {
	enc := newCanonical(schemaFill)
	enc.int(int(f.Pattern)).digest(f.StartColor.Hash()).digest(f.EndColor.Hash())
	return enc.sum()
}
