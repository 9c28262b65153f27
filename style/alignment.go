package style

// Alignment places content inside a cell.
type Alignment struct {
	Horizontal   HorizontalAlignment
	Vertical     VerticalAlignment
	WrapText     bool
	ShrinkToFit  bool
	Indent       int
	TextRotation int // -90..90 degrees, 255 for stacked text
}

func DefaultAlignment() Alignment {
	return Alignment{Horizontal: HorizontalAlignmentGeneral, Vertical: VerticalAlignmentBottom}
}

// ApplyFromConfig merges an alignment configuration mapping into a copy of a.
func (a Alignment) ApplyFromConfig(in any) (Alignment, error) {
	cfg, err := asConfig(in, "alignment")
	if err != nil {
		return a, err
	}
	out := a
	err = walkConfig(cfg, "alignment", func(key string, val any) (bool, error) {
		var err error
		switch key {
		case "horizontal":
			var s string
			if s, err = asString(val); err == nil {
				if out.Horizontal, err = ParseHorizontalAlignment(s); err != nil {
					err = configError("%v", err)
				}
			}
		case "vertical":
			var s string
			if s, err = asString(val); err == nil {
				if out.Vertical, err = ParseVerticalAlignment(s); err != nil {
					err = configError("%v", err)
				}
			}
		case "wraptext", "wrap":
			out.WrapText, err = asBool(val)
		case "shrinktofit":
			out.ShrinkToFit, err = asBool(val)
		case "indent":
			var n int
			if n, err = asInt(val); err == nil {
				if n < 0 || n > 250 {
					return true, configError("indent %d out of range [0, 250]", n)
				}
				out.Indent = n
			}
		case "rotation", "textrotation":
			var n int
			if n, err = asInt(val); err == nil {
				if (n < -90 || n > 90) && n != 255 {
					return true, configError("text rotation %d must be within [-90, 90] or 255", n)
				}
				out.TextRotation = n
			}
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return a, err
	}
	return out, nil
}

func (a Alignment) Hash() Digest {
	enc := newCanonical(schemaAlignment)
	enc.int(int(a.Horizontal)).int(int(a.Vertical)).bool(a.WrapText).bool(a.ShrinkToFit).int(a.Indent).int(a.TextRotation)
	return enc.sum()
}
