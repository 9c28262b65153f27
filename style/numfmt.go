package style

// NumberFormat is the display format code of cell values.
type NumberFormat struct {
	Code string
}

const GeneralFormat = "General"

func DefaultNumberFormat() NumberFormat {
	return NumberFormat{Code: GeneralFormat}
}

// ApplyFromConfig merges a number format configuration mapping into a copy of n.
func (n NumberFormat) ApplyFromConfig(in any) (NumberFormat, error) {
	cfg, err := asConfig(in, "numberFormat")
	if err != nil {
		return n, err
	}
	out := n
	err = walkConfig(cfg, "numberFormat", func(key string, val any) (bool, error) {
		if key != "code" && key != "formatcode" {
			return false, nil
		}
		code, err := asString(val)
		if err != nil {
			return true, err
		}
		if code == "" {
			code = GeneralFormat
		}
		out.Code = code
		return true, nil
	})
	if err != nil {
		return n, err
	}
	return out, nil
}

func (n NumberFormat) Hash() Digest {
	return newCanonical(schemaNumFmt).str(n.Code).sum()
}
