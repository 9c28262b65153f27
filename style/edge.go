package style

import "fmt"

// Edge is the style of one side of a cell: how the line is drawn and its color.
type Edge struct {
	Line  LineKind
	Color Color
}

// DefaultEdge is an undrawn black edge.
func DefaultEdge() Edge {
	return Edge{Line: LineKindNone, Color: Black}
}

// EdgePatch carries the fields of an edge configuration that were actually
// present. Absent fields are nil and leave the target unchanged.
type EdgePatch struct {
	Line  *LineKind
	Color *Color
}

func (p EdgePatch) IsZero() bool {
	return p.Line == nil && p.Color == nil
}

// Config renders the patch back into configuration form.
func (p EdgePatch) Config() Config {
	cfg := Config{}
	if p.Line != nil {
		cfg["style"] = p.Line.String()
	}
	if p.Color != nil {
		cfg["color"] = *p.Color
	}
	return cfg
}

// ParseEdgePatch reads an edge configuration mapping with "style" (or
// "lineKind") and "color" keys.
func ParseEdgePatch(in any) (EdgePatch, error) {
	return parseEdgePatch(in, "edge")
}

func parseEdgePatch(in any, what string) (EdgePatch, error) {
	switch v := in.(type) {
	case EdgePatch:
		return v, nil
	case Edge:
		return EdgePatch{Line: &v.Line, Color: &v.Color}, nil
	}
	cfg, err := asConfig(in, what)
	if err != nil {
		return EdgePatch{}, err
	}
	var p EdgePatch
	err = walkConfig(cfg, what, func(key string, val any) (bool, error) {
		switch key {
		case "style", "linekind":
			k, err := parseLineKind(val)
			if err != nil {
				return true, err
			}
			p.Line = &k
		case "color":
			c, err := ParseColor(val)
			if err != nil {
				return true, err
			}
			p.Color = &c
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return EdgePatch{}, err
	}
	return p, nil
}

func parseLineKind(in any) (LineKind, error) {
	switch v := in.(type) {
	case LineKind:
		if !v.IsValid() {
			return 0, configError("line kind %d is out of range", int(v))
		}
		return v, nil
	case nil:
		return LineKindNone, nil
	case string:
		if v == "" {
			return LineKindNone, nil
		}
		k, err := ParseLineKind(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return k, nil
	default:
		return 0, configError("line kind must be a name, got %T", in)
	}
}

// Apply returns a copy of e with the fields present in p replaced.
func (e Edge) Apply(p EdgePatch) Edge {
	if p.Line != nil {
		e.Line = *p.Line
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	return e
}

// ApplyFromConfig merges an edge configuration mapping into a copy of e.
func (e Edge) ApplyFromConfig(cfg any) (Edge, error) {
	p, err := ParseEdgePatch(cfg)
	if err != nil {
		return e, err
	}
	return e.Apply(p), nil
}

func (e Edge) Hash() Digest {
	return e.encode(newCanonical(schemaEdge)).sum()
}

func (e Edge) encode(enc *canonical) *canonical {
	return enc.int(int(e.Line)).digest(e.Color.Hash())
}

func (e Edge) String() string {
	return e.Line.String() + " " + e.Color.String()
}
