package style

import (
	"errors"
	"testing"
)

func mustBorders(t *testing.T, b Borders, cfg Config) Borders {
	t.Helper()
	out, err := b.ApplyFromConfig(cfg)
	if err != nil {
		t.Fatalf("ApplyFromConfig(%v) error = %v", cfg, err)
	}
	return out
}

func TestBordersAllBordersExpansion(t *testing.T) {
	start := DefaultBorders()
	start.Diagonal = Edge{Line: LineKindDouble, Color: Black}
	start.DiagonalDirection = DiagonalDirectionUp

	got := mustBorders(t, start, Config{"allBorders": Config{"lineKind": "thin"}})

	for _, side := range []Side{SideLeft, SideRight, SideTop, SideBottom} {
		if k := got.Edge(side).Line; k != LineKindThin {
			t.Errorf("%s line = %s, want thin", side, k)
		}
	}
	if got.Diagonal != start.Diagonal {
		t.Errorf("diagonal changed: %v -> %v", start.Diagonal, got.Diagonal)
	}
	if got.DiagonalDirection != DiagonalDirectionUp {
		t.Errorf("diagonal direction = %s, want up", got.DiagonalDirection)
	}
}

func TestBordersAllBordersOverridesExplicitEdges(t *testing.T) {
	got := mustBorders(t, DefaultBorders(), Config{
		"left":       Config{"style": "thick"},
		"allborders": Config{"style": "hair"},
	})
	if got.Left.Line != LineKindHair {
		t.Errorf("left line = %s, want hair (allBorders is applied last)", got.Left.Line)
	}
}

func TestBordersPartialUpdate(t *testing.T) {
	before := mustBorders(t, DefaultBorders(), Config{"allBorders": Config{"style": "medium", "color": "FF0000"}})
	after := mustBorders(t, before, Config{"bottom": Config{"lineKind": "dashDot", "color": "808080"}})

	if after.Bottom.Line != LineKindDashDot {
		t.Errorf("bottom line = %s, want dashDot", after.Bottom.Line)
	}
	if after.Bottom.Color.ARGB != "FF808080" {
		t.Errorf("bottom color = %s, want FF808080", after.Bottom.Color)
	}
	for _, side := range []Side{SideLeft, SideRight, SideTop, SideDiagonal} {
		if before.Edge(side) != after.Edge(side) {
			t.Errorf("%s changed: %v -> %v", side, before.Edge(side), after.Edge(side))
		}
		if before.Edge(side).Hash() != after.Edge(side).Hash() {
			t.Errorf("%s hash changed", side)
		}
	}
	if before.Hash() == after.Hash() {
		t.Error("hash did not change after bottom edge update")
	}
}

func TestBordersPatchKeepsUnspecifiedEdgeFields(t *testing.T) {
	before := mustBorders(t, DefaultBorders(), Config{"top": Config{"style": "thick", "color": "00FF00"}})
	after := mustBorders(t, before, Config{"top": Config{"style": "thin"}})
	if after.Top.Color.ARGB != "FF00FF00" {
		t.Errorf("top color = %s, want FF00FF00 carried over", after.Top.Color)
	}
	if after.Top.Line != LineKindThin {
		t.Errorf("top line = %s, want thin", after.Top.Line)
	}
}

func TestBordersIdempotent(t *testing.T) {
	cfg := Config{
		"left":              Config{"style": "dotted"},
		"diagonal":          Config{"style": "thin", "color": Config{"theme": 4, "tint": 0.4}},
		"diagonalDirection": "both",
		"allBorders":        Config{"color": "123456"},
	}
	once := mustBorders(t, DefaultBorders(), cfg)
	twice := mustBorders(t, once, cfg)
	if once != twice {
		t.Errorf("applying twice differs:\n once  %+v\n twice %+v", once, twice)
	}
	if once.Hash() != twice.Hash() {
		t.Error("hash differs after second application")
	}
}

func TestBordersDiagonalDirectionCoercion(t *testing.T) {
	start := DefaultBorders()
	start.DiagonalDirection = DiagonalDirectionDown

	tests := []struct {
		name string
		in   any
		want DiagonalDirection
	}{
		{"empty string", "", DiagonalDirectionNone},
		{"blank string", "  ", DiagonalDirectionNone},
		{"nil", nil, DiagonalDirectionNone},
		{"name", "both", DiagonalDirectionBoth},
		{"upper case name", "UP", DiagonalDirectionUp},
		{"number", 2, DiagonalDirectionDown},
		{"numeric string", "1", DiagonalDirectionUp},
		{"typed", DiagonalDirectionBoth, DiagonalDirectionBoth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := start.WithDiagonalDirection(tt.in)
			if err != nil {
				t.Fatalf("WithDiagonalDirection(%v) error = %v", tt.in, err)
			}
			if got.DiagonalDirection != tt.want {
				t.Errorf("direction = %s, want %s", got.DiagonalDirection, tt.want)
			}
		})
	}

	for _, bad := range []any{"sideways", 7, -1, 1.5} {
		if _, err := start.WithDiagonalDirection(bad); !errors.Is(err, ErrConfiguration) {
			t.Errorf("WithDiagonalDirection(%v) error = %v, want ErrConfiguration", bad, err)
		}
	}
}

func TestBordersConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"not a mapping", "thin"},
		{"nil", nil},
		{"slice", []any{"left"}},
		{"unknown key", Config{"middle": Config{"style": "thin"}}},
		{"edge not a mapping", Config{"left": 42}},
		{"unknown line kind", Config{"left": Config{"style": "wavy"}}},
		{"bad color", Config{"left": Config{"color": "XYZ"}}},
		{"unknown edge key", Config{"left": Config{"width": 2}}},
		{"outline on a single value", Config{"outline": Config{"style": "thin"}}},
		{"inside on a single value", Config{"inside": Config{"style": "thin"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := DefaultBorders()
			got, err := start.ApplyFromConfig(tt.in)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("ApplyFromConfig(%v) error = %v, want ErrConfiguration", tt.in, err)
			}
			if got != start {
				t.Errorf("value changed on failure: %+v", got)
			}
		})
	}
}

func TestBordersCaseInsensitiveKeys(t *testing.T) {
	a := mustBorders(t, DefaultBorders(), Config{"AllBorders": Config{"Style": "thin"}, "DiagonalDirection": "up"})
	b := mustBorders(t, DefaultBorders(), Config{"allborders": Config{"linekind": "thin"}, "diagonaldirection": "up"})
	if a != b {
		t.Errorf("folded keys differ: %+v vs %+v", a, b)
	}
}

func TestBordersHashDistinguishesEveryField(t *testing.T) {
	base := DefaultBorders()
	variants := []Borders{base}
	for _, side := range []Side{SideLeft, SideRight, SideTop, SideBottom, SideDiagonal} {
		v := base
		*v.edge(side) = Edge{Line: LineKindThin, Color: Black}
		variants = append(variants, v)

		v = base
		*v.edge(side) = Edge{Line: LineKindNone, Color: Color{ARGB: "FF000001"}}
		variants = append(variants, v)
	}
	for _, d := range []DiagonalDirection{DiagonalDirectionUp, DiagonalDirectionDown, DiagonalDirectionBoth} {
		v := base
		v.DiagonalDirection = d
		variants = append(variants, v)
	}

	seen := make(map[Digest]int)
	for i, v := range variants {
		if v.Hash() != v.Hash() {
			t.Fatalf("variant %d: hash is not stable", i)
		}
		if j, ok := seen[v.Hash()]; ok {
			t.Errorf("variants %d and %d share a hash", j, i)
		}
		seen[v.Hash()] = i
	}
}

func TestBordersHashIsOrderSensitive(t *testing.T) {
	a := DefaultBorders()
	a.Left.Line = LineKindThin
	b := DefaultBorders()
	b.Right.Line = LineKindThin
	if a.Hash() == b.Hash() {
		t.Error("left and right edges are not distinguished by hash")
	}
}

func TestBordersPatchConfigRoundTrip(t *testing.T) {
	cfg := Config{
		"top":               Config{"style": "thick", "color": "00FF00"},
		"diagonalDirection": "down",
		"allBorders":        Config{"style": "hair"},
		"outline":           Config{"style": "medium"},
	}
	p, err := ParseBordersPatch(cfg)
	if err != nil {
		t.Fatalf("ParseBordersPatch() error = %v", err)
	}
	again, err := ParseBordersPatch(p.Config())
	if err != nil {
		t.Fatalf("ParseBordersPatch(Config()) error = %v", err)
	}
	if *again.Edges[SideTop].Line != LineKindThick || again.Edges[SideTop].Color.ARGB != "FF00FF00" {
		t.Errorf("top edge lost: %+v", again.Edges[SideTop])
	}
	if *again.DiagonalDirection != DiagonalDirectionDown {
		t.Errorf("direction = %s, want down", *again.DiagonalDirection)
	}
	if again.Pseudo[PseudoOutline] == nil || !again.HasRangeEdges() {
		t.Error("outline lost")
	}
}
