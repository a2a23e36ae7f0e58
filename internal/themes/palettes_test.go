// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestGetColorReturnsValueForEveryShade(t *testing.T) {
	for _, shade := range Shades {
		color := GetColor("blue", shade)
		if color == "" {
			t.Errorf("blue-%d not found", shade)
		}
		if !strings.HasPrefix(color, "oklch(") {
			t.Errorf("blue-%d should be oklch, got %s", shade, color)
		}
	}
}

func TestGetColorMisses(t *testing.T) {
	tests := []struct {
		name  string
		color string
		shade int
	}{
		{name: "unknown color", color: "notacolor", shade: 500},
		{name: "single value entry", color: "black", shade: 500},
		{name: "white", color: "white", shade: 50},
		{name: "unknown shade", color: "red", shade: 550},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetColor(tt.color, tt.shade); got != "" {
				t.Errorf("expected empty string, got %q", got)
			}
		})
	}
}

func TestGetColorDiffersAcrossShades(t *testing.T) {
	if GetColor("green", 50) == GetColor("green", 900) {
		t.Error("green-50 and green-900 should differ")
	}
}

func TestTailwindRampsAreComplete(t *testing.T) {
	ramps := Tailwind.Ramps()
	if len(ramps) != 22 {
		t.Fatalf("expected 22 ramps, got %d", len(ramps))
	}
	if ramps[0] != "slate" || ramps[len(ramps)-1] != "rose" {
		t.Errorf("unexpected ramp order: first %s, last %s", ramps[0], ramps[len(ramps)-1])
	}
	for _, name := range ramps {
		for _, shade := range Shades {
			if _, ok := Tailwind.Lookup(name, shade); !ok {
				t.Errorf("%s-%d missing", name, shade)
			}
		}
	}
}

func TestSingleEntries(t *testing.T) {
	if v, ok := Tailwind.Single("white"); !ok || v != "#fff" {
		t.Errorf("expected white to be #fff, got %q (%v)", v, ok)
	}
	for _, name := range Tailwind.Ramps() {
		if _, ok := Tailwind.Single(name); ok {
			t.Errorf("%s should not be a single entry", name)
		}
	}
}

func TestNilPaletteLookup(t *testing.T) {
	var p *Palette
	if _, ok := p.Lookup("red", 500); ok {
		t.Error("nil palette should miss")
	}
	if p.Ramps() != nil {
		t.Error("nil palette should have no ramps")
	}
}
