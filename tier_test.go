package idle

import (
	"testing"
)

func TestTier_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			sym  string
			want Tier
		}{
			{"", 0},
			{"a", 1},
			{"b", 2},
			{"c", 3},
			{"z", 26},
			{"A", 27},
			{"Z", 52},
		}
		for _, tt := range tests {
			got, err := ParseTier(tt.sym)
			if err != nil {
				t.Errorf("ParseTier(%q) failed: %v", tt.sym, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseTier(%q) = %v, want %v", tt.sym, uint64(got), uint64(tt.want))
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"aa", "1", "?", " ", "é", "symbolUndefined",
		}
		for _, tt := range tests {
			_, err := ParseTier(tt)
			if err == nil {
				t.Errorf("ParseTier(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseTier(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseTier(\"?\") did not panic")
			}
		}()
		MustParseTier("?")
	})
}

func TestTier_Symbol(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for tier := Tier(0); tier < NumTiers; tier++ {
			sym, ok := tier.Symbol()
			if !ok {
				t.Errorf("Tier(%v).Symbol() failed", uint64(tier))
				continue
			}
			if tier > 0 && len(sym) != 1 {
				t.Errorf("Tier(%v).Symbol() = %q, want a single character", uint64(tier), sym)
			}
			got, err := ParseTier(sym)
			if err != nil {
				t.Errorf("ParseTier(%q) failed: %v", sym, err)
				continue
			}
			if got != tier {
				t.Errorf("ParseTier(%q) = %v, want %v", sym, uint64(got), uint64(tier))
			}
		}
	})

	t.Run("undefined", func(t *testing.T) {
		tests := []Tier{NumTiers, NumTiers + 1, 1000, MaxTier}
		for _, tier := range tests {
			sym, ok := tier.Symbol()
			if ok {
				t.Errorf("Tier(%v).Symbol() = %q, want failure", uint64(tier), sym)
			}
			if tier.IsDefined() {
				t.Errorf("Tier(%v).IsDefined() = true, want false", uint64(tier))
			}
		}
	})
}

func TestTier_String(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{0, ""},
		{1, "a"},
		{26, "z"},
		{27, "A"},
		{52, "Z"},
		{53, "symbolUndefined"},
		{MaxTier, "symbolUndefined"},
	}
	for _, tt := range tests {
		got := tt.tier.String()
		if got != tt.want {
			t.Errorf("Tier(%v).String() = %q, want %q", uint64(tt.tier), got, tt.want)
		}
	}
}

func TestTier_add(t *testing.T) {
	tests := []struct {
		t, u   Tier
		want   Tier
		wantOk bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{MaxTier, 0, MaxTier, true},
		{MaxTier - 1, 1, MaxTier, true},
		{MaxTier, 1, MaxTier, false},
		{MaxTier, MaxTier, MaxTier, false},
	}
	for _, tt := range tests {
		got, ok := tt.t.add(tt.u)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("Tier(%v).add(%v) = %v, %v, want %v, %v", uint64(tt.t), uint64(tt.u), uint64(got), ok, uint64(tt.want), tt.wantOk)
		}
	}
}
