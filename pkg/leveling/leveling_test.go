package leveling

import "testing"

func TestCompute(t *testing.T) {
	cases := []struct {
		xp     int64
		level  int64
		into   int64
		toNext int64
	}{
		{0, 0, 0, 50},
		{49, 0, 49, 50},
		{50, 1, 0, 100},
		{124, 1, 74, 100},
		{149, 1, 99, 100},
		{150, 2, 0, 150},
		{-10, 0, 0, 50},
	}
	for _, tc := range cases {
		got := Compute(tc.xp)
		if got.Level != tc.level || got.XpIntoLevel != tc.into || got.XpToNextLevel != tc.toNext {
			t.Fatalf("Compute(%d) = %+v, want level=%d into=%d toNext=%d",
				tc.xp, got, tc.level, tc.into, tc.toNext)
		}
	}
}

func TestComputeMonotonic(t *testing.T) {
	var prev int64
	for xp := int64(0); xp <= 5000; xp++ {
		level := Compute(xp).Level
		if level < prev {
			t.Fatalf("level dropped from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}
