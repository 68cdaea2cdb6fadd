// Package leveling maps cumulative experience points onto levels. The curve
// is linear in the requirement: finishing level L costs (L+1)*50 xp.
package leveling

// Progress describes where a learner sits on the curve.
type Progress struct {
	Level         int64
	XpIntoLevel   int64
	XpToNextLevel int64
}

// Requirement returns the xp needed to complete the given level.
func Requirement(level int64) int64 {
	return (level + 1) * 50
}

// Compute walks the curve from level 0, consuming complete thresholds.
// It is total for any xpTotal; negative input is treated as zero.
func Compute(xpTotal int64) Progress {
	if xpTotal < 0 {
		xpTotal = 0
	}

	var level int64
	remaining := xpTotal
	for remaining >= Requirement(level) {
		remaining -= Requirement(level)
		level++
	}

	return Progress{
		Level:         level,
		XpIntoLevel:   remaining,
		XpToNextLevel: Requirement(level),
	}
}
