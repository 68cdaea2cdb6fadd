package entity

import "strings"

// UnitType identifies the kind of learning unit a knowledge record tracks.
type UnitType string

const (
	UnitTypeUnspecified UnitType = ""
	UnitTypeSense       UnitType = "sense"
	UnitTypeCluster     UnitType = "cluster"
	UnitTypeIrregular   UnitType = "irregular"
)

// ParseUnitType converts an arbitrary string into a supported UnitType value.
func ParseUnitType(raw string) UnitType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sense":
		return UnitTypeSense
	case "cluster":
		return UnitTypeCluster
	case "irregular":
		return UnitTypeIrregular
	default:
		return UnitTypeUnspecified
	}
}

// Valid reports whether the unit type is one of the known values.
func (t UnitType) Valid() bool {
	switch t {
	case UnitTypeSense, UnitTypeCluster, UnitTypeIrregular:
		return true
	default:
		return false
	}
}

// ExerciseKind classifies the practice surface an answer came from.
type ExerciseKind string

const (
	ExerciseKindUnspecified ExerciseKind = ""
	ExerciseKindPack        ExerciseKind = "pack"
	ExerciseKindCluster     ExerciseKind = "cluster"
	ExerciseKindIrregular   ExerciseKind = "irregular"
)

// ParseExerciseKind converts an arbitrary string into a supported ExerciseKind value.
func ParseExerciseKind(raw string) ExerciseKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pack":
		return ExerciseKindPack
	case "cluster":
		return ExerciseKindCluster
	case "irregular":
		return ExerciseKindIrregular
	default:
		return ExerciseKindUnspecified
	}
}

// Valid reports whether the exercise kind is one of the known values.
func (k ExerciseKind) Valid() bool {
	switch k {
	case ExerciseKindPack, ExerciseKindCluster, ExerciseKindIrregular:
		return true
	default:
		return false
	}
}

// KnowledgeState is the four-value mastery label derived from a unit's answer history.
type KnowledgeState string

const (
	KnowledgeStateNew       KnowledgeState = "new"
	KnowledgeStateUnstable  KnowledgeState = "unstable"
	KnowledgeStateImproving KnowledgeState = "improving"
	KnowledgeStateMastered  KnowledgeState = "mastered"
)

// ParseKnowledgeState converts an arbitrary string into a KnowledgeState value.
// Unknown input maps to KnowledgeStateNew.
func ParseKnowledgeState(raw string) KnowledgeState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "unstable":
		return KnowledgeStateUnstable
	case "improving":
		return KnowledgeStateImproving
	case "mastered":
		return KnowledgeStateMastered
	default:
		return KnowledgeStateNew
	}
}
