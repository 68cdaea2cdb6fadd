package grammar

import "strings"

// Tense identifies one of the known grammatical constructions.
type Tense string

const (
	TensePresentSimple            Tense = "present-simple"
	TensePresentContinuous        Tense = "present-continuous"
	TensePresentPerfectSimple     Tense = "present-perfect-simple"
	TensePresentPerfectContinuous Tense = "present-perfect-continuous"
	TensePastSimple               Tense = "past-simple"
	TensePastContinuous           Tense = "past-continuous"
	TensePastPerfectSimple        Tense = "past-perfect-simple"
	TensePastPerfectContinuous    Tense = "past-perfect-continuous"
	TenseFutureSimple             Tense = "future-simple"
	TenseFutureContinuous         Tense = "future-continuous"
	TenseFuturePerfectSimple      Tense = "future-perfect-simple"
	TenseFuturePerfectContinuous  Tense = "future-perfect-continuous"
)

// ParseTense converts an arbitrary string to a known tense identifier.
func ParseTense(raw string) (Tense, bool) {
	t := Tense(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case TensePresentSimple, TensePresentContinuous,
		TensePresentPerfectSimple, TensePresentPerfectContinuous,
		TensePastSimple, TensePastContinuous,
		TensePastPerfectSimple, TensePastPerfectContinuous,
		TenseFutureSimple, TenseFutureContinuous,
		TenseFuturePerfectSimple, TenseFuturePerfectContinuous:
		return t, true
	default:
		return "", false
	}
}

// Validator checks whether a candidate verb-form string matches a tense's
// structural pattern. Past-form slots consult the irregular table before the
// regular "-ed" fallback.
type Validator struct {
	verbs *Verbs
}

// NewValidator wires the validator with an irregular-verb lookup.
func NewValidator(verbs *Verbs) *Validator {
	return &Validator{verbs: verbs}
}

// Validate reports whether the form's shape matches the tense. It never
// errors: an unknown tense or a non-matching shape is simply false.
func (v *Validator) Validate(tense Tense, form string) bool {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(form)))
	if len(words) == 0 {
		return false
	}

	switch tense {
	case TensePresentSimple:
		return len(words) == 1 && isWord(words[0])
	case TensePresentContinuous:
		return len(words) == 2 && oneOf(words[0], "am", "is", "are") && isIngForm(words[1])
	case TensePresentPerfectSimple:
		return len(words) == 2 && oneOf(words[0], "have", "has") && v.isParticipleForm(words[1])
	case TensePresentPerfectContinuous:
		return len(words) == 3 && oneOf(words[0], "have", "has") && words[1] == "been" && isIngForm(words[2])
	case TensePastSimple:
		return len(words) == 1 && v.isPastForm(words[0])
	case TensePastContinuous:
		return len(words) == 2 && oneOf(words[0], "was", "were") && isIngForm(words[1])
	case TensePastPerfectSimple:
		return len(words) == 2 && words[0] == "had" && v.isParticipleForm(words[1])
	case TensePastPerfectContinuous:
		return len(words) == 3 && words[0] == "had" && words[1] == "been" && isIngForm(words[2])
	case TenseFutureSimple:
		return len(words) == 2 && words[0] == "will" && isWord(words[1])
	case TenseFutureContinuous:
		return len(words) == 3 && words[0] == "will" && words[1] == "be" && isIngForm(words[2])
	case TenseFuturePerfectSimple:
		return len(words) == 3 && words[0] == "will" && words[1] == "have" && v.isParticipleForm(words[2])
	case TenseFuturePerfectContinuous:
		return len(words) == 4 && words[0] == "will" && words[1] == "have" && words[2] == "been" && isIngForm(words[3])
	default:
		return false
	}
}

func (v *Validator) isPastForm(word string) bool {
	if v.verbs.IsPast(word) {
		return true
	}
	return hasEdSuffix(word)
}

func (v *Validator) isParticipleForm(word string) bool {
	if v.verbs.IsParticiple(word) {
		return true
	}
	return hasEdSuffix(word)
}

func hasEdSuffix(word string) bool {
	return len(word) > 3 && strings.HasSuffix(word, "ed") && isWord(word)
}

func isIngForm(word string) bool {
	return len(word) > 4 && strings.HasSuffix(word, "ing") && isWord(word)
}

func oneOf(word string, options ...string) bool {
	for _, opt := range options {
		if word == opt {
			return true
		}
	}
	return false
}

func isWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if (r < 'a' || r > 'z') && r != '\'' && r != '-' {
			return false
		}
	}
	return true
}
