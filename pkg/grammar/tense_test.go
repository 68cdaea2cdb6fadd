package grammar

import "testing"

func newTestValidator() *Validator {
	return NewValidator(NewVerbs())
}

func TestValidateSpecExamples(t *testing.T) {
	v := newTestValidator()

	cases := []struct {
		tense Tense
		form  string
		want  bool
	}{
		{TensePastSimple, "went", true},
		{TensePastSimple, "walked", true},
		{TensePastSimple, "walk", false},
		{TenseFuturePerfectSimple, "will have gone", true},
		{TensePresentContinuous, "is sleeping", true},
		{TensePresentContinuous, "sleeping", false},
	}
	for _, tc := range cases {
		if got := v.Validate(tc.tense, tc.form); got != tc.want {
			t.Fatalf("Validate(%s, %q) = %v, want %v", tc.tense, tc.form, got, tc.want)
		}
	}
}

func TestValidateShapes(t *testing.T) {
	v := newTestValidator()

	cases := []struct {
		tense Tense
		form  string
		want  bool
	}{
		{TensePresentSimple, "walk", true},
		{TensePresentSimple, "walk fast", false},
		{TensePresentContinuous, "am going", true},
		{TensePresentContinuous, "is go", false},
		{TensePresentPerfectSimple, "has eaten", true},
		{TensePresentPerfectSimple, "have walked", true},
		{TensePresentPerfectSimple, "has eat", false},
		{TensePresentPerfectContinuous, "have been running", true},
		{TensePresentPerfectContinuous, "have running", false},
		{TensePastSimple, "was", true},
		{TensePastSimple, "learnt", true},
		{TensePastContinuous, "were swimming", true},
		{TensePastContinuous, "was swum", false},
		{TensePastPerfectSimple, "had broken", true},
		{TensePastPerfectSimple, "has broken", false},
		{TensePastPerfectContinuous, "had been working", true},
		{TenseFutureSimple, "will go", true},
		{TenseFutureSimple, "go", false},
		{TenseFutureContinuous, "will be staying", true},
		{TenseFuturePerfectSimple, "will have finished", true},
		{TenseFuturePerfectSimple, "will has gone", false},
		{TenseFuturePerfectContinuous, "will have been living", true},
		{TenseFuturePerfectContinuous, "will have living", false},
	}
	for _, tc := range cases {
		if got := v.Validate(tc.tense, tc.form); got != tc.want {
			t.Fatalf("Validate(%s, %q) = %v, want %v", tc.tense, tc.form, got, tc.want)
		}
	}
}

func TestValidateAuxiliaryAlternatives(t *testing.T) {
	v := newTestValidator()

	cases := []struct {
		tense Tense
		form  string
		want  bool
	}{
		{TensePresentContinuous, "am sleeping", true},
		{TensePresentContinuous, "is sleeping", true},
		{TensePresentContinuous, "are sleeping", true},
		{TensePresentContinuous, "be sleeping", false},
		{TensePastContinuous, "was sleeping", true},
		{TensePastContinuous, "were sleeping", true},
		{TensePastContinuous, "is sleeping", false},
		{TensePresentPerfectContinuous, "has been running", true},
		{TensePresentPerfectContinuous, "had been running", false},
	}
	for _, tc := range cases {
		if got := v.Validate(tc.tense, tc.form); got != tc.want {
			t.Fatalf("Validate(%s, %q) = %v, want %v", tc.tense, tc.form, got, tc.want)
		}
	}
}

func TestValidateUnknownTense(t *testing.T) {
	v := newTestValidator()
	if v.Validate(Tense("conditional-zero"), "went") {
		t.Fatal("unknown tense must validate to false")
	}
	if v.Validate(TensePastSimple, "") {
		t.Fatal("empty form must validate to false")
	}
}

func TestParseTense(t *testing.T) {
	if got, ok := ParseTense(" Past-Simple "); !ok || got != TensePastSimple {
		t.Fatalf("ParseTense = %q, %v", got, ok)
	}
	if _, ok := ParseTense("past"); ok {
		t.Fatal("partial identifier must not parse")
	}
}

func TestVerbsVariants(t *testing.T) {
	verbs := NewVerbs()

	forms, ok := verbs.Lookup("learn")
	if !ok {
		t.Fatal("learn missing from table")
	}
	if len(forms.Past) != 2 {
		t.Fatalf("learn past variants = %v", forms.Past)
	}
	if !verbs.IsPast("learnt") || !verbs.IsPast("learned") {
		t.Fatal("slash variants must both resolve as past forms")
	}
	if !verbs.IsPast("was") || !verbs.IsPast("were") {
		t.Fatal("be past variants must both resolve")
	}
	if !verbs.IsParticiple("gotten") || !verbs.IsParticiple("got") {
		t.Fatal("get participle variants must both resolve")
	}
	if verbs.IsParticiple("went") {
		t.Fatal("went is a past form, not a participle")
	}
}
