// Package grammar checks verb-form strings against the structural shape of
// English tenses. It is purely lexical: a form passes when it is built the
// way the tense is built, not when it is the right word for a sentence.
package grammar

import (
	"sort"
	"strings"
)

// verbTable lists base, past and past-participle forms. Variant spellings are
// slash-separated and all accepted.
var verbTable = [][3]string{
	{"be", "was/were", "been"},
	{"beat", "beat", "beaten"},
	{"become", "became", "become"},
	{"begin", "began", "begun"},
	{"bite", "bit", "bitten"},
	{"blow", "blew", "blown"},
	{"break", "broke", "broken"},
	{"bring", "brought", "brought"},
	{"build", "built", "built"},
	{"buy", "bought", "bought"},
	{"catch", "caught", "caught"},
	{"choose", "chose", "chosen"},
	{"come", "came", "come"},
	{"cost", "cost", "cost"},
	{"cut", "cut", "cut"},
	{"do", "did", "done"},
	{"draw", "drew", "drawn"},
	{"dream", "dreamt/dreamed", "dreamt/dreamed"},
	{"drink", "drank", "drunk"},
	{"drive", "drove", "driven"},
	{"eat", "ate", "eaten"},
	{"fall", "fell", "fallen"},
	{"feel", "felt", "felt"},
	{"fight", "fought", "fought"},
	{"find", "found", "found"},
	{"fly", "flew", "flown"},
	{"forget", "forgot", "forgotten"},
	{"forgive", "forgave", "forgiven"},
	{"freeze", "froze", "frozen"},
	{"get", "got", "got/gotten"},
	{"give", "gave", "given"},
	{"go", "went", "gone"},
	{"grow", "grew", "grown"},
	{"have", "had", "had"},
	{"hear", "heard", "heard"},
	{"hide", "hid", "hidden"},
	{"hit", "hit", "hit"},
	{"hold", "held", "held"},
	{"hurt", "hurt", "hurt"},
	{"keep", "kept", "kept"},
	{"know", "knew", "known"},
	{"learn", "learnt/learned", "learnt/learned"},
	{"leave", "left", "left"},
	{"lend", "lent", "lent"},
	{"let", "let", "let"},
	{"lie", "lay", "lain"},
	{"lose", "lost", "lost"},
	{"make", "made", "made"},
	{"mean", "meant", "meant"},
	{"meet", "met", "met"},
	{"pay", "paid", "paid"},
	{"put", "put", "put"},
	{"read", "read", "read"},
	{"ride", "rode", "ridden"},
	{"ring", "rang", "rung"},
	{"rise", "rose", "risen"},
	{"run", "ran", "run"},
	{"say", "said", "said"},
	{"see", "saw", "seen"},
	{"sell", "sold", "sold"},
	{"send", "sent", "sent"},
	{"set", "set", "set"},
	{"shake", "shook", "shaken"},
	{"shine", "shone", "shone"},
	{"shoot", "shot", "shot"},
	{"show", "showed", "shown"},
	{"shut", "shut", "shut"},
	{"sing", "sang", "sung"},
	{"sink", "sank", "sunk"},
	{"sit", "sat", "sat"},
	{"sleep", "slept", "slept"},
	{"speak", "spoke", "spoken"},
	{"spend", "spent", "spent"},
	{"stand", "stood", "stood"},
	{"steal", "stole", "stolen"},
	{"swim", "swam", "swum"},
	{"take", "took", "taken"},
	{"teach", "taught", "taught"},
	{"tear", "tore", "torn"},
	{"tell", "told", "told"},
	{"think", "thought", "thought"},
	{"throw", "threw", "thrown"},
	{"understand", "understood", "understood"},
	{"wake", "woke", "woken"},
	{"wear", "wore", "worn"},
	{"win", "won", "won"},
	{"write", "wrote", "written"},
}

// VerbForms holds one verb's forms, variants already split.
type VerbForms struct {
	Base        string
	Past        []string
	Participles []string
}

// Verbs is the irregular-verb lookup. Construct it once at startup and pass
// it to whatever needs it; there is no package-level instance.
type Verbs struct {
	byBase      map[string]VerbForms
	pasts       map[string]struct{}
	participles map[string]struct{}
}

// NewVerbs builds the lookup from the static table.
func NewVerbs() *Verbs {
	v := &Verbs{
		byBase:      make(map[string]VerbForms, len(verbTable)),
		pasts:       make(map[string]struct{}),
		participles: make(map[string]struct{}),
	}
	for _, row := range verbTable {
		forms := VerbForms{
			Base:        row[0],
			Past:        splitVariants(row[1]),
			Participles: splitVariants(row[2]),
		}
		v.byBase[forms.Base] = forms
		for _, p := range forms.Past {
			v.pasts[p] = struct{}{}
		}
		for _, p := range forms.Participles {
			v.participles[p] = struct{}{}
		}
	}
	return v
}

// Lookup returns the forms for a base verb.
func (v *Verbs) Lookup(base string) (VerbForms, bool) {
	forms, ok := v.byBase[strings.ToLower(strings.TrimSpace(base))]
	return forms, ok
}

// IsPast reports whether the word is the past form of any irregular verb.
func (v *Verbs) IsPast(word string) bool {
	_, ok := v.pasts[word]
	return ok
}

// IsParticiple reports whether the word is the past participle of any
// irregular verb.
func (v *Verbs) IsParticiple(word string) bool {
	_, ok := v.participles[word]
	return ok
}

// Len returns the number of verbs in the table.
func (v *Verbs) Len() int {
	return len(v.byBase)
}

// All returns every verb in base-form order.
func (v *Verbs) All() []VerbForms {
	bases := make([]string, 0, len(v.byBase))
	for base := range v.byBase {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	out := make([]VerbForms, 0, len(bases))
	for _, base := range bases {
		out = append(out, v.byBase[base])
	}
	return out
}

func splitVariants(raw string) []string {
	parts := strings.Split(raw, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
