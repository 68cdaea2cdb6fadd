package entity

// SuggestionKind tags what a suggestion points at.
type SuggestionKind string

const (
	SuggestionKindPack      SuggestionKind = "pack"
	SuggestionKindCluster   SuggestionKind = "cluster"
	SuggestionKindIrregular SuggestionKind = "irregular"
	SuggestionKindBrowse    SuggestionKind = "browse"
)

// Suggestion is a navigable "practice this next" candidate.
type Suggestion struct {
	Kind        SuggestionKind
	Title       string
	Description string
	Href        string
}

// PracticeSuggestions groups the three independent weak-signal sources.
type PracticeSuggestions struct {
	IrregularVerbs []Suggestion
	Packs          []Suggestion
	Clusters       []Suggestion
}
