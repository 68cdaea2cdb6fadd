package entity

// VocabPack is a curated set of vocabulary senses around a theme.
type VocabPack struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	Language    string
	Flagship    bool
}

// VocabCluster groups senses that are practiced together (e.g. one word family).
type VocabCluster struct {
	ID    int64
	Slug  string
	Name  string
	Topic string
}

// VocabSense is the smallest vocabulary unit a learner can get right or wrong.
type VocabSense struct {
	ID          int64
	Word        string
	Translation string
	PackSlug    string
	ClusterSlug string
}

// IrregularVerb is one drillable verb. Past and participle forms may hold
// slash-separated variants ("learnt/learned").
type IrregularVerb struct {
	ID          int64
	Base        string
	Past        string
	Participle  string
	Translation string
}
