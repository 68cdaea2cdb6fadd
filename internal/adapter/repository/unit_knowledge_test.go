package repository

import (
	"reflect"
	"testing"

	"github.com/eslsoft/lingua/internal/repository"
	"github.com/eslsoft/lingua/pkg/filterexpr"
)

func TestListKnowledgeSchemaBindsStabilityScore(t *testing.T) {
	query := &repository.ListKnowledgeQuery{}
	query.Filter = "stability_score >= 2"
	query.OrderBy = "stability_score desc"

	var params listKnowledgeParams
	if err := filterexpr.Bind(query, &params, listKnowledgeSchema); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if params.StabilityMin == nil || *params.StabilityMin != 2 {
		t.Fatalf("StabilityMin = %v, want 2", params.StabilityMin)
	}
	if params.OrderKey != "stability_score" || !params.OrderDesc {
		t.Fatalf("order = %s desc=%v, want stability_score desc", params.OrderKey, params.OrderDesc)
	}
}

func TestNormalizeFilterValues(t *testing.T) {
	got := normalizeFilterValues([]string{" Sense ", "IRREGULAR", "sense", "", "  "})
	want := []string{"sense", "irregular"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeFilterValues = %v, want %v", got, want)
	}

	if got := normalizeFilterValues(nil); len(got) != 0 {
		t.Fatalf("normalizeFilterValues(nil) = %v, want empty", got)
	}
}
