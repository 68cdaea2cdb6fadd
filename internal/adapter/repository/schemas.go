package repository

import "github.com/eslsoft/lingua/pkg/filterexpr"

var listKnowledgeSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"unit_type": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpIN: "UnitTypes"},
		},
		"state": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "State",
				filterexpr.OpIN: "States",
			},
		},
		"wrong_count": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "WrongMin",
				filterexpr.OpLTE: "WrongMax",
			},
		},
		"total_attempts": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "AttemptsMin",
				filterexpr.OpLTE: "AttemptsMax",
			},
		},
		"stability_score": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "StabilityMin",
				filterexpr.OpLTE: "StabilityMax",
			},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultKey:  "updated_at",
		DefaultDesc: true,
		TiebreakKey: "id",
		Keys: map[string]struct{}{
			"updated_at":      {},
			"last_attempt_at": {},
			"wrong_count":     {},
			"total_attempts":  {},
			"stability_score":       {},
			"id":              {},
		},
	},
}
