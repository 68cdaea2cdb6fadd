package filterexpr

import (
	"reflect"
	"strings"
	"testing"
)

type testMsg struct {
	filter  string
	orderBy string
}

func (m testMsg) GetFilter() string  { return m.filter }
func (m testMsg) GetOrderBy() string { return m.orderBy }

type listParams struct {
	UnitTypes     []string
	States        []string
	State         *string
	StabilityMin  *int32
	StabilityMax  *int32
	OrderKey      string
	OrderDesc     bool
	OrderTiebreak string
}

var listSchema = ResourceSchema{
	Filter: map[string]FilterField{
		"unit_type": {
			Kind: KindString,
			Ops:  map[Op]string{OpIN: "UnitTypes"},
		},
		"state": {
			Kind: KindString,
			Ops: map[Op]string{
				OpEQ: "State",
				OpIN: "States",
			},
		},
		"stability": {
			Kind: KindNumber,
			Ops: map[Op]string{
				OpGTE: "StabilityMin",
				OpLTE: "StabilityMax",
			},
		},
	},
	Order: OrderSchema{
		DefaultKey:  "updated_at",
		DefaultDesc: true,
		TiebreakKey: "id",
		Keys: map[string]struct{}{
			"updated_at": {},
			"stability":  {},
			"id":         {},
		},
	},
}

func TestBind_Conjunction(t *testing.T) {
	var params listParams
	msg := testMsg{filter: "state == 'unstable' && stability >= -5 && stability <= 3"}

	if err := Bind(msg, &params, listSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}

	if params.State == nil || *params.State != "unstable" {
		t.Fatalf("expected State 'unstable', got %v", params.State)
	}
	if params.StabilityMin == nil || *params.StabilityMin != -5 {
		t.Fatalf("expected StabilityMin -5, got %v", params.StabilityMin)
	}
	if params.StabilityMax == nil || *params.StabilityMax != 3 {
		t.Fatalf("expected StabilityMax 3, got %v", params.StabilityMax)
	}
	if params.UnitTypes != nil {
		t.Fatalf("expected UnitTypes to stay nil, got %v", params.UnitTypes)
	}
}

func TestBind_InOperator(t *testing.T) {
	var params listParams
	msg := testMsg{filter: "unit_type in ['sense', 'irregular'] && state in ['unstable']"}

	if err := Bind(msg, &params, listSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}

	if want := []string{"sense", "irregular"}; !reflect.DeepEqual(params.UnitTypes, want) {
		t.Fatalf("expected UnitTypes %v, got %v", want, params.UnitTypes)
	}
	if want := []string{"unstable"}; !reflect.DeepEqual(params.States, want) {
		t.Fatalf("expected States %v, got %v", want, params.States)
	}
}

func TestBind_EmptyFilterKeepsZeroParams(t *testing.T) {
	var params listParams
	if err := Bind(testMsg{}, &params, listSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.State != nil || params.StabilityMin != nil {
		t.Fatalf("expected zero filter params, got %+v", params)
	}
}

func TestBind_OrderDefaults(t *testing.T) {
	var params listParams
	if err := Bind(testMsg{}, &params, listSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.OrderKey != "updated_at" || !params.OrderDesc || params.OrderTiebreak != "id" {
		t.Fatalf("unexpected order defaults: %+v", params)
	}
}

func TestBind_OrderExplicit(t *testing.T) {
	var params listParams
	if err := Bind(testMsg{orderBy: "stability desc"}, &params, listSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.OrderKey != "stability" || !params.OrderDesc {
		t.Fatalf("unexpected order: %+v", params)
	}

	params = listParams{}
	if err := Bind(testMsg{orderBy: "stability"}, &params, listSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.OrderKey != "stability" || params.OrderDesc {
		t.Fatalf("bare key should sort ascending: %+v", params)
	}
}

func TestBind_Errors(t *testing.T) {
	tests := []struct {
		name string
		msg  testMsg
		want string
	}{
		{"unknown field", testMsg{filter: "word == 'go'"}, "not filterable"},
		{"disallowed operator", testMsg{filter: "state >= 'a'"}, "operator"},
		{"wrong literal kind", testMsg{filter: "state == 1"}, "expected string"},
		{"or rejected", testMsg{filter: "state == 'a' || stability >= 1"}, "only AND"},
		{"non literal rhs", testMsg{filter: "stability <= other"}, "right-hand side"},
		{"empty list", testMsg{filter: "state in []"}, "must not be empty"},
		{"non string list", testMsg{filter: "unit_type in [1, 2]"}, "must be strings"},
		{"unknown order key", testMsg{orderBy: "word"}, "cannot be used for ordering"},
		{"bad direction", testMsg{orderBy: "stability down"}, "invalid direction"},
		{"too many keys", testMsg{orderBy: "stability desc, id"}, "invalid order_by"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var params listParams
			err := Bind(tc.msg, &params, listSchema)
			if err == nil {
				t.Fatalf("expected error for %+v", tc.msg)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error to contain %q, got %v", tc.want, err)
			}
		})
	}
}

func TestBind_NonIntegerNumberRejected(t *testing.T) {
	var params listParams
	err := Bind(testMsg{filter: "stability >= 1.5"}, &params, listSchema)
	if err == nil || !strings.Contains(err.Error(), "non-integer") {
		t.Fatalf("expected non-integer error, got %v", err)
	}
}
