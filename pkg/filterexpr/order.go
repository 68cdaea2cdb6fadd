package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type orderParams struct {
	Key      string
	Desc     bool
	Tiebreak string
}

// parseOrderBy accepts "key" or "key desc" (direction case-insensitive, "asc"
// allowed) against the schema whitelist. An empty input yields the schema
// defaults. The tiebreak key always applies after the chosen key so paging is
// stable.
func parseOrderBy(raw string, schema OrderSchema) (orderParams, error) {
	if schema.DefaultKey == "" || schema.TiebreakKey == "" {
		return orderParams{}, errors.New("order schema requires default and tiebreak keys")
	}
	if _, ok := schema.Keys[schema.DefaultKey]; !ok {
		return orderParams{}, fmt.Errorf("default order key %q missing from schema", schema.DefaultKey)
	}

	ord := orderParams{
		Key:      schema.DefaultKey,
		Desc:     schema.DefaultDesc,
		Tiebreak: schema.TiebreakKey,
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ord, nil
	}

	parts := strings.Fields(raw)
	switch len(parts) {
	case 1:
		ord.Desc = false
	case 2:
		switch strings.ToLower(parts[1]) {
		case "asc":
			ord.Desc = false
		case "desc":
			ord.Desc = true
		default:
			return orderParams{}, fmt.Errorf("invalid direction %q", parts[1])
		}
	default:
		return orderParams{}, fmt.Errorf("invalid order_by %q; expected \"key\" or \"key desc\"", raw)
	}

	key := parts[0]
	if _, ok := schema.Keys[key]; !ok {
		return orderParams{}, fmt.Errorf("field %q cannot be used for ordering", key)
	}
	ord.Key = key
	return ord, nil
}

func setOrderParams(params any, ord orderParams) error {
	target := reflect.ValueOf(params).Elem()
	if target.Kind() != reflect.Struct {
		return errors.New("params must point to a struct")
	}

	for name, value := range map[string]reflect.Value{
		"OrderKey":      reflect.ValueOf(ord.Key),
		"OrderDesc":     reflect.ValueOf(ord.Desc),
		"OrderTiebreak": reflect.ValueOf(ord.Tiebreak),
	} {
		field := target.FieldByName(name)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("params struct %s has no settable field %q", target.Type(), name)
		}
		if !value.Type().AssignableTo(field.Type()) {
			return fmt.Errorf("field %q must be %s, got %s", name, value.Type(), field.Type())
		}
		field.Set(value)
	}
	return nil
}
