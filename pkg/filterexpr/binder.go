// Package filterexpr binds AIP-160 style filter and order_by strings to typed
// query parameter structs. Filters are parsed with cel-go and restricted to a
// conjunction of whitelisted field comparisons, so callers can map them onto
// SQL predicates without evaluating arbitrary expressions.
package filterexpr

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Msg is any request carrying raw filter and order_by inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// ValueKind describes the literal type a filter field accepts.
type ValueKind string

const (
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
)

// Op is a supported comparison operator.
type Op string

const (
	OpEQ  Op = "=="
	OpGTE Op = ">="
	OpLTE Op = "<="
	OpIN  Op = "in"
)

// FilterField whitelists a filter field: its literal kind and, per allowed
// operator, the params struct field the literal lands in.
type FilterField struct {
	Kind ValueKind
	Ops  map[Op]string
}

// OrderSchema whitelists order keys and fixes the defaults applied when the
// request leaves order_by empty.
type OrderSchema struct {
	DefaultKey  string
	DefaultDesc bool
	TiebreakKey string
	Keys        map[string]struct{}
}

// ResourceSchema aggregates the filter and order rules for one listable
// resource.
type ResourceSchema struct {
	Filter map[string]FilterField
	Order  OrderSchema
}

// Bind parses msg's filter and order_by and populates the params struct.
// Errors are user errors: an unknown field, a disallowed operator, or a
// literal of the wrong kind.
func Bind[M Msg, P any](msg M, params *P, schema ResourceSchema) error {
	if params == nil {
		return errors.New("params must not be nil")
	}

	if err := bindFilter(params, msg.GetFilter(), schema.Filter); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	ord, err := parseOrderBy(msg.GetOrderBy(), schema.Order)
	if err != nil {
		return fmt.Errorf("order_by: %w", err)
	}
	return setOrderParams(params, ord)
}

func bindFilter(params any, filter string, fields map[string]FilterField) error {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil
	}
	if len(fields) == 0 {
		return errors.New("no filterable fields")
	}

	env, err := buildEnv(fields)
	if err != nil {
		return err
	}

	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return err
	}
	conjuncts, err := extractConjuncts(parsed.GetExpr())
	if err != nil {
		return err
	}

	dest := reflect.ValueOf(params).Elem()
	if dest.Kind() != reflect.Struct {
		return errors.New("params must point to a struct")
	}

	for _, expr := range conjuncts {
		pred, err := parsePredicate(expr)
		if err != nil {
			return err
		}

		rule, ok := fields[pred.field]
		if !ok {
			return fmt.Errorf("field %q is not filterable", pred.field)
		}
		target, ok := rule.Ops[pred.op]
		if !ok {
			return fmt.Errorf("operator %q is not allowed for field %q", string(pred.op), pred.field)
		}
		if err := checkLiteral(rule.Kind, pred.op, pred.value); err != nil {
			return fmt.Errorf("field %q: %w", pred.field, err)
		}

		field := dest.FieldByName(target)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("params struct %s has no settable field %q", dest.Type(), target)
		}
		if err := assign(field, pred.value); err != nil {
			return fmt.Errorf("field %q: %w", pred.field, err)
		}
	}
	return nil
}

type predicate struct {
	field string
	op    Op
	value any
}

func buildEnv(fields map[string]FilterField) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(fields)+1)
	for name, rule := range fields {
		switch rule.Kind {
		case KindString:
			opts = append(opts, cel.Variable(name, cel.StringType))
		case KindNumber:
			opts = append(opts, cel.Variable(name, cel.DoubleType))
		default:
			return nil, fmt.Errorf("field %q: unsupported kind %s", name, rule.Kind)
		}
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))
	return cel.NewEnv(opts...)
}

// extractConjuncts flattens nested AND chains into a flat predicate list.
// Any other logical operator is rejected.
func extractConjuncts(expr *exprpb.Expr) ([]*exprpb.Expr, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		return []*exprpb.Expr{expr}, nil
	}
	switch call.Function {
	case "_&&_":
		if len(call.Args) < 2 || call.Target != nil {
			return nil, errors.New("malformed AND expression")
		}
		var result []*exprpb.Expr
		for _, arg := range call.Args {
			sub, err := extractConjuncts(arg)
			if err != nil {
				return nil, err
			}
			result = append(result, sub...)
		}
		return result, nil
	case "_||_", "_?_:_", "!_":
		return nil, fmt.Errorf("operator %q is not supported; only AND is allowed", call.Function)
	default:
		return []*exprpb.Expr{expr}, nil
	}
}

func parsePredicate(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return predicate{}, errors.New("expected a comparison expression")
	}
	switch call.Function {
	case "_==_":
		return parseBinary(call, OpEQ)
	case "_>=_":
		return parseBinary(call, OpGTE)
	case "_<=_":
		return parseBinary(call, OpLTE)
	case "_in_", "@in":
		return parseIn(call)
	default:
		return predicate{}, fmt.Errorf("function %q is not supported", call.Function)
	}
}

func parseBinary(call *exprpb.Expr_Call, op Op) (predicate, error) {
	if call.Target != nil || len(call.Args) != 2 {
		return predicate{}, fmt.Errorf("operator %q expects two operands", string(op))
	}
	field, err := parseIdent(call.Args[0])
	if err != nil {
		return predicate{}, err
	}
	value, err := parseLiteral(call.Args[1])
	if err != nil {
		return predicate{}, err
	}
	return predicate{field: field, op: op, value: value}, nil
}

func parseIn(call *exprpb.Expr_Call) (predicate, error) {
	if call.Target != nil || len(call.Args) != 2 {
		return predicate{}, errors.New("in operator expects two operands")
	}
	field, err := parseIdent(call.Args[0])
	if err != nil {
		return predicate{}, err
	}
	value, err := parseLiteral(call.Args[1])
	if err != nil {
		return predicate{}, err
	}
	return predicate{field: field, op: OpIN, value: value}, nil
}

func parseIdent(expr *exprpb.Expr) (string, error) {
	ident := expr.GetIdentExpr()
	if ident == nil {
		return "", errors.New("left-hand side must be a field name")
	}
	return ident.GetName(), nil
}

func parseLiteral(expr *exprpb.Expr) (any, error) {
	if constant := expr.GetConstExpr(); constant != nil {
		switch constant.ConstantKind.(type) {
		case *exprpb.Constant_StringValue:
			return constant.GetStringValue(), nil
		case *exprpb.Constant_Int64Value:
			return float64(constant.GetInt64Value()), nil
		case *exprpb.Constant_Uint64Value:
			return float64(constant.GetUint64Value()), nil
		case *exprpb.Constant_DoubleValue:
			return constant.GetDoubleValue(), nil
		default:
			return nil, fmt.Errorf("literal type %T is not supported", constant.ConstantKind)
		}
	}

	if list := expr.GetListExpr(); list != nil {
		elements := list.GetElements()
		values := make([]string, len(elements))
		for i, elem := range elements {
			val, err := parseLiteral(elem)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			str, ok := val.(string)
			if !ok {
				return nil, errors.New("list elements must be strings")
			}
			values[i] = str
		}
		return values, nil
	}

	return nil, errors.New("right-hand side must be a literal or list literal")
}

func checkLiteral(kind ValueKind, op Op, value any) error {
	if op == OpIN {
		list, ok := value.([]string)
		if !ok || kind != KindString {
			return errors.New("in expects a list of string literals")
		}
		if len(list) == 0 {
			return errors.New("list literal must not be empty")
		}
		return nil
	}

	switch kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return errors.New("expected string literal")
		}
	case KindNumber:
		if _, ok := value.(float64); !ok {
			return errors.New("expected number literal")
		}
	default:
		return fmt.Errorf("unsupported field kind %s", kind)
	}
	return nil
}

func assign(field reflect.Value, value any) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), value)
	}

	switch v := value.(type) {
	case string:
		if field.Kind() != reflect.String {
			return fmt.Errorf("expected string destination, got %s", field.Kind())
		}
		field.SetString(v)
	case []string:
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("expected string slice destination, got %s", field.Type())
		}
		clone := make([]string, len(v))
		copy(clone, v)
		field.Set(reflect.ValueOf(clone).Convert(field.Type()))
	case float64:
		return assignNumeric(field, v)
	default:
		return fmt.Errorf("unsupported literal type %T", value)
	}
	return nil
}

func assignNumeric(field reflect.Value, value float64) error {
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		field.SetFloat(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if math.Trunc(value) != value {
			return fmt.Errorf("cannot assign non-integer %v to integer field", value)
		}
		if field.OverflowInt(int64(value)) {
			return fmt.Errorf("value %v overflows integer field", value)
		}
		field.SetInt(int64(value))
		return nil
	default:
		return fmt.Errorf("numeric assignment requires integer or float field, got %s", field.Kind())
	}
}
