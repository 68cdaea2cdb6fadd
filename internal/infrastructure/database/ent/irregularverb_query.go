// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
)

// IrregularVerbQuery is the builder for querying IrregularVerb entities.
type IrregularVerbQuery struct {
	config
	ctx        *QueryContext
	order      []irregularverb.OrderOption
	inters     []Interceptor
	predicates []predicate.IrregularVerb
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the IrregularVerbQuery builder.
func (ivq *IrregularVerbQuery) Where(ps ...predicate.IrregularVerb) *IrregularVerbQuery {
	ivq.predicates = append(ivq.predicates, ps...)
	return ivq
}

// Limit the number of records to be returned by this query.
func (ivq *IrregularVerbQuery) Limit(limit int) *IrregularVerbQuery {
	ivq.ctx.Limit = &limit
	return ivq
}

// Offset to start from.
func (ivq *IrregularVerbQuery) Offset(offset int) *IrregularVerbQuery {
	ivq.ctx.Offset = &offset
	return ivq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ivq *IrregularVerbQuery) Unique(unique bool) *IrregularVerbQuery {
	ivq.ctx.Unique = &unique
	return ivq
}

// Order specifies how the records should be ordered.
func (ivq *IrregularVerbQuery) Order(o ...irregularverb.OrderOption) *IrregularVerbQuery {
	ivq.order = append(ivq.order, o...)
	return ivq
}

// First returns the first IrregularVerb entity from the query.
// Returns a *NotFoundError when no IrregularVerb was found.
func (ivq *IrregularVerbQuery) First(ctx context.Context) (*IrregularVerb, error) {
	nodes, err := ivq.Limit(1).All(setContextOp(ctx, ivq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{irregularverb.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ivq *IrregularVerbQuery) FirstX(ctx context.Context) *IrregularVerb {
	node, err := ivq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first IrregularVerb ID from the query.
// Returns a *NotFoundError when no IrregularVerb ID was found.
func (ivq *IrregularVerbQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ivq.Limit(1).IDs(setContextOp(ctx, ivq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{irregularverb.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ivq *IrregularVerbQuery) FirstIDX(ctx context.Context) int {
	id, err := ivq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single IrregularVerb entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one IrregularVerb entity is found.
// Returns a *NotFoundError when no IrregularVerb entities are found.
func (ivq *IrregularVerbQuery) Only(ctx context.Context) (*IrregularVerb, error) {
	nodes, err := ivq.Limit(2).All(setContextOp(ctx, ivq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{irregularverb.Label}
	default:
		return nil, &NotSingularError{irregularverb.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ivq *IrregularVerbQuery) OnlyX(ctx context.Context) *IrregularVerb {
	node, err := ivq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only IrregularVerb ID in the query.
// Returns a *NotSingularError when more than one IrregularVerb ID is found.
// Returns a *NotFoundError when no entities are found.
func (ivq *IrregularVerbQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ivq.Limit(2).IDs(setContextOp(ctx, ivq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{irregularverb.Label}
	default:
		err = &NotSingularError{irregularverb.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ivq *IrregularVerbQuery) OnlyIDX(ctx context.Context) int {
	id, err := ivq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of IrregularVerbs.
func (ivq *IrregularVerbQuery) All(ctx context.Context) ([]*IrregularVerb, error) {
	ctx = setContextOp(ctx, ivq.ctx, ent.OpQueryAll)
	if err := ivq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*IrregularVerb, *IrregularVerbQuery]()
	return withInterceptors[[]*IrregularVerb](ctx, ivq, qr, ivq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ivq *IrregularVerbQuery) AllX(ctx context.Context) []*IrregularVerb {
	nodes, err := ivq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of IrregularVerb IDs.
func (ivq *IrregularVerbQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ivq.ctx.Unique == nil && ivq.path != nil {
		ivq.Unique(true)
	}
	ctx = setContextOp(ctx, ivq.ctx, ent.OpQueryIDs)
	if err = ivq.Select(irregularverb.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ivq *IrregularVerbQuery) IDsX(ctx context.Context) []int {
	ids, err := ivq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ivq *IrregularVerbQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ivq.ctx, ent.OpQueryCount)
	if err := ivq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ivq, querierCount[*IrregularVerbQuery](), ivq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ivq *IrregularVerbQuery) CountX(ctx context.Context) int {
	count, err := ivq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ivq *IrregularVerbQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ivq.ctx, ent.OpQueryExist)
	switch _, err := ivq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ivq *IrregularVerbQuery) ExistX(ctx context.Context) bool {
	exist, err := ivq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the IrregularVerbQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ivq *IrregularVerbQuery) Clone() *IrregularVerbQuery {
	if ivq == nil {
		return nil
	}
	return &IrregularVerbQuery{
		config:     ivq.config,
		ctx:        ivq.ctx.Clone(),
		order:      append([]irregularverb.OrderOption{}, ivq.order...),
		inters:     append([]Interceptor{}, ivq.inters...),
		predicates: append([]predicate.IrregularVerb{}, ivq.predicates...),
		// clone intermediate query.
		sql:  ivq.sql.Clone(),
		path: ivq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Base string `json:"base,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.IrregularVerb.Query().
//		GroupBy(irregularverb.FieldBase).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ivq *IrregularVerbQuery) GroupBy(field string, fields ...string) *IrregularVerbGroupBy {
	ivq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &IrregularVerbGroupBy{build: ivq}
	grbuild.flds = &ivq.ctx.Fields
	grbuild.label = irregularverb.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Base string `json:"base,omitempty"`
//	}
//
//	client.IrregularVerb.Query().
//		Select(irregularverb.FieldBase).
//		Scan(ctx, &v)
func (ivq *IrregularVerbQuery) Select(fields ...string) *IrregularVerbSelect {
	ivq.ctx.Fields = append(ivq.ctx.Fields, fields...)
	sbuild := &IrregularVerbSelect{IrregularVerbQuery: ivq}
	sbuild.label = irregularverb.Label
	sbuild.flds, sbuild.scan = &ivq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a IrregularVerbSelect configured with the given aggregations.
func (ivq *IrregularVerbQuery) Aggregate(fns ...AggregateFunc) *IrregularVerbSelect {
	return ivq.Select().Aggregate(fns...)
}

func (ivq *IrregularVerbQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ivq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ivq); err != nil {
				return err
			}
		}
	}
	for _, f := range ivq.ctx.Fields {
		if !irregularverb.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ivq.path != nil {
		prev, err := ivq.path(ctx)
		if err != nil {
			return err
		}
		ivq.sql = prev
	}
	return nil
}

func (ivq *IrregularVerbQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*IrregularVerb, error) {
	var (
		nodes = []*IrregularVerb{}
		_spec = ivq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*IrregularVerb).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &IrregularVerb{config: ivq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ivq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ivq *IrregularVerbQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ivq.querySpec()
	_spec.Node.Columns = ivq.ctx.Fields
	if len(ivq.ctx.Fields) > 0 {
		_spec.Unique = ivq.ctx.Unique != nil && *ivq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ivq.driver, _spec)
}

func (ivq *IrregularVerbQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(irregularverb.Table, irregularverb.Columns, sqlgraph.NewFieldSpec(irregularverb.FieldID, field.TypeInt))
	_spec.From = ivq.sql
	if unique := ivq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ivq.path != nil {
		_spec.Unique = true
	}
	if fields := ivq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, irregularverb.FieldID)
		for i := range fields {
			if fields[i] != irregularverb.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ivq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ivq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ivq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ivq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ivq *IrregularVerbQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ivq.driver.Dialect())
	t1 := builder.Table(irregularverb.Table)
	columns := ivq.ctx.Fields
	if len(columns) == 0 {
		columns = irregularverb.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ivq.sql != nil {
		selector = ivq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ivq.ctx.Unique != nil && *ivq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ivq.predicates {
		p(selector)
	}
	for _, p := range ivq.order {
		p(selector)
	}
	if offset := ivq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ivq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// IrregularVerbGroupBy is the group-by builder for IrregularVerb entities.
type IrregularVerbGroupBy struct {
	selector
	build *IrregularVerbQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ivgb *IrregularVerbGroupBy) Aggregate(fns ...AggregateFunc) *IrregularVerbGroupBy {
	ivgb.fns = append(ivgb.fns, fns...)
	return ivgb
}

// Scan applies the selector query and scans the result into the given value.
func (ivgb *IrregularVerbGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ivgb.build.ctx, ent.OpQueryGroupBy)
	if err := ivgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IrregularVerbQuery, *IrregularVerbGroupBy](ctx, ivgb.build, ivgb, ivgb.build.inters, v)
}

func (ivgb *IrregularVerbGroupBy) sqlScan(ctx context.Context, root *IrregularVerbQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ivgb.fns))
	for _, fn := range ivgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ivgb.flds)+len(ivgb.fns))
		for _, f := range *ivgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ivgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ivgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// IrregularVerbSelect is the builder for selecting fields of IrregularVerb entities.
type IrregularVerbSelect struct {
	*IrregularVerbQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ivs *IrregularVerbSelect) Aggregate(fns ...AggregateFunc) *IrregularVerbSelect {
	ivs.fns = append(ivs.fns, fns...)
	return ivs
}

// Scan applies the selector query and scans the result into the given value.
func (ivs *IrregularVerbSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ivs.ctx, ent.OpQuerySelect)
	if err := ivs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IrregularVerbQuery, *IrregularVerbSelect](ctx, ivs.IrregularVerbQuery, ivs, ivs.inters, v)
}

func (ivs *IrregularVerbSelect) sqlScan(ctx context.Context, root *IrregularVerbQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ivs.fns))
	for _, fn := range ivs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ivs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ivs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
