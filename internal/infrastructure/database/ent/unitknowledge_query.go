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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
)

// UnitKnowledgeQuery is the builder for querying UnitKnowledge entities.
type UnitKnowledgeQuery struct {
	config
	ctx        *QueryContext
	order      []unitknowledge.OrderOption
	inters     []Interceptor
	predicates []predicate.UnitKnowledge
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UnitKnowledgeQuery builder.
func (ukq *UnitKnowledgeQuery) Where(ps ...predicate.UnitKnowledge) *UnitKnowledgeQuery {
	ukq.predicates = append(ukq.predicates, ps...)
	return ukq
}

// Limit the number of records to be returned by this query.
func (ukq *UnitKnowledgeQuery) Limit(limit int) *UnitKnowledgeQuery {
	ukq.ctx.Limit = &limit
	return ukq
}

// Offset to start from.
func (ukq *UnitKnowledgeQuery) Offset(offset int) *UnitKnowledgeQuery {
	ukq.ctx.Offset = &offset
	return ukq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ukq *UnitKnowledgeQuery) Unique(unique bool) *UnitKnowledgeQuery {
	ukq.ctx.Unique = &unique
	return ukq
}

// Order specifies how the records should be ordered.
func (ukq *UnitKnowledgeQuery) Order(o ...unitknowledge.OrderOption) *UnitKnowledgeQuery {
	ukq.order = append(ukq.order, o...)
	return ukq
}

// First returns the first UnitKnowledge entity from the query.
// Returns a *NotFoundError when no UnitKnowledge was found.
func (ukq *UnitKnowledgeQuery) First(ctx context.Context) (*UnitKnowledge, error) {
	nodes, err := ukq.Limit(1).All(setContextOp(ctx, ukq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{unitknowledge.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ukq *UnitKnowledgeQuery) FirstX(ctx context.Context) *UnitKnowledge {
	node, err := ukq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UnitKnowledge ID from the query.
// Returns a *NotFoundError when no UnitKnowledge ID was found.
func (ukq *UnitKnowledgeQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ukq.Limit(1).IDs(setContextOp(ctx, ukq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{unitknowledge.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ukq *UnitKnowledgeQuery) FirstIDX(ctx context.Context) int {
	id, err := ukq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UnitKnowledge entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UnitKnowledge entity is found.
// Returns a *NotFoundError when no UnitKnowledge entities are found.
func (ukq *UnitKnowledgeQuery) Only(ctx context.Context) (*UnitKnowledge, error) {
	nodes, err := ukq.Limit(2).All(setContextOp(ctx, ukq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{unitknowledge.Label}
	default:
		return nil, &NotSingularError{unitknowledge.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ukq *UnitKnowledgeQuery) OnlyX(ctx context.Context) *UnitKnowledge {
	node, err := ukq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UnitKnowledge ID in the query.
// Returns a *NotSingularError when more than one UnitKnowledge ID is found.
// Returns a *NotFoundError when no entities are found.
func (ukq *UnitKnowledgeQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ukq.Limit(2).IDs(setContextOp(ctx, ukq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{unitknowledge.Label}
	default:
		err = &NotSingularError{unitknowledge.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ukq *UnitKnowledgeQuery) OnlyIDX(ctx context.Context) int {
	id, err := ukq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UnitKnowledges.
func (ukq *UnitKnowledgeQuery) All(ctx context.Context) ([]*UnitKnowledge, error) {
	ctx = setContextOp(ctx, ukq.ctx, ent.OpQueryAll)
	if err := ukq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UnitKnowledge, *UnitKnowledgeQuery]()
	return withInterceptors[[]*UnitKnowledge](ctx, ukq, qr, ukq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ukq *UnitKnowledgeQuery) AllX(ctx context.Context) []*UnitKnowledge {
	nodes, err := ukq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UnitKnowledge IDs.
func (ukq *UnitKnowledgeQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ukq.ctx.Unique == nil && ukq.path != nil {
		ukq.Unique(true)
	}
	ctx = setContextOp(ctx, ukq.ctx, ent.OpQueryIDs)
	if err = ukq.Select(unitknowledge.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ukq *UnitKnowledgeQuery) IDsX(ctx context.Context) []int {
	ids, err := ukq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ukq *UnitKnowledgeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ukq.ctx, ent.OpQueryCount)
	if err := ukq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ukq, querierCount[*UnitKnowledgeQuery](), ukq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ukq *UnitKnowledgeQuery) CountX(ctx context.Context) int {
	count, err := ukq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ukq *UnitKnowledgeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ukq.ctx, ent.OpQueryExist)
	switch _, err := ukq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ukq *UnitKnowledgeQuery) ExistX(ctx context.Context) bool {
	exist, err := ukq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UnitKnowledgeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ukq *UnitKnowledgeQuery) Clone() *UnitKnowledgeQuery {
	if ukq == nil {
		return nil
	}
	return &UnitKnowledgeQuery{
		config:     ukq.config,
		ctx:        ukq.ctx.Clone(),
		order:      append([]unitknowledge.OrderOption{}, ukq.order...),
		inters:     append([]Interceptor{}, ukq.inters...),
		predicates: append([]predicate.UnitKnowledge{}, ukq.predicates...),
		// clone intermediate query.
		sql:  ukq.sql.Clone(),
		path: ukq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID int64 `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UnitKnowledge.Query().
//		GroupBy(unitknowledge.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ukq *UnitKnowledgeQuery) GroupBy(field string, fields ...string) *UnitKnowledgeGroupBy {
	ukq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UnitKnowledgeGroupBy{build: ukq}
	grbuild.flds = &ukq.ctx.Fields
	grbuild.label = unitknowledge.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID int64 `json:"user_id,omitempty"`
//	}
//
//	client.UnitKnowledge.Query().
//		Select(unitknowledge.FieldUserID).
//		Scan(ctx, &v)
func (ukq *UnitKnowledgeQuery) Select(fields ...string) *UnitKnowledgeSelect {
	ukq.ctx.Fields = append(ukq.ctx.Fields, fields...)
	sbuild := &UnitKnowledgeSelect{UnitKnowledgeQuery: ukq}
	sbuild.label = unitknowledge.Label
	sbuild.flds, sbuild.scan = &ukq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UnitKnowledgeSelect configured with the given aggregations.
func (ukq *UnitKnowledgeQuery) Aggregate(fns ...AggregateFunc) *UnitKnowledgeSelect {
	return ukq.Select().Aggregate(fns...)
}

func (ukq *UnitKnowledgeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ukq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ukq); err != nil {
				return err
			}
		}
	}
	for _, f := range ukq.ctx.Fields {
		if !unitknowledge.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ukq.path != nil {
		prev, err := ukq.path(ctx)
		if err != nil {
			return err
		}
		ukq.sql = prev
	}
	return nil
}

func (ukq *UnitKnowledgeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UnitKnowledge, error) {
	var (
		nodes = []*UnitKnowledge{}
		_spec = ukq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UnitKnowledge).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UnitKnowledge{config: ukq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ukq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ukq *UnitKnowledgeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ukq.querySpec()
	_spec.Node.Columns = ukq.ctx.Fields
	if len(ukq.ctx.Fields) > 0 {
		_spec.Unique = ukq.ctx.Unique != nil && *ukq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ukq.driver, _spec)
}

func (ukq *UnitKnowledgeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(unitknowledge.Table, unitknowledge.Columns, sqlgraph.NewFieldSpec(unitknowledge.FieldID, field.TypeInt))
	_spec.From = ukq.sql
	if unique := ukq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ukq.path != nil {
		_spec.Unique = true
	}
	if fields := ukq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unitknowledge.FieldID)
		for i := range fields {
			if fields[i] != unitknowledge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ukq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ukq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ukq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ukq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ukq *UnitKnowledgeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ukq.driver.Dialect())
	t1 := builder.Table(unitknowledge.Table)
	columns := ukq.ctx.Fields
	if len(columns) == 0 {
		columns = unitknowledge.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ukq.sql != nil {
		selector = ukq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ukq.ctx.Unique != nil && *ukq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ukq.predicates {
		p(selector)
	}
	for _, p := range ukq.order {
		p(selector)
	}
	if offset := ukq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ukq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UnitKnowledgeGroupBy is the group-by builder for UnitKnowledge entities.
type UnitKnowledgeGroupBy struct {
	selector
	build *UnitKnowledgeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ukgb *UnitKnowledgeGroupBy) Aggregate(fns ...AggregateFunc) *UnitKnowledgeGroupBy {
	ukgb.fns = append(ukgb.fns, fns...)
	return ukgb
}

// Scan applies the selector query and scans the result into the given value.
func (ukgb *UnitKnowledgeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ukgb.build.ctx, ent.OpQueryGroupBy)
	if err := ukgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UnitKnowledgeQuery, *UnitKnowledgeGroupBy](ctx, ukgb.build, ukgb, ukgb.build.inters, v)
}

func (ukgb *UnitKnowledgeGroupBy) sqlScan(ctx context.Context, root *UnitKnowledgeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ukgb.fns))
	for _, fn := range ukgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ukgb.flds)+len(ukgb.fns))
		for _, f := range *ukgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ukgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ukgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UnitKnowledgeSelect is the builder for selecting fields of UnitKnowledge entities.
type UnitKnowledgeSelect struct {
	*UnitKnowledgeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (uks *UnitKnowledgeSelect) Aggregate(fns ...AggregateFunc) *UnitKnowledgeSelect {
	uks.fns = append(uks.fns, fns...)
	return uks
}

// Scan applies the selector query and scans the result into the given value.
func (uks *UnitKnowledgeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uks.ctx, ent.OpQuerySelect)
	if err := uks.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UnitKnowledgeQuery, *UnitKnowledgeSelect](ctx, uks.UnitKnowledgeQuery, uks, uks.inters, v)
}

func (uks *UnitKnowledgeSelect) sqlScan(ctx context.Context, root *UnitKnowledgeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(uks.fns))
	for _, fn := range uks.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*uks.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uks.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
