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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
)

// XpEventQuery is the builder for querying XpEvent entities.
type XpEventQuery struct {
	config
	ctx        *QueryContext
	order      []xpevent.OrderOption
	inters     []Interceptor
	predicates []predicate.XpEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the XpEventQuery builder.
func (xeq *XpEventQuery) Where(ps ...predicate.XpEvent) *XpEventQuery {
	xeq.predicates = append(xeq.predicates, ps...)
	return xeq
}

// Limit the number of records to be returned by this query.
func (xeq *XpEventQuery) Limit(limit int) *XpEventQuery {
	xeq.ctx.Limit = &limit
	return xeq
}

// Offset to start from.
func (xeq *XpEventQuery) Offset(offset int) *XpEventQuery {
	xeq.ctx.Offset = &offset
	return xeq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (xeq *XpEventQuery) Unique(unique bool) *XpEventQuery {
	xeq.ctx.Unique = &unique
	return xeq
}

// Order specifies how the records should be ordered.
func (xeq *XpEventQuery) Order(o ...xpevent.OrderOption) *XpEventQuery {
	xeq.order = append(xeq.order, o...)
	return xeq
}

// First returns the first XpEvent entity from the query.
// Returns a *NotFoundError when no XpEvent was found.
func (xeq *XpEventQuery) First(ctx context.Context) (*XpEvent, error) {
	nodes, err := xeq.Limit(1).All(setContextOp(ctx, xeq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{xpevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (xeq *XpEventQuery) FirstX(ctx context.Context) *XpEvent {
	node, err := xeq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first XpEvent ID from the query.
// Returns a *NotFoundError when no XpEvent ID was found.
func (xeq *XpEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = xeq.Limit(1).IDs(setContextOp(ctx, xeq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{xpevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (xeq *XpEventQuery) FirstIDX(ctx context.Context) int {
	id, err := xeq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single XpEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one XpEvent entity is found.
// Returns a *NotFoundError when no XpEvent entities are found.
func (xeq *XpEventQuery) Only(ctx context.Context) (*XpEvent, error) {
	nodes, err := xeq.Limit(2).All(setContextOp(ctx, xeq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{xpevent.Label}
	default:
		return nil, &NotSingularError{xpevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (xeq *XpEventQuery) OnlyX(ctx context.Context) *XpEvent {
	node, err := xeq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only XpEvent ID in the query.
// Returns a *NotSingularError when more than one XpEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (xeq *XpEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = xeq.Limit(2).IDs(setContextOp(ctx, xeq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{xpevent.Label}
	default:
		err = &NotSingularError{xpevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (xeq *XpEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := xeq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of XpEvents.
func (xeq *XpEventQuery) All(ctx context.Context) ([]*XpEvent, error) {
	ctx = setContextOp(ctx, xeq.ctx, ent.OpQueryAll)
	if err := xeq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*XpEvent, *XpEventQuery]()
	return withInterceptors[[]*XpEvent](ctx, xeq, qr, xeq.inters)
}

// AllX is like All, but panics if an error occurs.
func (xeq *XpEventQuery) AllX(ctx context.Context) []*XpEvent {
	nodes, err := xeq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of XpEvent IDs.
func (xeq *XpEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if xeq.ctx.Unique == nil && xeq.path != nil {
		xeq.Unique(true)
	}
	ctx = setContextOp(ctx, xeq.ctx, ent.OpQueryIDs)
	if err = xeq.Select(xpevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (xeq *XpEventQuery) IDsX(ctx context.Context) []int {
	ids, err := xeq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (xeq *XpEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, xeq.ctx, ent.OpQueryCount)
	if err := xeq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, xeq, querierCount[*XpEventQuery](), xeq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (xeq *XpEventQuery) CountX(ctx context.Context) int {
	count, err := xeq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (xeq *XpEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, xeq.ctx, ent.OpQueryExist)
	switch _, err := xeq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (xeq *XpEventQuery) ExistX(ctx context.Context) bool {
	exist, err := xeq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the XpEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (xeq *XpEventQuery) Clone() *XpEventQuery {
	if xeq == nil {
		return nil
	}
	return &XpEventQuery{
		config:     xeq.config,
		ctx:        xeq.ctx.Clone(),
		order:      append([]xpevent.OrderOption{}, xeq.order...),
		inters:     append([]Interceptor{}, xeq.inters...),
		predicates: append([]predicate.XpEvent{}, xeq.predicates...),
		// clone intermediate query.
		sql:  xeq.sql.Clone(),
		path: xeq.path,
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
//	client.XpEvent.Query().
//		GroupBy(xpevent.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (xeq *XpEventQuery) GroupBy(field string, fields ...string) *XpEventGroupBy {
	xeq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &XpEventGroupBy{build: xeq}
	grbuild.flds = &xeq.ctx.Fields
	grbuild.label = xpevent.Label
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
//	client.XpEvent.Query().
//		Select(xpevent.FieldUserID).
//		Scan(ctx, &v)
func (xeq *XpEventQuery) Select(fields ...string) *XpEventSelect {
	xeq.ctx.Fields = append(xeq.ctx.Fields, fields...)
	sbuild := &XpEventSelect{XpEventQuery: xeq}
	sbuild.label = xpevent.Label
	sbuild.flds, sbuild.scan = &xeq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a XpEventSelect configured with the given aggregations.
func (xeq *XpEventQuery) Aggregate(fns ...AggregateFunc) *XpEventSelect {
	return xeq.Select().Aggregate(fns...)
}

func (xeq *XpEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range xeq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, xeq); err != nil {
				return err
			}
		}
	}
	for _, f := range xeq.ctx.Fields {
		if !xpevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if xeq.path != nil {
		prev, err := xeq.path(ctx)
		if err != nil {
			return err
		}
		xeq.sql = prev
	}
	return nil
}

func (xeq *XpEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*XpEvent, error) {
	var (
		nodes = []*XpEvent{}
		_spec = xeq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*XpEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &XpEvent{config: xeq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, xeq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (xeq *XpEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := xeq.querySpec()
	_spec.Node.Columns = xeq.ctx.Fields
	if len(xeq.ctx.Fields) > 0 {
		_spec.Unique = xeq.ctx.Unique != nil && *xeq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, xeq.driver, _spec)
}

func (xeq *XpEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(xpevent.Table, xpevent.Columns, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	_spec.From = xeq.sql
	if unique := xeq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if xeq.path != nil {
		_spec.Unique = true
	}
	if fields := xeq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, xpevent.FieldID)
		for i := range fields {
			if fields[i] != xpevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := xeq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := xeq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := xeq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := xeq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (xeq *XpEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(xeq.driver.Dialect())
	t1 := builder.Table(xpevent.Table)
	columns := xeq.ctx.Fields
	if len(columns) == 0 {
		columns = xpevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if xeq.sql != nil {
		selector = xeq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if xeq.ctx.Unique != nil && *xeq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range xeq.predicates {
		p(selector)
	}
	for _, p := range xeq.order {
		p(selector)
	}
	if offset := xeq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := xeq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// XpEventGroupBy is the group-by builder for XpEvent entities.
type XpEventGroupBy struct {
	selector
	build *XpEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (xegb *XpEventGroupBy) Aggregate(fns ...AggregateFunc) *XpEventGroupBy {
	xegb.fns = append(xegb.fns, fns...)
	return xegb
}

// Scan applies the selector query and scans the result into the given value.
func (xegb *XpEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, xegb.build.ctx, ent.OpQueryGroupBy)
	if err := xegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*XpEventQuery, *XpEventGroupBy](ctx, xegb.build, xegb, xegb.build.inters, v)
}

func (xegb *XpEventGroupBy) sqlScan(ctx context.Context, root *XpEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(xegb.fns))
	for _, fn := range xegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*xegb.flds)+len(xegb.fns))
		for _, f := range *xegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*xegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := xegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// XpEventSelect is the builder for selecting fields of XpEvent entities.
type XpEventSelect struct {
	*XpEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (xes *XpEventSelect) Aggregate(fns ...AggregateFunc) *XpEventSelect {
	xes.fns = append(xes.fns, fns...)
	return xes
}

// Scan applies the selector query and scans the result into the given value.
func (xes *XpEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, xes.ctx, ent.OpQuerySelect)
	if err := xes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*XpEventQuery, *XpEventSelect](ctx, xes.XpEventQuery, xes, xes.inters, v)
}

func (xes *XpEventSelect) sqlScan(ctx context.Context, root *XpEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(xes.fns))
	for _, fn := range xes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*xes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := xes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
