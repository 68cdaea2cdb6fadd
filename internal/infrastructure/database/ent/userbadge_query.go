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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
)

// UserBadgeQuery is the builder for querying UserBadge entities.
type UserBadgeQuery struct {
	config
	ctx        *QueryContext
	order      []userbadge.OrderOption
	inters     []Interceptor
	predicates []predicate.UserBadge
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UserBadgeQuery builder.
func (ubq *UserBadgeQuery) Where(ps ...predicate.UserBadge) *UserBadgeQuery {
	ubq.predicates = append(ubq.predicates, ps...)
	return ubq
}

// Limit the number of records to be returned by this query.
func (ubq *UserBadgeQuery) Limit(limit int) *UserBadgeQuery {
	ubq.ctx.Limit = &limit
	return ubq
}

// Offset to start from.
func (ubq *UserBadgeQuery) Offset(offset int) *UserBadgeQuery {
	ubq.ctx.Offset = &offset
	return ubq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ubq *UserBadgeQuery) Unique(unique bool) *UserBadgeQuery {
	ubq.ctx.Unique = &unique
	return ubq
}

// Order specifies how the records should be ordered.
func (ubq *UserBadgeQuery) Order(o ...userbadge.OrderOption) *UserBadgeQuery {
	ubq.order = append(ubq.order, o...)
	return ubq
}

// First returns the first UserBadge entity from the query.
// Returns a *NotFoundError when no UserBadge was found.
func (ubq *UserBadgeQuery) First(ctx context.Context) (*UserBadge, error) {
	nodes, err := ubq.Limit(1).All(setContextOp(ctx, ubq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{userbadge.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ubq *UserBadgeQuery) FirstX(ctx context.Context) *UserBadge {
	node, err := ubq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UserBadge ID from the query.
// Returns a *NotFoundError when no UserBadge ID was found.
func (ubq *UserBadgeQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ubq.Limit(1).IDs(setContextOp(ctx, ubq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{userbadge.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ubq *UserBadgeQuery) FirstIDX(ctx context.Context) int {
	id, err := ubq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UserBadge entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UserBadge entity is found.
// Returns a *NotFoundError when no UserBadge entities are found.
func (ubq *UserBadgeQuery) Only(ctx context.Context) (*UserBadge, error) {
	nodes, err := ubq.Limit(2).All(setContextOp(ctx, ubq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{userbadge.Label}
	default:
		return nil, &NotSingularError{userbadge.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ubq *UserBadgeQuery) OnlyX(ctx context.Context) *UserBadge {
	node, err := ubq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UserBadge ID in the query.
// Returns a *NotSingularError when more than one UserBadge ID is found.
// Returns a *NotFoundError when no entities are found.
func (ubq *UserBadgeQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ubq.Limit(2).IDs(setContextOp(ctx, ubq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{userbadge.Label}
	default:
		err = &NotSingularError{userbadge.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ubq *UserBadgeQuery) OnlyIDX(ctx context.Context) int {
	id, err := ubq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UserBadges.
func (ubq *UserBadgeQuery) All(ctx context.Context) ([]*UserBadge, error) {
	ctx = setContextOp(ctx, ubq.ctx, ent.OpQueryAll)
	if err := ubq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UserBadge, *UserBadgeQuery]()
	return withInterceptors[[]*UserBadge](ctx, ubq, qr, ubq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ubq *UserBadgeQuery) AllX(ctx context.Context) []*UserBadge {
	nodes, err := ubq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UserBadge IDs.
func (ubq *UserBadgeQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ubq.ctx.Unique == nil && ubq.path != nil {
		ubq.Unique(true)
	}
	ctx = setContextOp(ctx, ubq.ctx, ent.OpQueryIDs)
	if err = ubq.Select(userbadge.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ubq *UserBadgeQuery) IDsX(ctx context.Context) []int {
	ids, err := ubq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ubq *UserBadgeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ubq.ctx, ent.OpQueryCount)
	if err := ubq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ubq, querierCount[*UserBadgeQuery](), ubq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ubq *UserBadgeQuery) CountX(ctx context.Context) int {
	count, err := ubq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ubq *UserBadgeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ubq.ctx, ent.OpQueryExist)
	switch _, err := ubq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ubq *UserBadgeQuery) ExistX(ctx context.Context) bool {
	exist, err := ubq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UserBadgeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ubq *UserBadgeQuery) Clone() *UserBadgeQuery {
	if ubq == nil {
		return nil
	}
	return &UserBadgeQuery{
		config:     ubq.config,
		ctx:        ubq.ctx.Clone(),
		order:      append([]userbadge.OrderOption{}, ubq.order...),
		inters:     append([]Interceptor{}, ubq.inters...),
		predicates: append([]predicate.UserBadge{}, ubq.predicates...),
		// clone intermediate query.
		sql:  ubq.sql.Clone(),
		path: ubq.path,
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
//	client.UserBadge.Query().
//		GroupBy(userbadge.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ubq *UserBadgeQuery) GroupBy(field string, fields ...string) *UserBadgeGroupBy {
	ubq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UserBadgeGroupBy{build: ubq}
	grbuild.flds = &ubq.ctx.Fields
	grbuild.label = userbadge.Label
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
//	client.UserBadge.Query().
//		Select(userbadge.FieldUserID).
//		Scan(ctx, &v)
func (ubq *UserBadgeQuery) Select(fields ...string) *UserBadgeSelect {
	ubq.ctx.Fields = append(ubq.ctx.Fields, fields...)
	sbuild := &UserBadgeSelect{UserBadgeQuery: ubq}
	sbuild.label = userbadge.Label
	sbuild.flds, sbuild.scan = &ubq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UserBadgeSelect configured with the given aggregations.
func (ubq *UserBadgeQuery) Aggregate(fns ...AggregateFunc) *UserBadgeSelect {
	return ubq.Select().Aggregate(fns...)
}

func (ubq *UserBadgeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ubq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ubq); err != nil {
				return err
			}
		}
	}
	for _, f := range ubq.ctx.Fields {
		if !userbadge.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ubq.path != nil {
		prev, err := ubq.path(ctx)
		if err != nil {
			return err
		}
		ubq.sql = prev
	}
	return nil
}

func (ubq *UserBadgeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UserBadge, error) {
	var (
		nodes = []*UserBadge{}
		_spec = ubq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UserBadge).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UserBadge{config: ubq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ubq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ubq *UserBadgeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ubq.querySpec()
	_spec.Node.Columns = ubq.ctx.Fields
	if len(ubq.ctx.Fields) > 0 {
		_spec.Unique = ubq.ctx.Unique != nil && *ubq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ubq.driver, _spec)
}

func (ubq *UserBadgeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(userbadge.Table, userbadge.Columns, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeInt))
	_spec.From = ubq.sql
	if unique := ubq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ubq.path != nil {
		_spec.Unique = true
	}
	if fields := ubq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userbadge.FieldID)
		for i := range fields {
			if fields[i] != userbadge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ubq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ubq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ubq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ubq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ubq *UserBadgeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ubq.driver.Dialect())
	t1 := builder.Table(userbadge.Table)
	columns := ubq.ctx.Fields
	if len(columns) == 0 {
		columns = userbadge.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ubq.sql != nil {
		selector = ubq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ubq.ctx.Unique != nil && *ubq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ubq.predicates {
		p(selector)
	}
	for _, p := range ubq.order {
		p(selector)
	}
	if offset := ubq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ubq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UserBadgeGroupBy is the group-by builder for UserBadge entities.
type UserBadgeGroupBy struct {
	selector
	build *UserBadgeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ubgb *UserBadgeGroupBy) Aggregate(fns ...AggregateFunc) *UserBadgeGroupBy {
	ubgb.fns = append(ubgb.fns, fns...)
	return ubgb
}

// Scan applies the selector query and scans the result into the given value.
func (ubgb *UserBadgeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ubgb.build.ctx, ent.OpQueryGroupBy)
	if err := ubgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserBadgeQuery, *UserBadgeGroupBy](ctx, ubgb.build, ubgb, ubgb.build.inters, v)
}

func (ubgb *UserBadgeGroupBy) sqlScan(ctx context.Context, root *UserBadgeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ubgb.fns))
	for _, fn := range ubgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ubgb.flds)+len(ubgb.fns))
		for _, f := range *ubgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ubgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ubgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UserBadgeSelect is the builder for selecting fields of UserBadge entities.
type UserBadgeSelect struct {
	*UserBadgeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ubs *UserBadgeSelect) Aggregate(fns ...AggregateFunc) *UserBadgeSelect {
	ubs.fns = append(ubs.fns, fns...)
	return ubs
}

// Scan applies the selector query and scans the result into the given value.
func (ubs *UserBadgeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ubs.ctx, ent.OpQuerySelect)
	if err := ubs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserBadgeQuery, *UserBadgeSelect](ctx, ubs.UserBadgeQuery, ubs, ubs.inters, v)
}

func (ubs *UserBadgeSelect) sqlScan(ctx context.Context, root *UserBadgeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ubs.fns))
	for _, fn := range ubs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ubs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ubs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
