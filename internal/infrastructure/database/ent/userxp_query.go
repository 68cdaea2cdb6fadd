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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
)

// UserXpQuery is the builder for querying UserXp entities.
type UserXpQuery struct {
	config
	ctx        *QueryContext
	order      []userxp.OrderOption
	inters     []Interceptor
	predicates []predicate.UserXp
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UserXpQuery builder.
func (uxq *UserXpQuery) Where(ps ...predicate.UserXp) *UserXpQuery {
	uxq.predicates = append(uxq.predicates, ps...)
	return uxq
}

// Limit the number of records to be returned by this query.
func (uxq *UserXpQuery) Limit(limit int) *UserXpQuery {
	uxq.ctx.Limit = &limit
	return uxq
}

// Offset to start from.
func (uxq *UserXpQuery) Offset(offset int) *UserXpQuery {
	uxq.ctx.Offset = &offset
	return uxq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (uxq *UserXpQuery) Unique(unique bool) *UserXpQuery {
	uxq.ctx.Unique = &unique
	return uxq
}

// Order specifies how the records should be ordered.
func (uxq *UserXpQuery) Order(o ...userxp.OrderOption) *UserXpQuery {
	uxq.order = append(uxq.order, o...)
	return uxq
}

// First returns the first UserXp entity from the query.
// Returns a *NotFoundError when no UserXp was found.
func (uxq *UserXpQuery) First(ctx context.Context) (*UserXp, error) {
	nodes, err := uxq.Limit(1).All(setContextOp(ctx, uxq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{userxp.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (uxq *UserXpQuery) FirstX(ctx context.Context) *UserXp {
	node, err := uxq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UserXp ID from the query.
// Returns a *NotFoundError when no UserXp ID was found.
func (uxq *UserXpQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = uxq.Limit(1).IDs(setContextOp(ctx, uxq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{userxp.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (uxq *UserXpQuery) FirstIDX(ctx context.Context) int {
	id, err := uxq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UserXp entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UserXp entity is found.
// Returns a *NotFoundError when no UserXp entities are found.
func (uxq *UserXpQuery) Only(ctx context.Context) (*UserXp, error) {
	nodes, err := uxq.Limit(2).All(setContextOp(ctx, uxq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{userxp.Label}
	default:
		return nil, &NotSingularError{userxp.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (uxq *UserXpQuery) OnlyX(ctx context.Context) *UserXp {
	node, err := uxq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UserXp ID in the query.
// Returns a *NotSingularError when more than one UserXp ID is found.
// Returns a *NotFoundError when no entities are found.
func (uxq *UserXpQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = uxq.Limit(2).IDs(setContextOp(ctx, uxq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{userxp.Label}
	default:
		err = &NotSingularError{userxp.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (uxq *UserXpQuery) OnlyIDX(ctx context.Context) int {
	id, err := uxq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UserXps.
func (uxq *UserXpQuery) All(ctx context.Context) ([]*UserXp, error) {
	ctx = setContextOp(ctx, uxq.ctx, ent.OpQueryAll)
	if err := uxq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UserXp, *UserXpQuery]()
	return withInterceptors[[]*UserXp](ctx, uxq, qr, uxq.inters)
}

// AllX is like All, but panics if an error occurs.
func (uxq *UserXpQuery) AllX(ctx context.Context) []*UserXp {
	nodes, err := uxq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UserXp IDs.
func (uxq *UserXpQuery) IDs(ctx context.Context) (ids []int, err error) {
	if uxq.ctx.Unique == nil && uxq.path != nil {
		uxq.Unique(true)
	}
	ctx = setContextOp(ctx, uxq.ctx, ent.OpQueryIDs)
	if err = uxq.Select(userxp.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (uxq *UserXpQuery) IDsX(ctx context.Context) []int {
	ids, err := uxq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (uxq *UserXpQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, uxq.ctx, ent.OpQueryCount)
	if err := uxq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, uxq, querierCount[*UserXpQuery](), uxq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (uxq *UserXpQuery) CountX(ctx context.Context) int {
	count, err := uxq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (uxq *UserXpQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, uxq.ctx, ent.OpQueryExist)
	switch _, err := uxq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (uxq *UserXpQuery) ExistX(ctx context.Context) bool {
	exist, err := uxq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UserXpQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (uxq *UserXpQuery) Clone() *UserXpQuery {
	if uxq == nil {
		return nil
	}
	return &UserXpQuery{
		config:     uxq.config,
		ctx:        uxq.ctx.Clone(),
		order:      append([]userxp.OrderOption{}, uxq.order...),
		inters:     append([]Interceptor{}, uxq.inters...),
		predicates: append([]predicate.UserXp{}, uxq.predicates...),
		// clone intermediate query.
		sql:  uxq.sql.Clone(),
		path: uxq.path,
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
//	client.UserXp.Query().
//		GroupBy(userxp.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (uxq *UserXpQuery) GroupBy(field string, fields ...string) *UserXpGroupBy {
	uxq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UserXpGroupBy{build: uxq}
	grbuild.flds = &uxq.ctx.Fields
	grbuild.label = userxp.Label
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
//	client.UserXp.Query().
//		Select(userxp.FieldUserID).
//		Scan(ctx, &v)
func (uxq *UserXpQuery) Select(fields ...string) *UserXpSelect {
	uxq.ctx.Fields = append(uxq.ctx.Fields, fields...)
	sbuild := &UserXpSelect{UserXpQuery: uxq}
	sbuild.label = userxp.Label
	sbuild.flds, sbuild.scan = &uxq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UserXpSelect configured with the given aggregations.
func (uxq *UserXpQuery) Aggregate(fns ...AggregateFunc) *UserXpSelect {
	return uxq.Select().Aggregate(fns...)
}

func (uxq *UserXpQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range uxq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, uxq); err != nil {
				return err
			}
		}
	}
	for _, f := range uxq.ctx.Fields {
		if !userxp.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if uxq.path != nil {
		prev, err := uxq.path(ctx)
		if err != nil {
			return err
		}
		uxq.sql = prev
	}
	return nil
}

func (uxq *UserXpQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UserXp, error) {
	var (
		nodes = []*UserXp{}
		_spec = uxq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UserXp).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UserXp{config: uxq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, uxq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (uxq *UserXpQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := uxq.querySpec()
	_spec.Node.Columns = uxq.ctx.Fields
	if len(uxq.ctx.Fields) > 0 {
		_spec.Unique = uxq.ctx.Unique != nil && *uxq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, uxq.driver, _spec)
}

func (uxq *UserXpQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(userxp.Table, userxp.Columns, sqlgraph.NewFieldSpec(userxp.FieldID, field.TypeInt))
	_spec.From = uxq.sql
	if unique := uxq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if uxq.path != nil {
		_spec.Unique = true
	}
	if fields := uxq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userxp.FieldID)
		for i := range fields {
			if fields[i] != userxp.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := uxq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := uxq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := uxq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := uxq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (uxq *UserXpQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(uxq.driver.Dialect())
	t1 := builder.Table(userxp.Table)
	columns := uxq.ctx.Fields
	if len(columns) == 0 {
		columns = userxp.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if uxq.sql != nil {
		selector = uxq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if uxq.ctx.Unique != nil && *uxq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range uxq.predicates {
		p(selector)
	}
	for _, p := range uxq.order {
		p(selector)
	}
	if offset := uxq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := uxq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UserXpGroupBy is the group-by builder for UserXp entities.
type UserXpGroupBy struct {
	selector
	build *UserXpQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (uxgb *UserXpGroupBy) Aggregate(fns ...AggregateFunc) *UserXpGroupBy {
	uxgb.fns = append(uxgb.fns, fns...)
	return uxgb
}

// Scan applies the selector query and scans the result into the given value.
func (uxgb *UserXpGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uxgb.build.ctx, ent.OpQueryGroupBy)
	if err := uxgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserXpQuery, *UserXpGroupBy](ctx, uxgb.build, uxgb, uxgb.build.inters, v)
}

func (uxgb *UserXpGroupBy) sqlScan(ctx context.Context, root *UserXpQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(uxgb.fns))
	for _, fn := range uxgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*uxgb.flds)+len(uxgb.fns))
		for _, f := range *uxgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*uxgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uxgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UserXpSelect is the builder for selecting fields of UserXp entities.
type UserXpSelect struct {
	*UserXpQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (uxs *UserXpSelect) Aggregate(fns ...AggregateFunc) *UserXpSelect {
	uxs.fns = append(uxs.fns, fns...)
	return uxs
}

// Scan applies the selector query and scans the result into the given value.
func (uxs *UserXpSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uxs.ctx, ent.OpQuerySelect)
	if err := uxs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserXpQuery, *UserXpSelect](ctx, uxs.UserXpQuery, uxs, uxs.inters, v)
}

func (uxs *UserXpSelect) sqlScan(ctx context.Context, root *UserXpQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(uxs.fns))
	for _, fn := range uxs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*uxs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uxs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
