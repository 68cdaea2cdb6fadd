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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
)

// VocabPackQuery is the builder for querying VocabPack entities.
type VocabPackQuery struct {
	config
	ctx        *QueryContext
	order      []vocabpack.OrderOption
	inters     []Interceptor
	predicates []predicate.VocabPack
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VocabPackQuery builder.
func (vpq *VocabPackQuery) Where(ps ...predicate.VocabPack) *VocabPackQuery {
	vpq.predicates = append(vpq.predicates, ps...)
	return vpq
}

// Limit the number of records to be returned by this query.
func (vpq *VocabPackQuery) Limit(limit int) *VocabPackQuery {
	vpq.ctx.Limit = &limit
	return vpq
}

// Offset to start from.
func (vpq *VocabPackQuery) Offset(offset int) *VocabPackQuery {
	vpq.ctx.Offset = &offset
	return vpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (vpq *VocabPackQuery) Unique(unique bool) *VocabPackQuery {
	vpq.ctx.Unique = &unique
	return vpq
}

// Order specifies how the records should be ordered.
func (vpq *VocabPackQuery) Order(o ...vocabpack.OrderOption) *VocabPackQuery {
	vpq.order = append(vpq.order, o...)
	return vpq
}

// First returns the first VocabPack entity from the query.
// Returns a *NotFoundError when no VocabPack was found.
func (vpq *VocabPackQuery) First(ctx context.Context) (*VocabPack, error) {
	nodes, err := vpq.Limit(1).All(setContextOp(ctx, vpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{vocabpack.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (vpq *VocabPackQuery) FirstX(ctx context.Context) *VocabPack {
	node, err := vpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VocabPack ID from the query.
// Returns a *NotFoundError when no VocabPack ID was found.
func (vpq *VocabPackQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = vpq.Limit(1).IDs(setContextOp(ctx, vpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{vocabpack.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (vpq *VocabPackQuery) FirstIDX(ctx context.Context) int {
	id, err := vpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VocabPack entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VocabPack entity is found.
// Returns a *NotFoundError when no VocabPack entities are found.
func (vpq *VocabPackQuery) Only(ctx context.Context) (*VocabPack, error) {
	nodes, err := vpq.Limit(2).All(setContextOp(ctx, vpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{vocabpack.Label}
	default:
		return nil, &NotSingularError{vocabpack.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (vpq *VocabPackQuery) OnlyX(ctx context.Context) *VocabPack {
	node, err := vpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VocabPack ID in the query.
// Returns a *NotSingularError when more than one VocabPack ID is found.
// Returns a *NotFoundError when no entities are found.
func (vpq *VocabPackQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = vpq.Limit(2).IDs(setContextOp(ctx, vpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{vocabpack.Label}
	default:
		err = &NotSingularError{vocabpack.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (vpq *VocabPackQuery) OnlyIDX(ctx context.Context) int {
	id, err := vpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VocabPacks.
func (vpq *VocabPackQuery) All(ctx context.Context) ([]*VocabPack, error) {
	ctx = setContextOp(ctx, vpq.ctx, ent.OpQueryAll)
	if err := vpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VocabPack, *VocabPackQuery]()
	return withInterceptors[[]*VocabPack](ctx, vpq, qr, vpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (vpq *VocabPackQuery) AllX(ctx context.Context) []*VocabPack {
	nodes, err := vpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VocabPack IDs.
func (vpq *VocabPackQuery) IDs(ctx context.Context) (ids []int, err error) {
	if vpq.ctx.Unique == nil && vpq.path != nil {
		vpq.Unique(true)
	}
	ctx = setContextOp(ctx, vpq.ctx, ent.OpQueryIDs)
	if err = vpq.Select(vocabpack.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (vpq *VocabPackQuery) IDsX(ctx context.Context) []int {
	ids, err := vpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (vpq *VocabPackQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, vpq.ctx, ent.OpQueryCount)
	if err := vpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, vpq, querierCount[*VocabPackQuery](), vpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (vpq *VocabPackQuery) CountX(ctx context.Context) int {
	count, err := vpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (vpq *VocabPackQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, vpq.ctx, ent.OpQueryExist)
	switch _, err := vpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (vpq *VocabPackQuery) ExistX(ctx context.Context) bool {
	exist, err := vpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VocabPackQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (vpq *VocabPackQuery) Clone() *VocabPackQuery {
	if vpq == nil {
		return nil
	}
	return &VocabPackQuery{
		config:     vpq.config,
		ctx:        vpq.ctx.Clone(),
		order:      append([]vocabpack.OrderOption{}, vpq.order...),
		inters:     append([]Interceptor{}, vpq.inters...),
		predicates: append([]predicate.VocabPack{}, vpq.predicates...),
		// clone intermediate query.
		sql:  vpq.sql.Clone(),
		path: vpq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Slug string `json:"slug,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.VocabPack.Query().
//		GroupBy(vocabpack.FieldSlug).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (vpq *VocabPackQuery) GroupBy(field string, fields ...string) *VocabPackGroupBy {
	vpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VocabPackGroupBy{build: vpq}
	grbuild.flds = &vpq.ctx.Fields
	grbuild.label = vocabpack.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Slug string `json:"slug,omitempty"`
//	}
//
//	client.VocabPack.Query().
//		Select(vocabpack.FieldSlug).
//		Scan(ctx, &v)
func (vpq *VocabPackQuery) Select(fields ...string) *VocabPackSelect {
	vpq.ctx.Fields = append(vpq.ctx.Fields, fields...)
	sbuild := &VocabPackSelect{VocabPackQuery: vpq}
	sbuild.label = vocabpack.Label
	sbuild.flds, sbuild.scan = &vpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VocabPackSelect configured with the given aggregations.
func (vpq *VocabPackQuery) Aggregate(fns ...AggregateFunc) *VocabPackSelect {
	return vpq.Select().Aggregate(fns...)
}

func (vpq *VocabPackQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range vpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, vpq); err != nil {
				return err
			}
		}
	}
	for _, f := range vpq.ctx.Fields {
		if !vocabpack.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if vpq.path != nil {
		prev, err := vpq.path(ctx)
		if err != nil {
			return err
		}
		vpq.sql = prev
	}
	return nil
}

func (vpq *VocabPackQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VocabPack, error) {
	var (
		nodes = []*VocabPack{}
		_spec = vpq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VocabPack).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VocabPack{config: vpq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, vpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (vpq *VocabPackQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := vpq.querySpec()
	_spec.Node.Columns = vpq.ctx.Fields
	if len(vpq.ctx.Fields) > 0 {
		_spec.Unique = vpq.ctx.Unique != nil && *vpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, vpq.driver, _spec)
}

func (vpq *VocabPackQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(vocabpack.Table, vocabpack.Columns, sqlgraph.NewFieldSpec(vocabpack.FieldID, field.TypeInt))
	_spec.From = vpq.sql
	if unique := vpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if vpq.path != nil {
		_spec.Unique = true
	}
	if fields := vpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabpack.FieldID)
		for i := range fields {
			if fields[i] != vocabpack.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := vpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := vpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := vpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := vpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (vpq *VocabPackQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(vpq.driver.Dialect())
	t1 := builder.Table(vocabpack.Table)
	columns := vpq.ctx.Fields
	if len(columns) == 0 {
		columns = vocabpack.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if vpq.sql != nil {
		selector = vpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if vpq.ctx.Unique != nil && *vpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range vpq.predicates {
		p(selector)
	}
	for _, p := range vpq.order {
		p(selector)
	}
	if offset := vpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := vpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VocabPackGroupBy is the group-by builder for VocabPack entities.
type VocabPackGroupBy struct {
	selector
	build *VocabPackQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (vpgb *VocabPackGroupBy) Aggregate(fns ...AggregateFunc) *VocabPackGroupBy {
	vpgb.fns = append(vpgb.fns, fns...)
	return vpgb
}

// Scan applies the selector query and scans the result into the given value.
func (vpgb *VocabPackGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vpgb.build.ctx, ent.OpQueryGroupBy)
	if err := vpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VocabPackQuery, *VocabPackGroupBy](ctx, vpgb.build, vpgb, vpgb.build.inters, v)
}

func (vpgb *VocabPackGroupBy) sqlScan(ctx context.Context, root *VocabPackQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(vpgb.fns))
	for _, fn := range vpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*vpgb.flds)+len(vpgb.fns))
		for _, f := range *vpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*vpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VocabPackSelect is the builder for selecting fields of VocabPack entities.
type VocabPackSelect struct {
	*VocabPackQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (vps *VocabPackSelect) Aggregate(fns ...AggregateFunc) *VocabPackSelect {
	vps.fns = append(vps.fns, fns...)
	return vps
}

// Scan applies the selector query and scans the result into the given value.
func (vps *VocabPackSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vps.ctx, ent.OpQuerySelect)
	if err := vps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VocabPackQuery, *VocabPackSelect](ctx, vps.VocabPackQuery, vps, vps.inters, v)
}

func (vps *VocabPackSelect) sqlScan(ctx context.Context, root *VocabPackQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(vps.fns))
	for _, fn := range vps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*vps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
