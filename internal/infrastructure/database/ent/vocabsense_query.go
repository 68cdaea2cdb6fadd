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
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
)

// VocabSenseQuery is the builder for querying VocabSense entities.
type VocabSenseQuery struct {
	config
	ctx        *QueryContext
	order      []vocabsense.OrderOption
	inters     []Interceptor
	predicates []predicate.VocabSense
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VocabSenseQuery builder.
func (vsq *VocabSenseQuery) Where(ps ...predicate.VocabSense) *VocabSenseQuery {
	vsq.predicates = append(vsq.predicates, ps...)
	return vsq
}

// Limit the number of records to be returned by this query.
func (vsq *VocabSenseQuery) Limit(limit int) *VocabSenseQuery {
	vsq.ctx.Limit = &limit
	return vsq
}

// Offset to start from.
func (vsq *VocabSenseQuery) Offset(offset int) *VocabSenseQuery {
	vsq.ctx.Offset = &offset
	return vsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (vsq *VocabSenseQuery) Unique(unique bool) *VocabSenseQuery {
	vsq.ctx.Unique = &unique
	return vsq
}

// Order specifies how the records should be ordered.
func (vsq *VocabSenseQuery) Order(o ...vocabsense.OrderOption) *VocabSenseQuery {
	vsq.order = append(vsq.order, o...)
	return vsq
}

// First returns the first VocabSense entity from the query.
// Returns a *NotFoundError when no VocabSense was found.
func (vsq *VocabSenseQuery) First(ctx context.Context) (*VocabSense, error) {
	nodes, err := vsq.Limit(1).All(setContextOp(ctx, vsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{vocabsense.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (vsq *VocabSenseQuery) FirstX(ctx context.Context) *VocabSense {
	node, err := vsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VocabSense ID from the query.
// Returns a *NotFoundError when no VocabSense ID was found.
func (vsq *VocabSenseQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = vsq.Limit(1).IDs(setContextOp(ctx, vsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{vocabsense.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (vsq *VocabSenseQuery) FirstIDX(ctx context.Context) int {
	id, err := vsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VocabSense entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VocabSense entity is found.
// Returns a *NotFoundError when no VocabSense entities are found.
func (vsq *VocabSenseQuery) Only(ctx context.Context) (*VocabSense, error) {
	nodes, err := vsq.Limit(2).All(setContextOp(ctx, vsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{vocabsense.Label}
	default:
		return nil, &NotSingularError{vocabsense.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (vsq *VocabSenseQuery) OnlyX(ctx context.Context) *VocabSense {
	node, err := vsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VocabSense ID in the query.
// Returns a *NotSingularError when more than one VocabSense ID is found.
// Returns a *NotFoundError when no entities are found.
func (vsq *VocabSenseQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = vsq.Limit(2).IDs(setContextOp(ctx, vsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{vocabsense.Label}
	default:
		err = &NotSingularError{vocabsense.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (vsq *VocabSenseQuery) OnlyIDX(ctx context.Context) int {
	id, err := vsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VocabSenses.
func (vsq *VocabSenseQuery) All(ctx context.Context) ([]*VocabSense, error) {
	ctx = setContextOp(ctx, vsq.ctx, ent.OpQueryAll)
	if err := vsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VocabSense, *VocabSenseQuery]()
	return withInterceptors[[]*VocabSense](ctx, vsq, qr, vsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (vsq *VocabSenseQuery) AllX(ctx context.Context) []*VocabSense {
	nodes, err := vsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VocabSense IDs.
func (vsq *VocabSenseQuery) IDs(ctx context.Context) (ids []int, err error) {
	if vsq.ctx.Unique == nil && vsq.path != nil {
		vsq.Unique(true)
	}
	ctx = setContextOp(ctx, vsq.ctx, ent.OpQueryIDs)
	if err = vsq.Select(vocabsense.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (vsq *VocabSenseQuery) IDsX(ctx context.Context) []int {
	ids, err := vsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (vsq *VocabSenseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, vsq.ctx, ent.OpQueryCount)
	if err := vsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, vsq, querierCount[*VocabSenseQuery](), vsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (vsq *VocabSenseQuery) CountX(ctx context.Context) int {
	count, err := vsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (vsq *VocabSenseQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, vsq.ctx, ent.OpQueryExist)
	switch _, err := vsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (vsq *VocabSenseQuery) ExistX(ctx context.Context) bool {
	exist, err := vsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VocabSenseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (vsq *VocabSenseQuery) Clone() *VocabSenseQuery {
	if vsq == nil {
		return nil
	}
	return &VocabSenseQuery{
		config:     vsq.config,
		ctx:        vsq.ctx.Clone(),
		order:      append([]vocabsense.OrderOption{}, vsq.order...),
		inters:     append([]Interceptor{}, vsq.inters...),
		predicates: append([]predicate.VocabSense{}, vsq.predicates...),
		// clone intermediate query.
		sql:  vsq.sql.Clone(),
		path: vsq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Word string `json:"word,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.VocabSense.Query().
//		GroupBy(vocabsense.FieldWord).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (vsq *VocabSenseQuery) GroupBy(field string, fields ...string) *VocabSenseGroupBy {
	vsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VocabSenseGroupBy{build: vsq}
	grbuild.flds = &vsq.ctx.Fields
	grbuild.label = vocabsense.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Word string `json:"word,omitempty"`
//	}
//
//	client.VocabSense.Query().
//		Select(vocabsense.FieldWord).
//		Scan(ctx, &v)
func (vsq *VocabSenseQuery) Select(fields ...string) *VocabSenseSelect {
	vsq.ctx.Fields = append(vsq.ctx.Fields, fields...)
	sbuild := &VocabSenseSelect{VocabSenseQuery: vsq}
	sbuild.label = vocabsense.Label
	sbuild.flds, sbuild.scan = &vsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VocabSenseSelect configured with the given aggregations.
func (vsq *VocabSenseQuery) Aggregate(fns ...AggregateFunc) *VocabSenseSelect {
	return vsq.Select().Aggregate(fns...)
}

func (vsq *VocabSenseQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range vsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, vsq); err != nil {
				return err
			}
		}
	}
	for _, f := range vsq.ctx.Fields {
		if !vocabsense.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if vsq.path != nil {
		prev, err := vsq.path(ctx)
		if err != nil {
			return err
		}
		vsq.sql = prev
	}
	return nil
}

func (vsq *VocabSenseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VocabSense, error) {
	var (
		nodes = []*VocabSense{}
		_spec = vsq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VocabSense).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VocabSense{config: vsq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, vsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (vsq *VocabSenseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := vsq.querySpec()
	_spec.Node.Columns = vsq.ctx.Fields
	if len(vsq.ctx.Fields) > 0 {
		_spec.Unique = vsq.ctx.Unique != nil && *vsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, vsq.driver, _spec)
}

func (vsq *VocabSenseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(vocabsense.Table, vocabsense.Columns, sqlgraph.NewFieldSpec(vocabsense.FieldID, field.TypeInt))
	_spec.From = vsq.sql
	if unique := vsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if vsq.path != nil {
		_spec.Unique = true
	}
	if fields := vsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabsense.FieldID)
		for i := range fields {
			if fields[i] != vocabsense.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := vsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := vsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := vsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := vsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (vsq *VocabSenseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(vsq.driver.Dialect())
	t1 := builder.Table(vocabsense.Table)
	columns := vsq.ctx.Fields
	if len(columns) == 0 {
		columns = vocabsense.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if vsq.sql != nil {
		selector = vsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if vsq.ctx.Unique != nil && *vsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range vsq.predicates {
		p(selector)
	}
	for _, p := range vsq.order {
		p(selector)
	}
	if offset := vsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := vsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VocabSenseGroupBy is the group-by builder for VocabSense entities.
type VocabSenseGroupBy struct {
	selector
	build *VocabSenseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (vsgb *VocabSenseGroupBy) Aggregate(fns ...AggregateFunc) *VocabSenseGroupBy {
	vsgb.fns = append(vsgb.fns, fns...)
	return vsgb
}

// Scan applies the selector query and scans the result into the given value.
func (vsgb *VocabSenseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vsgb.build.ctx, ent.OpQueryGroupBy)
	if err := vsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VocabSenseQuery, *VocabSenseGroupBy](ctx, vsgb.build, vsgb, vsgb.build.inters, v)
}

func (vsgb *VocabSenseGroupBy) sqlScan(ctx context.Context, root *VocabSenseQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(vsgb.fns))
	for _, fn := range vsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*vsgb.flds)+len(vsgb.fns))
		for _, f := range *vsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*vsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VocabSenseSelect is the builder for selecting fields of VocabSense entities.
type VocabSenseSelect struct {
	*VocabSenseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (vss *VocabSenseSelect) Aggregate(fns ...AggregateFunc) *VocabSenseSelect {
	vss.fns = append(vss.fns, fns...)
	return vss
}

// Scan applies the selector query and scans the result into the given value.
func (vss *VocabSenseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vss.ctx, ent.OpQuerySelect)
	if err := vss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VocabSenseQuery, *VocabSenseSelect](ctx, vss.VocabSenseQuery, vss, vss.inters, v)
}

func (vss *VocabSenseSelect) sqlScan(ctx context.Context, root *VocabSenseQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(vss.fns))
	for _, fn := range vss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*vss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
