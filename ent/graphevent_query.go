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
	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/graphevent"
	"github.com/agx-dev/agx/ent/predicate"
)

// GraphEventQuery is the builder for querying GraphEvent entities.
type GraphEventQuery struct {
	config
	ctx        *QueryContext
	order      []graphevent.OrderOption
	inters     []Interceptor
	predicates []predicate.GraphEvent
	withGraph  *ExecutionGraphQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GraphEventQuery builder.
func (_q *GraphEventQuery) Where(ps ...predicate.GraphEvent) *GraphEventQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *GraphEventQuery) Limit(limit int) *GraphEventQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *GraphEventQuery) Offset(offset int) *GraphEventQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *GraphEventQuery) Unique(unique bool) *GraphEventQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *GraphEventQuery) Order(o ...graphevent.OrderOption) *GraphEventQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGraph chains the current query on the "graph" edge.
func (_q *GraphEventQuery) QueryGraph() *ExecutionGraphQuery {
	query := (&ExecutionGraphClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(graphevent.Table, graphevent.FieldID, selector),
			sqlgraph.To(executiongraph.Table, executiongraph.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, graphevent.GraphTable, graphevent.GraphColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first GraphEvent entity from the query.
// Returns a *NotFoundError when no GraphEvent was found.
func (_q *GraphEventQuery) First(ctx context.Context) (*GraphEvent, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{graphevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *GraphEventQuery) FirstX(ctx context.Context) *GraphEvent {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GraphEvent ID from the query.
// Returns a *NotFoundError when no GraphEvent ID was found.
func (_q *GraphEventQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{graphevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *GraphEventQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GraphEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GraphEvent entity is found.
// Returns a *NotFoundError when no GraphEvent entities are found.
func (_q *GraphEventQuery) Only(ctx context.Context) (*GraphEvent, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{graphevent.Label}
	default:
		return nil, &NotSingularError{graphevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *GraphEventQuery) OnlyX(ctx context.Context) *GraphEvent {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GraphEvent ID in the query.
// Returns a *NotSingularError when more than one GraphEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *GraphEventQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{graphevent.Label}
	default:
		err = &NotSingularError{graphevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *GraphEventQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GraphEvents.
func (_q *GraphEventQuery) All(ctx context.Context) ([]*GraphEvent, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GraphEvent, *GraphEventQuery]()
	return withInterceptors[[]*GraphEvent](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *GraphEventQuery) AllX(ctx context.Context) []*GraphEvent {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GraphEvent IDs.
func (_q *GraphEventQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(graphevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *GraphEventQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *GraphEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*GraphEventQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *GraphEventQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *GraphEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *GraphEventQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GraphEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *GraphEventQuery) Clone() *GraphEventQuery {
	if _q == nil {
		return nil
	}
	return &GraphEventQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]graphevent.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.GraphEvent{}, _q.predicates...),
		withGraph:  _q.withGraph.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGraph tells the query-builder to eager-load the nodes that are connected to
// the "graph" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GraphEventQuery) WithGraph(opts ...func(*ExecutionGraphQuery)) *GraphEventQuery {
	query := (&ExecutionGraphClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGraph = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		GraphID string `json:"graph_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GraphEvent.Query().
//		GroupBy(graphevent.FieldGraphID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *GraphEventQuery) GroupBy(field string, fields ...string) *GraphEventGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GraphEventGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = graphevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		GraphID string `json:"graph_id,omitempty"`
//	}
//
//	client.GraphEvent.Query().
//		Select(graphevent.FieldGraphID).
//		Scan(ctx, &v)
func (_q *GraphEventQuery) Select(fields ...string) *GraphEventSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &GraphEventSelect{GraphEventQuery: _q}
	sbuild.label = graphevent.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GraphEventSelect configured with the given aggregations.
func (_q *GraphEventQuery) Aggregate(fns ...AggregateFunc) *GraphEventSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *GraphEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !graphevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *GraphEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GraphEvent, error) {
	var (
		nodes       = []*GraphEvent{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withGraph != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GraphEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GraphEvent{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withGraph; query != nil {
		if err := _q.loadGraph(ctx, query, nodes, nil,
			func(n *GraphEvent, e *ExecutionGraph) { n.Edges.Graph = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *GraphEventQuery) loadGraph(ctx context.Context, query *ExecutionGraphQuery, nodes []*GraphEvent, init func(*GraphEvent), assign func(*GraphEvent, *ExecutionGraph)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*GraphEvent)
	for i := range nodes {
		fk := nodes[i].GraphID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(executiongraph.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "graph_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *GraphEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *GraphEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(graphevent.Table, graphevent.Columns, sqlgraph.NewFieldSpec(graphevent.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphevent.FieldID)
		for i := range fields {
			if fields[i] != graphevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withGraph != nil {
			_spec.Node.AddColumnOnce(graphevent.FieldGraphID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *GraphEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(graphevent.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = graphevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// GraphEventGroupBy is the group-by builder for GraphEvent entities.
type GraphEventGroupBy struct {
	selector
	build *GraphEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *GraphEventGroupBy) Aggregate(fns ...AggregateFunc) *GraphEventGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *GraphEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GraphEventQuery, *GraphEventGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *GraphEventGroupBy) sqlScan(ctx context.Context, root *GraphEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GraphEventSelect is the builder for selecting fields of GraphEvent entities.
type GraphEventSelect struct {
	*GraphEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *GraphEventSelect) Aggregate(fns ...AggregateFunc) *GraphEventSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *GraphEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GraphEventQuery, *GraphEventSelect](ctx, _s.GraphEventQuery, _s, _s.inters, v)
}

func (_s *GraphEventSelect) sqlScan(ctx context.Context, root *GraphEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
