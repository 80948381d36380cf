// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agx-dev/agx/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/graphevent"
	"github.com/agx-dev/agx/ent/tickjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExecutionGraph is the client for interacting with the ExecutionGraph builders.
	ExecutionGraph *ExecutionGraphClient
	// GraphEvent is the client for interacting with the GraphEvent builders.
	GraphEvent *GraphEventClient
	// TickJob is the client for interacting with the TickJob builders.
	TickJob *TickJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExecutionGraph = NewExecutionGraphClient(c.config)
	c.GraphEvent = NewGraphEventClient(c.config)
	c.TickJob = NewTickJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ExecutionGraph: NewExecutionGraphClient(cfg),
		GraphEvent:     NewGraphEventClient(cfg),
		TickJob:        NewTickJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ExecutionGraph: NewExecutionGraphClient(cfg),
		GraphEvent:     NewGraphEventClient(cfg),
		TickJob:        NewTickJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExecutionGraph.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ExecutionGraph.Use(hooks...)
	c.GraphEvent.Use(hooks...)
	c.TickJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExecutionGraph.Intercept(interceptors...)
	c.GraphEvent.Intercept(interceptors...)
	c.TickJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExecutionGraphMutation:
		return c.ExecutionGraph.mutate(ctx, m)
	case *GraphEventMutation:
		return c.GraphEvent.mutate(ctx, m)
	case *TickJobMutation:
		return c.TickJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExecutionGraphClient is a client for the ExecutionGraph schema.
type ExecutionGraphClient struct {
	config
}

// NewExecutionGraphClient returns a client for the ExecutionGraph from the given config.
func NewExecutionGraphClient(c config) *ExecutionGraphClient {
	return &ExecutionGraphClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executiongraph.Hooks(f(g(h())))`.
func (c *ExecutionGraphClient) Use(hooks ...Hook) {
	c.hooks.ExecutionGraph = append(c.hooks.ExecutionGraph, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executiongraph.Intercept(f(g(h())))`.
func (c *ExecutionGraphClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionGraph = append(c.inters.ExecutionGraph, interceptors...)
}

// Create returns a builder for creating a ExecutionGraph entity.
func (c *ExecutionGraphClient) Create() *ExecutionGraphCreate {
	mutation := newExecutionGraphMutation(c.config, OpCreate)
	return &ExecutionGraphCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionGraph entities.
func (c *ExecutionGraphClient) CreateBulk(builders ...*ExecutionGraphCreate) *ExecutionGraphCreateBulk {
	return &ExecutionGraphCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionGraphClient) MapCreateBulk(slice any, setFunc func(*ExecutionGraphCreate, int)) *ExecutionGraphCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionGraphCreateBulk{err: fmt.Errorf("calling to ExecutionGraphClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionGraphCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionGraphCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionGraph.
func (c *ExecutionGraphClient) Update() *ExecutionGraphUpdate {
	mutation := newExecutionGraphMutation(c.config, OpUpdate)
	return &ExecutionGraphUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionGraphClient) UpdateOne(_m *ExecutionGraph) *ExecutionGraphUpdateOne {
	mutation := newExecutionGraphMutation(c.config, OpUpdateOne, withExecutionGraph(_m))
	return &ExecutionGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionGraphClient) UpdateOneID(id string) *ExecutionGraphUpdateOne {
	mutation := newExecutionGraphMutation(c.config, OpUpdateOne, withExecutionGraphID(id))
	return &ExecutionGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionGraph.
func (c *ExecutionGraphClient) Delete() *ExecutionGraphDelete {
	mutation := newExecutionGraphMutation(c.config, OpDelete)
	return &ExecutionGraphDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionGraphClient) DeleteOne(_m *ExecutionGraph) *ExecutionGraphDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionGraphClient) DeleteOneID(id string) *ExecutionGraphDeleteOne {
	builder := c.Delete().Where(executiongraph.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionGraphDeleteOne{builder}
}

// Query returns a query builder for ExecutionGraph.
func (c *ExecutionGraphClient) Query() *ExecutionGraphQuery {
	return &ExecutionGraphQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionGraph},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionGraph entity by its id.
func (c *ExecutionGraphClient) Get(ctx context.Context, id string) (*ExecutionGraph, error) {
	return c.Query().Where(executiongraph.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionGraphClient) GetX(ctx context.Context, id string) *ExecutionGraph {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a ExecutionGraph.
func (c *ExecutionGraphClient) QueryEvents(_m *ExecutionGraph) *GraphEventQuery {
	query := (&GraphEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executiongraph.Table, executiongraph.FieldID, id),
			sqlgraph.To(graphevent.Table, graphevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, executiongraph.EventsTable, executiongraph.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionGraphClient) Hooks() []Hook {
	return c.hooks.ExecutionGraph
}

// Interceptors returns the client interceptors.
func (c *ExecutionGraphClient) Interceptors() []Interceptor {
	return c.inters.ExecutionGraph
}

func (c *ExecutionGraphClient) mutate(ctx context.Context, m *ExecutionGraphMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionGraphCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionGraphUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionGraphDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionGraph mutation op: %q", m.Op())
	}
}

// GraphEventClient is a client for the GraphEvent schema.
type GraphEventClient struct {
	config
}

// NewGraphEventClient returns a client for the GraphEvent from the given config.
func NewGraphEventClient(c config) *GraphEventClient {
	return &GraphEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphevent.Hooks(f(g(h())))`.
func (c *GraphEventClient) Use(hooks ...Hook) {
	c.hooks.GraphEvent = append(c.hooks.GraphEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphevent.Intercept(f(g(h())))`.
func (c *GraphEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphEvent = append(c.inters.GraphEvent, interceptors...)
}

// Create returns a builder for creating a GraphEvent entity.
func (c *GraphEventClient) Create() *GraphEventCreate {
	mutation := newGraphEventMutation(c.config, OpCreate)
	return &GraphEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphEvent entities.
func (c *GraphEventClient) CreateBulk(builders ...*GraphEventCreate) *GraphEventCreateBulk {
	return &GraphEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphEventClient) MapCreateBulk(slice any, setFunc func(*GraphEventCreate, int)) *GraphEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphEventCreateBulk{err: fmt.Errorf("calling to GraphEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphEvent.
func (c *GraphEventClient) Update() *GraphEventUpdate {
	mutation := newGraphEventMutation(c.config, OpUpdate)
	return &GraphEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphEventClient) UpdateOne(_m *GraphEvent) *GraphEventUpdateOne {
	mutation := newGraphEventMutation(c.config, OpUpdateOne, withGraphEvent(_m))
	return &GraphEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphEventClient) UpdateOneID(id string) *GraphEventUpdateOne {
	mutation := newGraphEventMutation(c.config, OpUpdateOne, withGraphEventID(id))
	return &GraphEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphEvent.
func (c *GraphEventClient) Delete() *GraphEventDelete {
	mutation := newGraphEventMutation(c.config, OpDelete)
	return &GraphEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphEventClient) DeleteOne(_m *GraphEvent) *GraphEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphEventClient) DeleteOneID(id string) *GraphEventDeleteOne {
	builder := c.Delete().Where(graphevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphEventDeleteOne{builder}
}

// Query returns a query builder for GraphEvent.
func (c *GraphEventClient) Query() *GraphEventQuery {
	return &GraphEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphEvent entity by its id.
func (c *GraphEventClient) Get(ctx context.Context, id string) (*GraphEvent, error) {
	return c.Query().Where(graphevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphEventClient) GetX(ctx context.Context, id string) *GraphEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGraph queries the graph edge of a GraphEvent.
func (c *GraphEventClient) QueryGraph(_m *GraphEvent) *ExecutionGraphQuery {
	query := (&ExecutionGraphClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(graphevent.Table, graphevent.FieldID, id),
			sqlgraph.To(executiongraph.Table, executiongraph.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, graphevent.GraphTable, graphevent.GraphColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GraphEventClient) Hooks() []Hook {
	return c.hooks.GraphEvent
}

// Interceptors returns the client interceptors.
func (c *GraphEventClient) Interceptors() []Interceptor {
	return c.inters.GraphEvent
}

func (c *GraphEventClient) mutate(ctx context.Context, m *GraphEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphEvent mutation op: %q", m.Op())
	}
}

// TickJobClient is a client for the TickJob schema.
type TickJobClient struct {
	config
}

// NewTickJobClient returns a client for the TickJob from the given config.
func NewTickJobClient(c config) *TickJobClient {
	return &TickJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tickjob.Hooks(f(g(h())))`.
func (c *TickJobClient) Use(hooks ...Hook) {
	c.hooks.TickJob = append(c.hooks.TickJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tickjob.Intercept(f(g(h())))`.
func (c *TickJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.TickJob = append(c.inters.TickJob, interceptors...)
}

// Create returns a builder for creating a TickJob entity.
func (c *TickJobClient) Create() *TickJobCreate {
	mutation := newTickJobMutation(c.config, OpCreate)
	return &TickJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TickJob entities.
func (c *TickJobClient) CreateBulk(builders ...*TickJobCreate) *TickJobCreateBulk {
	return &TickJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TickJobClient) MapCreateBulk(slice any, setFunc func(*TickJobCreate, int)) *TickJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TickJobCreateBulk{err: fmt.Errorf("calling to TickJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TickJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TickJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TickJob.
func (c *TickJobClient) Update() *TickJobUpdate {
	mutation := newTickJobMutation(c.config, OpUpdate)
	return &TickJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TickJobClient) UpdateOne(_m *TickJob) *TickJobUpdateOne {
	mutation := newTickJobMutation(c.config, OpUpdateOne, withTickJob(_m))
	return &TickJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TickJobClient) UpdateOneID(id string) *TickJobUpdateOne {
	mutation := newTickJobMutation(c.config, OpUpdateOne, withTickJobID(id))
	return &TickJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TickJob.
func (c *TickJobClient) Delete() *TickJobDelete {
	mutation := newTickJobMutation(c.config, OpDelete)
	return &TickJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TickJobClient) DeleteOne(_m *TickJob) *TickJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TickJobClient) DeleteOneID(id string) *TickJobDeleteOne {
	builder := c.Delete().Where(tickjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TickJobDeleteOne{builder}
}

// Query returns a query builder for TickJob.
func (c *TickJobClient) Query() *TickJobQuery {
	return &TickJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTickJob},
		inters: c.Interceptors(),
	}
}

// Get returns a TickJob entity by its id.
func (c *TickJobClient) Get(ctx context.Context, id string) (*TickJob, error) {
	return c.Query().Where(tickjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TickJobClient) GetX(ctx context.Context, id string) *TickJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TickJobClient) Hooks() []Hook {
	return c.hooks.TickJob
}

// Interceptors returns the client interceptors.
func (c *TickJobClient) Interceptors() []Interceptor {
	return c.inters.TickJob
}

func (c *TickJobClient) mutate(ctx context.Context, m *TickJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TickJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TickJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TickJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TickJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TickJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExecutionGraph, GraphEvent, TickJob []ent.Hook
	}
	inters struct {
		ExecutionGraph, GraphEvent, TickJob []ent.Interceptor
	}
)
