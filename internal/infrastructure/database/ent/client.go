// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/answerevent"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/badge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// Badge is the client for interacting with the Badge builders.
	Badge *BadgeClient
	// IrregularVerb is the client for interacting with the IrregularVerb builders.
	IrregularVerb *IrregularVerbClient
	// UnitKnowledge is the client for interacting with the UnitKnowledge builders.
	UnitKnowledge *UnitKnowledgeClient
	// UserBadge is the client for interacting with the UserBadge builders.
	UserBadge *UserBadgeClient
	// UserXp is the client for interacting with the UserXp builders.
	UserXp *UserXpClient
	// VocabCluster is the client for interacting with the VocabCluster builders.
	VocabCluster *VocabClusterClient
	// VocabPack is the client for interacting with the VocabPack builders.
	VocabPack *VocabPackClient
	// VocabSense is the client for interacting with the VocabSense builders.
	VocabSense *VocabSenseClient
	// XpEvent is the client for interacting with the XpEvent builders.
	XpEvent *XpEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.Badge = NewBadgeClient(c.config)
	c.IrregularVerb = NewIrregularVerbClient(c.config)
	c.UnitKnowledge = NewUnitKnowledgeClient(c.config)
	c.UserBadge = NewUserBadgeClient(c.config)
	c.UserXp = NewUserXpClient(c.config)
	c.VocabCluster = NewVocabClusterClient(c.config)
	c.VocabPack = NewVocabPackClient(c.config)
	c.VocabSense = NewVocabSenseClient(c.config)
	c.XpEvent = NewXpEventClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		AnswerEvent:   NewAnswerEventClient(cfg),
		Badge:         NewBadgeClient(cfg),
		IrregularVerb: NewIrregularVerbClient(cfg),
		UnitKnowledge: NewUnitKnowledgeClient(cfg),
		UserBadge:     NewUserBadgeClient(cfg),
		UserXp:        NewUserXpClient(cfg),
		VocabCluster:  NewVocabClusterClient(cfg),
		VocabPack:     NewVocabPackClient(cfg),
		VocabSense:    NewVocabSenseClient(cfg),
		XpEvent:       NewXpEventClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		AnswerEvent:   NewAnswerEventClient(cfg),
		Badge:         NewBadgeClient(cfg),
		IrregularVerb: NewIrregularVerbClient(cfg),
		UnitKnowledge: NewUnitKnowledgeClient(cfg),
		UserBadge:     NewUserBadgeClient(cfg),
		UserXp:        NewUserXpClient(cfg),
		VocabCluster:  NewVocabClusterClient(cfg),
		VocabPack:     NewVocabPackClient(cfg),
		VocabSense:    NewVocabSenseClient(cfg),
		XpEvent:       NewXpEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AnswerEvent, c.Badge, c.IrregularVerb, c.UnitKnowledge, c.UserBadge, c.UserXp,
		c.VocabCluster, c.VocabPack, c.VocabSense, c.XpEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerEvent, c.Badge, c.IrregularVerb, c.UnitKnowledge, c.UserBadge, c.UserXp,
		c.VocabCluster, c.VocabPack, c.VocabSense, c.XpEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *BadgeMutation:
		return c.Badge.mutate(ctx, m)
	case *IrregularVerbMutation:
		return c.IrregularVerb.mutate(ctx, m)
	case *UnitKnowledgeMutation:
		return c.UnitKnowledge.mutate(ctx, m)
	case *UserBadgeMutation:
		return c.UserBadge.mutate(ctx, m)
	case *UserXpMutation:
		return c.UserXp.mutate(ctx, m)
	case *VocabClusterMutation:
		return c.VocabCluster.mutate(ctx, m)
	case *VocabPackMutation:
		return c.VocabPack.mutate(ctx, m)
	case *VocabSenseMutation:
		return c.VocabSense.mutate(ctx, m)
	case *XpEventMutation:
		return c.XpEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(ae *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(ae))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(ae *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(ae.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// BadgeClient is a client for the Badge schema.
type BadgeClient struct {
	config
}

// NewBadgeClient returns a client for the Badge from the given config.
func NewBadgeClient(c config) *BadgeClient {
	return &BadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badge.Hooks(f(g(h())))`.
func (c *BadgeClient) Use(hooks ...Hook) {
	c.hooks.Badge = append(c.hooks.Badge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badge.Intercept(f(g(h())))`.
func (c *BadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Badge = append(c.inters.Badge, interceptors...)
}

// Create returns a builder for creating a Badge entity.
func (c *BadgeClient) Create() *BadgeCreate {
	mutation := newBadgeMutation(c.config, OpCreate)
	return &BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Badge entities.
func (c *BadgeClient) CreateBulk(builders ...*BadgeCreate) *BadgeCreateBulk {
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeClient) MapCreateBulk(slice any, setFunc func(*BadgeCreate, int)) *BadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeCreateBulk{err: fmt.Errorf("calling to BadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Badge.
func (c *BadgeClient) Update() *BadgeUpdate {
	mutation := newBadgeMutation(c.config, OpUpdate)
	return &BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeClient) UpdateOne(b *Badge) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadge(b))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeClient) UpdateOneID(id int) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadgeID(id))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Badge.
func (c *BadgeClient) Delete() *BadgeDelete {
	mutation := newBadgeMutation(c.config, OpDelete)
	return &BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeClient) DeleteOne(b *Badge) *BadgeDeleteOne {
	return c.DeleteOneID(b.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeClient) DeleteOneID(id int) *BadgeDeleteOne {
	builder := c.Delete().Where(badge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeDeleteOne{builder}
}

// Query returns a query builder for Badge.
func (c *BadgeClient) Query() *BadgeQuery {
	return &BadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a Badge entity by its id.
func (c *BadgeClient) Get(ctx context.Context, id int) (*Badge, error) {
	return c.Query().Where(badge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeClient) GetX(ctx context.Context, id int) *Badge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BadgeClient) Hooks() []Hook {
	return c.hooks.Badge
}

// Interceptors returns the client interceptors.
func (c *BadgeClient) Interceptors() []Interceptor {
	return c.inters.Badge
}

func (c *BadgeClient) mutate(ctx context.Context, m *BadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Badge mutation op: %q", m.Op())
	}
}

// IrregularVerbClient is a client for the IrregularVerb schema.
type IrregularVerbClient struct {
	config
}

// NewIrregularVerbClient returns a client for the IrregularVerb from the given config.
func NewIrregularVerbClient(c config) *IrregularVerbClient {
	return &IrregularVerbClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `irregularverb.Hooks(f(g(h())))`.
func (c *IrregularVerbClient) Use(hooks ...Hook) {
	c.hooks.IrregularVerb = append(c.hooks.IrregularVerb, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `irregularverb.Intercept(f(g(h())))`.
func (c *IrregularVerbClient) Intercept(interceptors ...Interceptor) {
	c.inters.IrregularVerb = append(c.inters.IrregularVerb, interceptors...)
}

// Create returns a builder for creating a IrregularVerb entity.
func (c *IrregularVerbClient) Create() *IrregularVerbCreate {
	mutation := newIrregularVerbMutation(c.config, OpCreate)
	return &IrregularVerbCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IrregularVerb entities.
func (c *IrregularVerbClient) CreateBulk(builders ...*IrregularVerbCreate) *IrregularVerbCreateBulk {
	return &IrregularVerbCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IrregularVerbClient) MapCreateBulk(slice any, setFunc func(*IrregularVerbCreate, int)) *IrregularVerbCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IrregularVerbCreateBulk{err: fmt.Errorf("calling to IrregularVerbClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IrregularVerbCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IrregularVerbCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IrregularVerb.
func (c *IrregularVerbClient) Update() *IrregularVerbUpdate {
	mutation := newIrregularVerbMutation(c.config, OpUpdate)
	return &IrregularVerbUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IrregularVerbClient) UpdateOne(iv *IrregularVerb) *IrregularVerbUpdateOne {
	mutation := newIrregularVerbMutation(c.config, OpUpdateOne, withIrregularVerb(iv))
	return &IrregularVerbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IrregularVerbClient) UpdateOneID(id int) *IrregularVerbUpdateOne {
	mutation := newIrregularVerbMutation(c.config, OpUpdateOne, withIrregularVerbID(id))
	return &IrregularVerbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IrregularVerb.
func (c *IrregularVerbClient) Delete() *IrregularVerbDelete {
	mutation := newIrregularVerbMutation(c.config, OpDelete)
	return &IrregularVerbDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IrregularVerbClient) DeleteOne(iv *IrregularVerb) *IrregularVerbDeleteOne {
	return c.DeleteOneID(iv.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IrregularVerbClient) DeleteOneID(id int) *IrregularVerbDeleteOne {
	builder := c.Delete().Where(irregularverb.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IrregularVerbDeleteOne{builder}
}

// Query returns a query builder for IrregularVerb.
func (c *IrregularVerbClient) Query() *IrregularVerbQuery {
	return &IrregularVerbQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIrregularVerb},
		inters: c.Interceptors(),
	}
}

// Get returns a IrregularVerb entity by its id.
func (c *IrregularVerbClient) Get(ctx context.Context, id int) (*IrregularVerb, error) {
	return c.Query().Where(irregularverb.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IrregularVerbClient) GetX(ctx context.Context, id int) *IrregularVerb {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IrregularVerbClient) Hooks() []Hook {
	return c.hooks.IrregularVerb
}

// Interceptors returns the client interceptors.
func (c *IrregularVerbClient) Interceptors() []Interceptor {
	return c.inters.IrregularVerb
}

func (c *IrregularVerbClient) mutate(ctx context.Context, m *IrregularVerbMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IrregularVerbCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IrregularVerbUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IrregularVerbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IrregularVerbDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IrregularVerb mutation op: %q", m.Op())
	}
}

// UnitKnowledgeClient is a client for the UnitKnowledge schema.
type UnitKnowledgeClient struct {
	config
}

// NewUnitKnowledgeClient returns a client for the UnitKnowledge from the given config.
func NewUnitKnowledgeClient(c config) *UnitKnowledgeClient {
	return &UnitKnowledgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unitknowledge.Hooks(f(g(h())))`.
func (c *UnitKnowledgeClient) Use(hooks ...Hook) {
	c.hooks.UnitKnowledge = append(c.hooks.UnitKnowledge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unitknowledge.Intercept(f(g(h())))`.
func (c *UnitKnowledgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnitKnowledge = append(c.inters.UnitKnowledge, interceptors...)
}

// Create returns a builder for creating a UnitKnowledge entity.
func (c *UnitKnowledgeClient) Create() *UnitKnowledgeCreate {
	mutation := newUnitKnowledgeMutation(c.config, OpCreate)
	return &UnitKnowledgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnitKnowledge entities.
func (c *UnitKnowledgeClient) CreateBulk(builders ...*UnitKnowledgeCreate) *UnitKnowledgeCreateBulk {
	return &UnitKnowledgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnitKnowledgeClient) MapCreateBulk(slice any, setFunc func(*UnitKnowledgeCreate, int)) *UnitKnowledgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnitKnowledgeCreateBulk{err: fmt.Errorf("calling to UnitKnowledgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnitKnowledgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnitKnowledgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnitKnowledge.
func (c *UnitKnowledgeClient) Update() *UnitKnowledgeUpdate {
	mutation := newUnitKnowledgeMutation(c.config, OpUpdate)
	return &UnitKnowledgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnitKnowledgeClient) UpdateOne(uk *UnitKnowledge) *UnitKnowledgeUpdateOne {
	mutation := newUnitKnowledgeMutation(c.config, OpUpdateOne, withUnitKnowledge(uk))
	return &UnitKnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnitKnowledgeClient) UpdateOneID(id int) *UnitKnowledgeUpdateOne {
	mutation := newUnitKnowledgeMutation(c.config, OpUpdateOne, withUnitKnowledgeID(id))
	return &UnitKnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnitKnowledge.
func (c *UnitKnowledgeClient) Delete() *UnitKnowledgeDelete {
	mutation := newUnitKnowledgeMutation(c.config, OpDelete)
	return &UnitKnowledgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnitKnowledgeClient) DeleteOne(uk *UnitKnowledge) *UnitKnowledgeDeleteOne {
	return c.DeleteOneID(uk.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnitKnowledgeClient) DeleteOneID(id int) *UnitKnowledgeDeleteOne {
	builder := c.Delete().Where(unitknowledge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnitKnowledgeDeleteOne{builder}
}

// Query returns a query builder for UnitKnowledge.
func (c *UnitKnowledgeClient) Query() *UnitKnowledgeQuery {
	return &UnitKnowledgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnitKnowledge},
		inters: c.Interceptors(),
	}
}

// Get returns a UnitKnowledge entity by its id.
func (c *UnitKnowledgeClient) Get(ctx context.Context, id int) (*UnitKnowledge, error) {
	return c.Query().Where(unitknowledge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnitKnowledgeClient) GetX(ctx context.Context, id int) *UnitKnowledge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnitKnowledgeClient) Hooks() []Hook {
	return c.hooks.UnitKnowledge
}

// Interceptors returns the client interceptors.
func (c *UnitKnowledgeClient) Interceptors() []Interceptor {
	return c.inters.UnitKnowledge
}

func (c *UnitKnowledgeClient) mutate(ctx context.Context, m *UnitKnowledgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnitKnowledgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnitKnowledgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnitKnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnitKnowledgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnitKnowledge mutation op: %q", m.Op())
	}
}

// UserBadgeClient is a client for the UserBadge schema.
type UserBadgeClient struct {
	config
}

// NewUserBadgeClient returns a client for the UserBadge from the given config.
func NewUserBadgeClient(c config) *UserBadgeClient {
	return &UserBadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userbadge.Hooks(f(g(h())))`.
func (c *UserBadgeClient) Use(hooks ...Hook) {
	c.hooks.UserBadge = append(c.hooks.UserBadge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userbadge.Intercept(f(g(h())))`.
func (c *UserBadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserBadge = append(c.inters.UserBadge, interceptors...)
}

// Create returns a builder for creating a UserBadge entity.
func (c *UserBadgeClient) Create() *UserBadgeCreate {
	mutation := newUserBadgeMutation(c.config, OpCreate)
	return &UserBadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserBadge entities.
func (c *UserBadgeClient) CreateBulk(builders ...*UserBadgeCreate) *UserBadgeCreateBulk {
	return &UserBadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserBadgeClient) MapCreateBulk(slice any, setFunc func(*UserBadgeCreate, int)) *UserBadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserBadgeCreateBulk{err: fmt.Errorf("calling to UserBadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserBadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserBadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserBadge.
func (c *UserBadgeClient) Update() *UserBadgeUpdate {
	mutation := newUserBadgeMutation(c.config, OpUpdate)
	return &UserBadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserBadgeClient) UpdateOne(ub *UserBadge) *UserBadgeUpdateOne {
	mutation := newUserBadgeMutation(c.config, OpUpdateOne, withUserBadge(ub))
	return &UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserBadgeClient) UpdateOneID(id int) *UserBadgeUpdateOne {
	mutation := newUserBadgeMutation(c.config, OpUpdateOne, withUserBadgeID(id))
	return &UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserBadge.
func (c *UserBadgeClient) Delete() *UserBadgeDelete {
	mutation := newUserBadgeMutation(c.config, OpDelete)
	return &UserBadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserBadgeClient) DeleteOne(ub *UserBadge) *UserBadgeDeleteOne {
	return c.DeleteOneID(ub.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserBadgeClient) DeleteOneID(id int) *UserBadgeDeleteOne {
	builder := c.Delete().Where(userbadge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserBadgeDeleteOne{builder}
}

// Query returns a query builder for UserBadge.
func (c *UserBadgeClient) Query() *UserBadgeQuery {
	return &UserBadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a UserBadge entity by its id.
func (c *UserBadgeClient) Get(ctx context.Context, id int) (*UserBadge, error) {
	return c.Query().Where(userbadge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserBadgeClient) GetX(ctx context.Context, id int) *UserBadge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserBadgeClient) Hooks() []Hook {
	return c.hooks.UserBadge
}

// Interceptors returns the client interceptors.
func (c *UserBadgeClient) Interceptors() []Interceptor {
	return c.inters.UserBadge
}

func (c *UserBadgeClient) mutate(ctx context.Context, m *UserBadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserBadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserBadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserBadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserBadge mutation op: %q", m.Op())
	}
}

// UserXpClient is a client for the UserXp schema.
type UserXpClient struct {
	config
}

// NewUserXpClient returns a client for the UserXp from the given config.
func NewUserXpClient(c config) *UserXpClient {
	return &UserXpClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userxp.Hooks(f(g(h())))`.
func (c *UserXpClient) Use(hooks ...Hook) {
	c.hooks.UserXp = append(c.hooks.UserXp, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userxp.Intercept(f(g(h())))`.
func (c *UserXpClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserXp = append(c.inters.UserXp, interceptors...)
}

// Create returns a builder for creating a UserXp entity.
func (c *UserXpClient) Create() *UserXpCreate {
	mutation := newUserXpMutation(c.config, OpCreate)
	return &UserXpCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserXp entities.
func (c *UserXpClient) CreateBulk(builders ...*UserXpCreate) *UserXpCreateBulk {
	return &UserXpCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserXpClient) MapCreateBulk(slice any, setFunc func(*UserXpCreate, int)) *UserXpCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserXpCreateBulk{err: fmt.Errorf("calling to UserXpClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserXpCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserXpCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserXp.
func (c *UserXpClient) Update() *UserXpUpdate {
	mutation := newUserXpMutation(c.config, OpUpdate)
	return &UserXpUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserXpClient) UpdateOne(ux *UserXp) *UserXpUpdateOne {
	mutation := newUserXpMutation(c.config, OpUpdateOne, withUserXp(ux))
	return &UserXpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserXpClient) UpdateOneID(id int) *UserXpUpdateOne {
	mutation := newUserXpMutation(c.config, OpUpdateOne, withUserXpID(id))
	return &UserXpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserXp.
func (c *UserXpClient) Delete() *UserXpDelete {
	mutation := newUserXpMutation(c.config, OpDelete)
	return &UserXpDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserXpClient) DeleteOne(ux *UserXp) *UserXpDeleteOne {
	return c.DeleteOneID(ux.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserXpClient) DeleteOneID(id int) *UserXpDeleteOne {
	builder := c.Delete().Where(userxp.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserXpDeleteOne{builder}
}

// Query returns a query builder for UserXp.
func (c *UserXpClient) Query() *UserXpQuery {
	return &UserXpQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserXp},
		inters: c.Interceptors(),
	}
}

// Get returns a UserXp entity by its id.
func (c *UserXpClient) Get(ctx context.Context, id int) (*UserXp, error) {
	return c.Query().Where(userxp.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserXpClient) GetX(ctx context.Context, id int) *UserXp {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserXpClient) Hooks() []Hook {
	return c.hooks.UserXp
}

// Interceptors returns the client interceptors.
func (c *UserXpClient) Interceptors() []Interceptor {
	return c.inters.UserXp
}

func (c *UserXpClient) mutate(ctx context.Context, m *UserXpMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserXpCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserXpUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserXpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserXpDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserXp mutation op: %q", m.Op())
	}
}

// VocabClusterClient is a client for the VocabCluster schema.
type VocabClusterClient struct {
	config
}

// NewVocabClusterClient returns a client for the VocabCluster from the given config.
func NewVocabClusterClient(c config) *VocabClusterClient {
	return &VocabClusterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vocabcluster.Hooks(f(g(h())))`.
func (c *VocabClusterClient) Use(hooks ...Hook) {
	c.hooks.VocabCluster = append(c.hooks.VocabCluster, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vocabcluster.Intercept(f(g(h())))`.
func (c *VocabClusterClient) Intercept(interceptors ...Interceptor) {
	c.inters.VocabCluster = append(c.inters.VocabCluster, interceptors...)
}

// Create returns a builder for creating a VocabCluster entity.
func (c *VocabClusterClient) Create() *VocabClusterCreate {
	mutation := newVocabClusterMutation(c.config, OpCreate)
	return &VocabClusterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VocabCluster entities.
func (c *VocabClusterClient) CreateBulk(builders ...*VocabClusterCreate) *VocabClusterCreateBulk {
	return &VocabClusterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VocabClusterClient) MapCreateBulk(slice any, setFunc func(*VocabClusterCreate, int)) *VocabClusterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VocabClusterCreateBulk{err: fmt.Errorf("calling to VocabClusterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VocabClusterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VocabClusterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VocabCluster.
func (c *VocabClusterClient) Update() *VocabClusterUpdate {
	mutation := newVocabClusterMutation(c.config, OpUpdate)
	return &VocabClusterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VocabClusterClient) UpdateOne(vc *VocabCluster) *VocabClusterUpdateOne {
	mutation := newVocabClusterMutation(c.config, OpUpdateOne, withVocabCluster(vc))
	return &VocabClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VocabClusterClient) UpdateOneID(id int) *VocabClusterUpdateOne {
	mutation := newVocabClusterMutation(c.config, OpUpdateOne, withVocabClusterID(id))
	return &VocabClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VocabCluster.
func (c *VocabClusterClient) Delete() *VocabClusterDelete {
	mutation := newVocabClusterMutation(c.config, OpDelete)
	return &VocabClusterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VocabClusterClient) DeleteOne(vc *VocabCluster) *VocabClusterDeleteOne {
	return c.DeleteOneID(vc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VocabClusterClient) DeleteOneID(id int) *VocabClusterDeleteOne {
	builder := c.Delete().Where(vocabcluster.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VocabClusterDeleteOne{builder}
}

// Query returns a query builder for VocabCluster.
func (c *VocabClusterClient) Query() *VocabClusterQuery {
	return &VocabClusterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVocabCluster},
		inters: c.Interceptors(),
	}
}

// Get returns a VocabCluster entity by its id.
func (c *VocabClusterClient) Get(ctx context.Context, id int) (*VocabCluster, error) {
	return c.Query().Where(vocabcluster.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VocabClusterClient) GetX(ctx context.Context, id int) *VocabCluster {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VocabClusterClient) Hooks() []Hook {
	return c.hooks.VocabCluster
}

// Interceptors returns the client interceptors.
func (c *VocabClusterClient) Interceptors() []Interceptor {
	return c.inters.VocabCluster
}

func (c *VocabClusterClient) mutate(ctx context.Context, m *VocabClusterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VocabClusterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VocabClusterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VocabClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VocabClusterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VocabCluster mutation op: %q", m.Op())
	}
}

// VocabPackClient is a client for the VocabPack schema.
type VocabPackClient struct {
	config
}

// NewVocabPackClient returns a client for the VocabPack from the given config.
func NewVocabPackClient(c config) *VocabPackClient {
	return &VocabPackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vocabpack.Hooks(f(g(h())))`.
func (c *VocabPackClient) Use(hooks ...Hook) {
	c.hooks.VocabPack = append(c.hooks.VocabPack, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vocabpack.Intercept(f(g(h())))`.
func (c *VocabPackClient) Intercept(interceptors ...Interceptor) {
	c.inters.VocabPack = append(c.inters.VocabPack, interceptors...)
}

// Create returns a builder for creating a VocabPack entity.
func (c *VocabPackClient) Create() *VocabPackCreate {
	mutation := newVocabPackMutation(c.config, OpCreate)
	return &VocabPackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VocabPack entities.
func (c *VocabPackClient) CreateBulk(builders ...*VocabPackCreate) *VocabPackCreateBulk {
	return &VocabPackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VocabPackClient) MapCreateBulk(slice any, setFunc func(*VocabPackCreate, int)) *VocabPackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VocabPackCreateBulk{err: fmt.Errorf("calling to VocabPackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VocabPackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VocabPackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VocabPack.
func (c *VocabPackClient) Update() *VocabPackUpdate {
	mutation := newVocabPackMutation(c.config, OpUpdate)
	return &VocabPackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VocabPackClient) UpdateOne(vp *VocabPack) *VocabPackUpdateOne {
	mutation := newVocabPackMutation(c.config, OpUpdateOne, withVocabPack(vp))
	return &VocabPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VocabPackClient) UpdateOneID(id int) *VocabPackUpdateOne {
	mutation := newVocabPackMutation(c.config, OpUpdateOne, withVocabPackID(id))
	return &VocabPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VocabPack.
func (c *VocabPackClient) Delete() *VocabPackDelete {
	mutation := newVocabPackMutation(c.config, OpDelete)
	return &VocabPackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VocabPackClient) DeleteOne(vp *VocabPack) *VocabPackDeleteOne {
	return c.DeleteOneID(vp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VocabPackClient) DeleteOneID(id int) *VocabPackDeleteOne {
	builder := c.Delete().Where(vocabpack.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VocabPackDeleteOne{builder}
}

// Query returns a query builder for VocabPack.
func (c *VocabPackClient) Query() *VocabPackQuery {
	return &VocabPackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVocabPack},
		inters: c.Interceptors(),
	}
}

// Get returns a VocabPack entity by its id.
func (c *VocabPackClient) Get(ctx context.Context, id int) (*VocabPack, error) {
	return c.Query().Where(vocabpack.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VocabPackClient) GetX(ctx context.Context, id int) *VocabPack {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VocabPackClient) Hooks() []Hook {
	return c.hooks.VocabPack
}

// Interceptors returns the client interceptors.
func (c *VocabPackClient) Interceptors() []Interceptor {
	return c.inters.VocabPack
}

func (c *VocabPackClient) mutate(ctx context.Context, m *VocabPackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VocabPackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VocabPackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VocabPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VocabPackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VocabPack mutation op: %q", m.Op())
	}
}

// VocabSenseClient is a client for the VocabSense schema.
type VocabSenseClient struct {
	config
}

// NewVocabSenseClient returns a client for the VocabSense from the given config.
func NewVocabSenseClient(c config) *VocabSenseClient {
	return &VocabSenseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vocabsense.Hooks(f(g(h())))`.
func (c *VocabSenseClient) Use(hooks ...Hook) {
	c.hooks.VocabSense = append(c.hooks.VocabSense, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vocabsense.Intercept(f(g(h())))`.
func (c *VocabSenseClient) Intercept(interceptors ...Interceptor) {
	c.inters.VocabSense = append(c.inters.VocabSense, interceptors...)
}

// Create returns a builder for creating a VocabSense entity.
func (c *VocabSenseClient) Create() *VocabSenseCreate {
	mutation := newVocabSenseMutation(c.config, OpCreate)
	return &VocabSenseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VocabSense entities.
func (c *VocabSenseClient) CreateBulk(builders ...*VocabSenseCreate) *VocabSenseCreateBulk {
	return &VocabSenseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VocabSenseClient) MapCreateBulk(slice any, setFunc func(*VocabSenseCreate, int)) *VocabSenseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VocabSenseCreateBulk{err: fmt.Errorf("calling to VocabSenseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VocabSenseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VocabSenseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VocabSense.
func (c *VocabSenseClient) Update() *VocabSenseUpdate {
	mutation := newVocabSenseMutation(c.config, OpUpdate)
	return &VocabSenseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VocabSenseClient) UpdateOne(vs *VocabSense) *VocabSenseUpdateOne {
	mutation := newVocabSenseMutation(c.config, OpUpdateOne, withVocabSense(vs))
	return &VocabSenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VocabSenseClient) UpdateOneID(id int) *VocabSenseUpdateOne {
	mutation := newVocabSenseMutation(c.config, OpUpdateOne, withVocabSenseID(id))
	return &VocabSenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VocabSense.
func (c *VocabSenseClient) Delete() *VocabSenseDelete {
	mutation := newVocabSenseMutation(c.config, OpDelete)
	return &VocabSenseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VocabSenseClient) DeleteOne(vs *VocabSense) *VocabSenseDeleteOne {
	return c.DeleteOneID(vs.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VocabSenseClient) DeleteOneID(id int) *VocabSenseDeleteOne {
	builder := c.Delete().Where(vocabsense.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VocabSenseDeleteOne{builder}
}

// Query returns a query builder for VocabSense.
func (c *VocabSenseClient) Query() *VocabSenseQuery {
	return &VocabSenseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVocabSense},
		inters: c.Interceptors(),
	}
}

// Get returns a VocabSense entity by its id.
func (c *VocabSenseClient) Get(ctx context.Context, id int) (*VocabSense, error) {
	return c.Query().Where(vocabsense.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VocabSenseClient) GetX(ctx context.Context, id int) *VocabSense {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VocabSenseClient) Hooks() []Hook {
	return c.hooks.VocabSense
}

// Interceptors returns the client interceptors.
func (c *VocabSenseClient) Interceptors() []Interceptor {
	return c.inters.VocabSense
}

func (c *VocabSenseClient) mutate(ctx context.Context, m *VocabSenseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VocabSenseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VocabSenseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VocabSenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VocabSenseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VocabSense mutation op: %q", m.Op())
	}
}

// XpEventClient is a client for the XpEvent schema.
type XpEventClient struct {
	config
}

// NewXpEventClient returns a client for the XpEvent from the given config.
func NewXpEventClient(c config) *XpEventClient {
	return &XpEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `xpevent.Hooks(f(g(h())))`.
func (c *XpEventClient) Use(hooks ...Hook) {
	c.hooks.XpEvent = append(c.hooks.XpEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `xpevent.Intercept(f(g(h())))`.
func (c *XpEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.XpEvent = append(c.inters.XpEvent, interceptors...)
}

// Create returns a builder for creating a XpEvent entity.
func (c *XpEventClient) Create() *XpEventCreate {
	mutation := newXpEventMutation(c.config, OpCreate)
	return &XpEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of XpEvent entities.
func (c *XpEventClient) CreateBulk(builders ...*XpEventCreate) *XpEventCreateBulk {
	return &XpEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *XpEventClient) MapCreateBulk(slice any, setFunc func(*XpEventCreate, int)) *XpEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &XpEventCreateBulk{err: fmt.Errorf("calling to XpEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*XpEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &XpEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for XpEvent.
func (c *XpEventClient) Update() *XpEventUpdate {
	mutation := newXpEventMutation(c.config, OpUpdate)
	return &XpEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *XpEventClient) UpdateOne(xe *XpEvent) *XpEventUpdateOne {
	mutation := newXpEventMutation(c.config, OpUpdateOne, withXpEvent(xe))
	return &XpEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *XpEventClient) UpdateOneID(id int) *XpEventUpdateOne {
	mutation := newXpEventMutation(c.config, OpUpdateOne, withXpEventID(id))
	return &XpEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for XpEvent.
func (c *XpEventClient) Delete() *XpEventDelete {
	mutation := newXpEventMutation(c.config, OpDelete)
	return &XpEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *XpEventClient) DeleteOne(xe *XpEvent) *XpEventDeleteOne {
	return c.DeleteOneID(xe.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *XpEventClient) DeleteOneID(id int) *XpEventDeleteOne {
	builder := c.Delete().Where(xpevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &XpEventDeleteOne{builder}
}

// Query returns a query builder for XpEvent.
func (c *XpEventClient) Query() *XpEventQuery {
	return &XpEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeXpEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a XpEvent entity by its id.
func (c *XpEventClient) Get(ctx context.Context, id int) (*XpEvent, error) {
	return c.Query().Where(xpevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *XpEventClient) GetX(ctx context.Context, id int) *XpEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *XpEventClient) Hooks() []Hook {
	return c.hooks.XpEvent
}

// Interceptors returns the client interceptors.
func (c *XpEventClient) Interceptors() []Interceptor {
	return c.inters.XpEvent
}

func (c *XpEventClient) mutate(ctx context.Context, m *XpEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&XpEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&XpEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&XpEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&XpEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown XpEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, Badge, IrregularVerb, UnitKnowledge, UserBadge, UserXp,
		VocabCluster, VocabPack, VocabSense, XpEvent []ent.Hook
	}
	inters struct {
		AnswerEvent, Badge, IrregularVerb, UnitKnowledge, UserBadge, UserXp,
		VocabCluster, VocabPack, VocabSense, XpEvent []ent.Interceptor
	}
)
