// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/graphevent"
	"github.com/agx-dev/agx/ent/predicate"
	"github.com/agx-dev/agx/ent/tickjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExecutionGraph = "ExecutionGraph"
	TypeGraphEvent     = "GraphEvent"
	TypeTickJob        = "TickJob"
)

// ExecutionGraphMutation represents an operation that mutates the ExecutionGraph nodes in the graph.
type ExecutionGraphMutation struct {
	config
	op               Op
	typ              string
	id               *string
	task_id          *string
	graph_version    *int64
	addgraph_version *int64
	mode             *executiongraph.Mode
	doc              *map[string]interface{}
	status           *executiongraph.Status
	in_progress      *bool
	created_at       *time.Time
	updated_at       *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	timed_out_at     *time.Time
	clearedFields    map[string]struct{}
	events           map[string]struct{}
	removedevents    map[string]struct{}
	clearedevents    bool
	done             bool
	oldValue         func(context.Context) (*ExecutionGraph, error)
	predicates       []predicate.ExecutionGraph
}

var _ ent.Mutation = (*ExecutionGraphMutation)(nil)

// executiongraphOption allows management of the mutation configuration using functional options.
type executiongraphOption func(*ExecutionGraphMutation)

// newExecutionGraphMutation creates new mutation for the ExecutionGraph entity.
func newExecutionGraphMutation(c config, op Op, opts ...executiongraphOption) *ExecutionGraphMutation {
	m := &ExecutionGraphMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionGraph,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionGraphID sets the ID field of the mutation.
func withExecutionGraphID(id string) executiongraphOption {
	return func(m *ExecutionGraphMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionGraph
		)
		m.oldValue = func(ctx context.Context) (*ExecutionGraph, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionGraph.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionGraph sets the old ExecutionGraph of the mutation.
func withExecutionGraph(node *ExecutionGraph) executiongraphOption {
	return func(m *ExecutionGraphMutation) {
		m.oldValue = func(context.Context) (*ExecutionGraph, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionGraphMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionGraphMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionGraph entities.
func (m *ExecutionGraphMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionGraphMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionGraphMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionGraph.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ExecutionGraphMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ExecutionGraphMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ExecutionGraphMutation) ResetTaskID() {
	m.task_id = nil
}

// SetGraphVersion sets the "graph_version" field.
func (m *ExecutionGraphMutation) SetGraphVersion(i int64) {
	m.graph_version = &i
	m.addgraph_version = nil
}

// GraphVersion returns the value of the "graph_version" field in the mutation.
func (m *ExecutionGraphMutation) GraphVersion() (r int64, exists bool) {
	v := m.graph_version
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphVersion returns the old "graph_version" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldGraphVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphVersion: %w", err)
	}
	return oldValue.GraphVersion, nil
}

// AddGraphVersion adds i to the "graph_version" field.
func (m *ExecutionGraphMutation) AddGraphVersion(i int64) {
	if m.addgraph_version != nil {
		*m.addgraph_version += i
	} else {
		m.addgraph_version = &i
	}
}

// AddedGraphVersion returns the value that was added to the "graph_version" field in this mutation.
func (m *ExecutionGraphMutation) AddedGraphVersion() (r int64, exists bool) {
	v := m.addgraph_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetGraphVersion resets all changes to the "graph_version" field.
func (m *ExecutionGraphMutation) ResetGraphVersion() {
	m.graph_version = nil
	m.addgraph_version = nil
}

// SetMode sets the "mode" field.
func (m *ExecutionGraphMutation) SetMode(e executiongraph.Mode) {
	m.mode = &e
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ExecutionGraphMutation) Mode() (r executiongraph.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldMode(ctx context.Context) (v executiongraph.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ExecutionGraphMutation) ResetMode() {
	m.mode = nil
}

// SetDoc sets the "doc" field.
func (m *ExecutionGraphMutation) SetDoc(value map[string]interface{}) {
	m.doc = &value
}

// Doc returns the value of the "doc" field in the mutation.
func (m *ExecutionGraphMutation) Doc() (r map[string]interface{}, exists bool) {
	v := m.doc
	if v == nil {
		return
	}
	return *v, true
}

// OldDoc returns the old "doc" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldDoc(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoc: %w", err)
	}
	return oldValue.Doc, nil
}

// ResetDoc resets all changes to the "doc" field.
func (m *ExecutionGraphMutation) ResetDoc() {
	m.doc = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionGraphMutation) SetStatus(e executiongraph.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionGraphMutation) Status() (r executiongraph.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldStatus(ctx context.Context) (v executiongraph.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionGraphMutation) ResetStatus() {
	m.status = nil
}

// SetInProgress sets the "in_progress" field.
func (m *ExecutionGraphMutation) SetInProgress(b bool) {
	m.in_progress = &b
}

// InProgress returns the value of the "in_progress" field in the mutation.
func (m *ExecutionGraphMutation) InProgress() (r bool, exists bool) {
	v := m.in_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldInProgress returns the old "in_progress" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldInProgress(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInProgress: %w", err)
	}
	return oldValue.InProgress, nil
}

// ResetInProgress resets all changes to the "in_progress" field.
func (m *ExecutionGraphMutation) ResetInProgress() {
	m.in_progress = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionGraphMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionGraphMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionGraphMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExecutionGraphMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExecutionGraphMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExecutionGraphMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionGraphMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionGraphMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExecutionGraphMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[executiongraph.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExecutionGraphMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[executiongraph.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionGraphMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, executiongraph.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionGraphMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionGraphMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionGraphMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[executiongraph.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionGraphMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[executiongraph.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionGraphMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, executiongraph.FieldCompletedAt)
}

// SetTimedOutAt sets the "timed_out_at" field.
func (m *ExecutionGraphMutation) SetTimedOutAt(t time.Time) {
	m.timed_out_at = &t
}

// TimedOutAt returns the value of the "timed_out_at" field in the mutation.
func (m *ExecutionGraphMutation) TimedOutAt() (r time.Time, exists bool) {
	v := m.timed_out_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTimedOutAt returns the old "timed_out_at" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldTimedOutAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimedOutAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimedOutAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimedOutAt: %w", err)
	}
	return oldValue.TimedOutAt, nil
}

// ClearTimedOutAt clears the value of the "timed_out_at" field.
func (m *ExecutionGraphMutation) ClearTimedOutAt() {
	m.timed_out_at = nil
	m.clearedFields[executiongraph.FieldTimedOutAt] = struct{}{}
}

// TimedOutAtCleared returns if the "timed_out_at" field was cleared in this mutation.
func (m *ExecutionGraphMutation) TimedOutAtCleared() bool {
	_, ok := m.clearedFields[executiongraph.FieldTimedOutAt]
	return ok
}

// ResetTimedOutAt resets all changes to the "timed_out_at" field.
func (m *ExecutionGraphMutation) ResetTimedOutAt() {
	m.timed_out_at = nil
	delete(m.clearedFields, executiongraph.FieldTimedOutAt)
}

// AddEventIDs adds the "events" edge to the GraphEvent entity by ids.
func (m *ExecutionGraphMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the GraphEvent entity.
func (m *ExecutionGraphMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the GraphEvent entity was cleared.
func (m *ExecutionGraphMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the GraphEvent entity by IDs.
func (m *ExecutionGraphMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the GraphEvent entity.
func (m *ExecutionGraphMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ExecutionGraphMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ExecutionGraphMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the ExecutionGraphMutation builder.
func (m *ExecutionGraphMutation) Where(ps ...predicate.ExecutionGraph) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionGraphMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionGraphMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionGraph, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionGraphMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionGraphMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionGraph).
func (m *ExecutionGraphMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionGraphMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.task_id != nil {
		fields = append(fields, executiongraph.FieldTaskID)
	}
	if m.graph_version != nil {
		fields = append(fields, executiongraph.FieldGraphVersion)
	}
	if m.mode != nil {
		fields = append(fields, executiongraph.FieldMode)
	}
	if m.doc != nil {
		fields = append(fields, executiongraph.FieldDoc)
	}
	if m.status != nil {
		fields = append(fields, executiongraph.FieldStatus)
	}
	if m.in_progress != nil {
		fields = append(fields, executiongraph.FieldInProgress)
	}
	if m.created_at != nil {
		fields = append(fields, executiongraph.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, executiongraph.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, executiongraph.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, executiongraph.FieldCompletedAt)
	}
	if m.timed_out_at != nil {
		fields = append(fields, executiongraph.FieldTimedOutAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionGraphMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executiongraph.FieldTaskID:
		return m.TaskID()
	case executiongraph.FieldGraphVersion:
		return m.GraphVersion()
	case executiongraph.FieldMode:
		return m.Mode()
	case executiongraph.FieldDoc:
		return m.Doc()
	case executiongraph.FieldStatus:
		return m.Status()
	case executiongraph.FieldInProgress:
		return m.InProgress()
	case executiongraph.FieldCreatedAt:
		return m.CreatedAt()
	case executiongraph.FieldUpdatedAt:
		return m.UpdatedAt()
	case executiongraph.FieldStartedAt:
		return m.StartedAt()
	case executiongraph.FieldCompletedAt:
		return m.CompletedAt()
	case executiongraph.FieldTimedOutAt:
		return m.TimedOutAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionGraphMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executiongraph.FieldTaskID:
		return m.OldTaskID(ctx)
	case executiongraph.FieldGraphVersion:
		return m.OldGraphVersion(ctx)
	case executiongraph.FieldMode:
		return m.OldMode(ctx)
	case executiongraph.FieldDoc:
		return m.OldDoc(ctx)
	case executiongraph.FieldStatus:
		return m.OldStatus(ctx)
	case executiongraph.FieldInProgress:
		return m.OldInProgress(ctx)
	case executiongraph.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case executiongraph.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case executiongraph.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case executiongraph.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case executiongraph.FieldTimedOutAt:
		return m.OldTimedOutAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionGraph field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionGraphMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executiongraph.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case executiongraph.FieldGraphVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphVersion(v)
		return nil
	case executiongraph.FieldMode:
		v, ok := value.(executiongraph.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case executiongraph.FieldDoc:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoc(v)
		return nil
	case executiongraph.FieldStatus:
		v, ok := value.(executiongraph.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executiongraph.FieldInProgress:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInProgress(v)
		return nil
	case executiongraph.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case executiongraph.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case executiongraph.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case executiongraph.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case executiongraph.FieldTimedOutAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimedOutAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionGraphMutation) AddedFields() []string {
	var fields []string
	if m.addgraph_version != nil {
		fields = append(fields, executiongraph.FieldGraphVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionGraphMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executiongraph.FieldGraphVersion:
		return m.AddedGraphVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionGraphMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executiongraph.FieldGraphVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGraphVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionGraphMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executiongraph.FieldStartedAt) {
		fields = append(fields, executiongraph.FieldStartedAt)
	}
	if m.FieldCleared(executiongraph.FieldCompletedAt) {
		fields = append(fields, executiongraph.FieldCompletedAt)
	}
	if m.FieldCleared(executiongraph.FieldTimedOutAt) {
		fields = append(fields, executiongraph.FieldTimedOutAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionGraphMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionGraphMutation) ClearField(name string) error {
	switch name {
	case executiongraph.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case executiongraph.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case executiongraph.FieldTimedOutAt:
		m.ClearTimedOutAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionGraphMutation) ResetField(name string) error {
	switch name {
	case executiongraph.FieldTaskID:
		m.ResetTaskID()
		return nil
	case executiongraph.FieldGraphVersion:
		m.ResetGraphVersion()
		return nil
	case executiongraph.FieldMode:
		m.ResetMode()
		return nil
	case executiongraph.FieldDoc:
		m.ResetDoc()
		return nil
	case executiongraph.FieldStatus:
		m.ResetStatus()
		return nil
	case executiongraph.FieldInProgress:
		m.ResetInProgress()
		return nil
	case executiongraph.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case executiongraph.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case executiongraph.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case executiongraph.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case executiongraph.FieldTimedOutAt:
		m.ResetTimedOutAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionGraphMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, executiongraph.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionGraphMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executiongraph.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionGraphMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, executiongraph.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionGraphMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case executiongraph.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionGraphMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, executiongraph.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionGraphMutation) EdgeCleared(name string) bool {
	switch name {
	case executiongraph.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionGraphMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ExecutionGraph unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionGraphMutation) ResetEdge(name string) error {
	switch name {
	case executiongraph.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph edge %s", name)
}

// GraphEventMutation represents an operation that mutates the GraphEvent nodes in the graph.
type GraphEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	event_type    *graphevent.EventType
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	graph         *string
	clearedgraph  bool
	done          bool
	oldValue      func(context.Context) (*GraphEvent, error)
	predicates    []predicate.GraphEvent
}

var _ ent.Mutation = (*GraphEventMutation)(nil)

// grapheventOption allows management of the mutation configuration using functional options.
type grapheventOption func(*GraphEventMutation)

// newGraphEventMutation creates new mutation for the GraphEvent entity.
func newGraphEventMutation(c config, op Op, opts ...grapheventOption) *GraphEventMutation {
	m := &GraphEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphEventID sets the ID field of the mutation.
func withGraphEventID(id string) grapheventOption {
	return func(m *GraphEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphEvent
		)
		m.oldValue = func(ctx context.Context) (*GraphEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphEvent sets the old GraphEvent of the mutation.
func withGraphEvent(node *GraphEvent) grapheventOption {
	return func(m *GraphEventMutation) {
		m.oldValue = func(context.Context) (*GraphEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GraphEvent entities.
func (m *GraphEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGraphID sets the "graph_id" field.
func (m *GraphEventMutation) SetGraphID(s string) {
	m.graph = &s
}

// GraphID returns the value of the "graph_id" field in the mutation.
func (m *GraphEventMutation) GraphID() (r string, exists bool) {
	v := m.graph
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphID returns the old "graph_id" field's value of the GraphEvent entity.
// If the GraphEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEventMutation) OldGraphID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphID: %w", err)
	}
	return oldValue.GraphID, nil
}

// ResetGraphID resets all changes to the "graph_id" field.
func (m *GraphEventMutation) ResetGraphID() {
	m.graph = nil
}

// SetEventType sets the "event_type" field.
func (m *GraphEventMutation) SetEventType(gt graphevent.EventType) {
	m.event_type = &gt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *GraphEventMutation) EventType() (r graphevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the GraphEvent entity.
// If the GraphEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEventMutation) OldEventType(ctx context.Context) (v graphevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *GraphEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *GraphEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *GraphEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the GraphEvent entity.
// If the GraphEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *GraphEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GraphEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GraphEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GraphEvent entity.
// If the GraphEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GraphEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearGraph clears the "graph" edge to the ExecutionGraph entity.
func (m *GraphEventMutation) ClearGraph() {
	m.clearedgraph = true
	m.clearedFields[graphevent.FieldGraphID] = struct{}{}
}

// GraphCleared reports if the "graph" edge to the ExecutionGraph entity was cleared.
func (m *GraphEventMutation) GraphCleared() bool {
	return m.clearedgraph
}

// GraphIDs returns the "graph" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GraphID instead. It exists only for internal usage by the builders.
func (m *GraphEventMutation) GraphIDs() (ids []string) {
	if id := m.graph; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGraph resets all changes to the "graph" edge.
func (m *GraphEventMutation) ResetGraph() {
	m.graph = nil
	m.clearedgraph = false
}

// Where appends a list predicates to the GraphEventMutation builder.
func (m *GraphEventMutation) Where(ps ...predicate.GraphEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphEvent).
func (m *GraphEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.graph != nil {
		fields = append(fields, graphevent.FieldGraphID)
	}
	if m.event_type != nil {
		fields = append(fields, graphevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, graphevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, graphevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphevent.FieldGraphID:
		return m.GraphID()
	case graphevent.FieldEventType:
		return m.EventType()
	case graphevent.FieldPayload:
		return m.Payload()
	case graphevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphevent.FieldGraphID:
		return m.OldGraphID(ctx)
	case graphevent.FieldEventType:
		return m.OldEventType(ctx)
	case graphevent.FieldPayload:
		return m.OldPayload(ctx)
	case graphevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GraphEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphevent.FieldGraphID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphID(v)
		return nil
	case graphevent.FieldEventType:
		v, ok := value.(graphevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case graphevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case graphevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GraphEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GraphEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GraphEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphEventMutation) ResetField(name string) error {
	switch name {
	case graphevent.FieldGraphID:
		m.ResetGraphID()
		return nil
	case graphevent.FieldEventType:
		m.ResetEventType()
		return nil
	case graphevent.FieldPayload:
		m.ResetPayload()
		return nil
	case graphevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GraphEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.graph != nil {
		edges = append(edges, graphevent.EdgeGraph)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case graphevent.EdgeGraph:
		if id := m.graph; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgraph {
		edges = append(edges, graphevent.EdgeGraph)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphEventMutation) EdgeCleared(name string) bool {
	switch name {
	case graphevent.EdgeGraph:
		return m.clearedgraph
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphEventMutation) ClearEdge(name string) error {
	switch name {
	case graphevent.EdgeGraph:
		m.ClearGraph()
		return nil
	}
	return fmt.Errorf("unknown GraphEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphEventMutation) ResetEdge(name string) error {
	switch name {
	case graphevent.EdgeGraph:
		m.ResetGraph()
		return nil
	}
	return fmt.Errorf("unknown GraphEvent edge %s", name)
}

// TickJobMutation represents an operation that mutates the TickJob nodes in the graph.
type TickJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	queue                *string
	payload              *map[string]interface{}
	singleton_key        *string
	state                *tickjob.State
	expire_in_seconds    *int
	addexpire_in_seconds *int
	attempts             *int
	addattempts          *int
	created_at           *time.Time
	started_at           *time.Time
	finished_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*TickJob, error)
	predicates           []predicate.TickJob
}

var _ ent.Mutation = (*TickJobMutation)(nil)

// tickjobOption allows management of the mutation configuration using functional options.
type tickjobOption func(*TickJobMutation)

// newTickJobMutation creates new mutation for the TickJob entity.
func newTickJobMutation(c config, op Op, opts ...tickjobOption) *TickJobMutation {
	m := &TickJobMutation{
		config:        c,
		op:            op,
		typ:           TypeTickJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTickJobID sets the ID field of the mutation.
func withTickJobID(id string) tickjobOption {
	return func(m *TickJobMutation) {
		var (
			err   error
			once  sync.Once
			value *TickJob
		)
		m.oldValue = func(ctx context.Context) (*TickJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TickJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTickJob sets the old TickJob of the mutation.
func withTickJob(node *TickJob) tickjobOption {
	return func(m *TickJobMutation) {
		m.oldValue = func(context.Context) (*TickJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TickJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TickJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TickJob entities.
func (m *TickJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TickJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TickJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TickJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *TickJobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *TickJobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *TickJobMutation) ResetQueue() {
	m.queue = nil
}

// SetPayload sets the "payload" field.
func (m *TickJobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TickJobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *TickJobMutation) ResetPayload() {
	m.payload = nil
}

// SetSingletonKey sets the "singleton_key" field.
func (m *TickJobMutation) SetSingletonKey(s string) {
	m.singleton_key = &s
}

// SingletonKey returns the value of the "singleton_key" field in the mutation.
func (m *TickJobMutation) SingletonKey() (r string, exists bool) {
	v := m.singleton_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSingletonKey returns the old "singleton_key" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldSingletonKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSingletonKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSingletonKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSingletonKey: %w", err)
	}
	return oldValue.SingletonKey, nil
}

// ClearSingletonKey clears the value of the "singleton_key" field.
func (m *TickJobMutation) ClearSingletonKey() {
	m.singleton_key = nil
	m.clearedFields[tickjob.FieldSingletonKey] = struct{}{}
}

// SingletonKeyCleared returns if the "singleton_key" field was cleared in this mutation.
func (m *TickJobMutation) SingletonKeyCleared() bool {
	_, ok := m.clearedFields[tickjob.FieldSingletonKey]
	return ok
}

// ResetSingletonKey resets all changes to the "singleton_key" field.
func (m *TickJobMutation) ResetSingletonKey() {
	m.singleton_key = nil
	delete(m.clearedFields, tickjob.FieldSingletonKey)
}

// SetState sets the "state" field.
func (m *TickJobMutation) SetState(t tickjob.State) {
	m.state = &t
}

// State returns the value of the "state" field in the mutation.
func (m *TickJobMutation) State() (r tickjob.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldState(ctx context.Context) (v tickjob.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *TickJobMutation) ResetState() {
	m.state = nil
}

// SetExpireInSeconds sets the "expire_in_seconds" field.
func (m *TickJobMutation) SetExpireInSeconds(i int) {
	m.expire_in_seconds = &i
	m.addexpire_in_seconds = nil
}

// ExpireInSeconds returns the value of the "expire_in_seconds" field in the mutation.
func (m *TickJobMutation) ExpireInSeconds() (r int, exists bool) {
	v := m.expire_in_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldExpireInSeconds returns the old "expire_in_seconds" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldExpireInSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpireInSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpireInSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpireInSeconds: %w", err)
	}
	return oldValue.ExpireInSeconds, nil
}

// AddExpireInSeconds adds i to the "expire_in_seconds" field.
func (m *TickJobMutation) AddExpireInSeconds(i int) {
	if m.addexpire_in_seconds != nil {
		*m.addexpire_in_seconds += i
	} else {
		m.addexpire_in_seconds = &i
	}
}

// AddedExpireInSeconds returns the value that was added to the "expire_in_seconds" field in this mutation.
func (m *TickJobMutation) AddedExpireInSeconds() (r int, exists bool) {
	v := m.addexpire_in_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpireInSeconds resets all changes to the "expire_in_seconds" field.
func (m *TickJobMutation) ResetExpireInSeconds() {
	m.expire_in_seconds = nil
	m.addexpire_in_seconds = nil
}

// SetAttempts sets the "attempts" field.
func (m *TickJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TickJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TickJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TickJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TickJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TickJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TickJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TickJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TickJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TickJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TickJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[tickjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TickJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[tickjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TickJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, tickjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *TickJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *TickJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the TickJob entity.
// If the TickJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TickJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *TickJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[tickjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *TickJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[tickjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *TickJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, tickjob.FieldFinishedAt)
}

// Where appends a list predicates to the TickJobMutation builder.
func (m *TickJobMutation) Where(ps ...predicate.TickJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TickJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TickJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TickJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TickJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TickJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TickJob).
func (m *TickJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TickJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.queue != nil {
		fields = append(fields, tickjob.FieldQueue)
	}
	if m.payload != nil {
		fields = append(fields, tickjob.FieldPayload)
	}
	if m.singleton_key != nil {
		fields = append(fields, tickjob.FieldSingletonKey)
	}
	if m.state != nil {
		fields = append(fields, tickjob.FieldState)
	}
	if m.expire_in_seconds != nil {
		fields = append(fields, tickjob.FieldExpireInSeconds)
	}
	if m.attempts != nil {
		fields = append(fields, tickjob.FieldAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, tickjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, tickjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, tickjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TickJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tickjob.FieldQueue:
		return m.Queue()
	case tickjob.FieldPayload:
		return m.Payload()
	case tickjob.FieldSingletonKey:
		return m.SingletonKey()
	case tickjob.FieldState:
		return m.State()
	case tickjob.FieldExpireInSeconds:
		return m.ExpireInSeconds()
	case tickjob.FieldAttempts:
		return m.Attempts()
	case tickjob.FieldCreatedAt:
		return m.CreatedAt()
	case tickjob.FieldStartedAt:
		return m.StartedAt()
	case tickjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TickJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tickjob.FieldQueue:
		return m.OldQueue(ctx)
	case tickjob.FieldPayload:
		return m.OldPayload(ctx)
	case tickjob.FieldSingletonKey:
		return m.OldSingletonKey(ctx)
	case tickjob.FieldState:
		return m.OldState(ctx)
	case tickjob.FieldExpireInSeconds:
		return m.OldExpireInSeconds(ctx)
	case tickjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case tickjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tickjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case tickjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TickJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TickJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tickjob.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case tickjob.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case tickjob.FieldSingletonKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSingletonKey(v)
		return nil
	case tickjob.FieldState:
		v, ok := value.(tickjob.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case tickjob.FieldExpireInSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpireInSeconds(v)
		return nil
	case tickjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case tickjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tickjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case tickjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TickJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TickJobMutation) AddedFields() []string {
	var fields []string
	if m.addexpire_in_seconds != nil {
		fields = append(fields, tickjob.FieldExpireInSeconds)
	}
	if m.addattempts != nil {
		fields = append(fields, tickjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TickJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tickjob.FieldExpireInSeconds:
		return m.AddedExpireInSeconds()
	case tickjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TickJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tickjob.FieldExpireInSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpireInSeconds(v)
		return nil
	case tickjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown TickJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TickJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tickjob.FieldSingletonKey) {
		fields = append(fields, tickjob.FieldSingletonKey)
	}
	if m.FieldCleared(tickjob.FieldStartedAt) {
		fields = append(fields, tickjob.FieldStartedAt)
	}
	if m.FieldCleared(tickjob.FieldFinishedAt) {
		fields = append(fields, tickjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TickJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TickJobMutation) ClearField(name string) error {
	switch name {
	case tickjob.FieldSingletonKey:
		m.ClearSingletonKey()
		return nil
	case tickjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case tickjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown TickJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TickJobMutation) ResetField(name string) error {
	switch name {
	case tickjob.FieldQueue:
		m.ResetQueue()
		return nil
	case tickjob.FieldPayload:
		m.ResetPayload()
		return nil
	case tickjob.FieldSingletonKey:
		m.ResetSingletonKey()
		return nil
	case tickjob.FieldState:
		m.ResetState()
		return nil
	case tickjob.FieldExpireInSeconds:
		m.ResetExpireInSeconds()
		return nil
	case tickjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case tickjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tickjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case tickjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown TickJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TickJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TickJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TickJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TickJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TickJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TickJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TickJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TickJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TickJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TickJob edge %s", name)
}
