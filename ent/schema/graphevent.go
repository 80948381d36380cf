package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphEvent holds the schema definition for the GraphEvent entity: one
// append-only record per node status change or budget consumption.
type GraphEvent struct {
	ent.Schema
}

// Fields of the GraphEvent.
func (GraphEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("graph_id"),
		field.Enum("event_type").
			Values("node_status", "budget_consumed"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("The full event record, including the timestamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the GraphEvent.
func (GraphEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("graph", ExecutionGraph.Type).
			Ref("events").
			Field("graph_id").
			Unique().
			Required(),
	}
}

// Indexes of the GraphEvent.
func (GraphEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("graph_id", "created_at"),
	}
}
