package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionGraph holds the schema definition for the ExecutionGraph entity.
// The graph body (nodes, edges, policy, done criteria) is stored as one
// JSON document; the columns extracted here exist for querying and for the
// optimistic version guard.
type ExecutionGraph struct {
	ent.Schema
}

// Fields of the ExecutionGraph.
func (ExecutionGraph) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("graph_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Comment("Cloud task this graph plans for"),
		field.Int64("graph_version").
			Default(1).
			Comment("Bumped by exactly one on every successful replace"),
		field.Enum("mode").
			Values("SIMPLE", "PROJECT").
			Default("SIMPLE"),
		field.JSON("doc", map[string]interface{}{}).
			Comment("Full graph document: nodes, edges, policy, done criteria"),
		field.Enum("status").
			Values("in_progress", "completed", "failed", "timed_out").
			Default("in_progress"),
		field.Bool("in_progress").
			Default(true).
			Comment("Denormalized from node statuses for recovery listing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("timed_out_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ExecutionGraph.
func (ExecutionGraph) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", GraphEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ExecutionGraph.
func (ExecutionGraph) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("status"),
		index.Fields("in_progress").
			Annotations(entsql.IndexWhere("in_progress")),
	}
}
