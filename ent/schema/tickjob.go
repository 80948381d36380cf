package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TickJob holds the schema definition for the TickJob entity: one durable
// queue job. Claiming uses FOR UPDATE SKIP LOCKED so multiple daemons can
// drain the same queue.
type TickJob struct {
	ent.Schema
}

// Fields of the TickJob.
func (TickJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("queue"),
		field.JSON("payload", map[string]interface{}{}),
		field.String("singleton_key").
			Optional().
			Comment("At most one pending job per (queue, singleton_key)"),
		field.Enum("state").
			Values("pending", "active", "completed", "failed").
			Default("pending"),
		field.Int("expire_in_seconds").
			Default(0).
			Comment("Visibility window before an active job is re-queued"),
		field.Int("attempts").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the TickJob.
func (TickJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "state", "created_at"),
		// Singleton guarantee; see the matching partial index in the
		// initial migration.
		index.Fields("queue", "singleton_key").
			Unique().
			Annotations(entsql.IndexWhere("state = 'pending' AND singleton_key <> ''")),
	}
}
