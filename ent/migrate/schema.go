// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExecutionGraphsColumns holds the columns for the "execution_graphs" table.
	ExecutionGraphsColumns = []*schema.Column{
		{Name: "graph_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "graph_version", Type: field.TypeInt64, Default: 1},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"SIMPLE", "PROJECT"}, Default: "SIMPLE"},
		{Name: "doc", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "failed", "timed_out"}, Default: "in_progress"},
		{Name: "in_progress", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "timed_out_at", Type: field.TypeTime, Nullable: true},
	}
	// ExecutionGraphsTable holds the schema information for the "execution_graphs" table.
	ExecutionGraphsTable = &schema.Table{
		Name:       "execution_graphs",
		Columns:    ExecutionGraphsColumns,
		PrimaryKey: []*schema.Column{ExecutionGraphsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executiongraph_task_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionGraphsColumns[1]},
			},
			{
				Name:    "executiongraph_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionGraphsColumns[5]},
			},
			{
				Name:    "executiongraph_in_progress",
				Unique:  false,
				Columns: []*schema.Column{ExecutionGraphsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "in_progress",
				},
			},
		},
	}
	// GraphEventsColumns holds the columns for the "graph_events" table.
	GraphEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"node_status", "budget_consumed"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "graph_id", Type: field.TypeString},
	}
	// GraphEventsTable holds the schema information for the "graph_events" table.
	GraphEventsTable = &schema.Table{
		Name:       "graph_events",
		Columns:    GraphEventsColumns,
		PrimaryKey: []*schema.Column{GraphEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "graph_events_execution_graphs_events",
				Columns:    []*schema.Column{GraphEventsColumns[4]},
				RefColumns: []*schema.Column{ExecutionGraphsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "graphevent_graph_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GraphEventsColumns[4], GraphEventsColumns[3]},
			},
		},
	}
	// TickJobsColumns holds the columns for the "tick_jobs" table.
	TickJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "singleton_key", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed"}, Default: "pending"},
		{Name: "expire_in_seconds", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// TickJobsTable holds the schema information for the "tick_jobs" table.
	TickJobsTable = &schema.Table{
		Name:       "tick_jobs",
		Columns:    TickJobsColumns,
		PrimaryKey: []*schema.Column{TickJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tickjob_queue_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{TickJobsColumns[1], TickJobsColumns[4], TickJobsColumns[7]},
			},
			{
				Name:    "tickjob_queue_singleton_key",
				Unique:  true,
				Columns: []*schema.Column{TickJobsColumns[1], TickJobsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "state = 'pending' AND singleton_key <> ''",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExecutionGraphsTable,
		GraphEventsTable,
		TickJobsTable,
	}
)

func init() {
	GraphEventsTable.ForeignKeys[0].RefTable = ExecutionGraphsTable
}
