// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/ent/graphevent"
	"github.com/agx-dev/agx/ent/schema"
	"github.com/agx-dev/agx/ent/tickjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	executiongraphFields := schema.ExecutionGraph{}.Fields()
	_ = executiongraphFields
	// executiongraphDescGraphVersion is the schema descriptor for graph_version field.
	executiongraphDescGraphVersion := executiongraphFields[2].Descriptor()
	// executiongraph.DefaultGraphVersion holds the default value on creation for the graph_version field.
	executiongraph.DefaultGraphVersion = executiongraphDescGraphVersion.Default.(int64)
	// executiongraphDescInProgress is the schema descriptor for in_progress field.
	executiongraphDescInProgress := executiongraphFields[6].Descriptor()
	// executiongraph.DefaultInProgress holds the default value on creation for the in_progress field.
	executiongraph.DefaultInProgress = executiongraphDescInProgress.Default.(bool)
	// executiongraphDescCreatedAt is the schema descriptor for created_at field.
	executiongraphDescCreatedAt := executiongraphFields[7].Descriptor()
	// executiongraph.DefaultCreatedAt holds the default value on creation for the created_at field.
	executiongraph.DefaultCreatedAt = executiongraphDescCreatedAt.Default.(func() time.Time)
	// executiongraphDescUpdatedAt is the schema descriptor for updated_at field.
	executiongraphDescUpdatedAt := executiongraphFields[8].Descriptor()
	// executiongraph.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	executiongraph.DefaultUpdatedAt = executiongraphDescUpdatedAt.Default.(func() time.Time)
	grapheventFields := schema.GraphEvent{}.Fields()
	_ = grapheventFields
	// grapheventDescCreatedAt is the schema descriptor for created_at field.
	grapheventDescCreatedAt := grapheventFields[4].Descriptor()
	// graphevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	graphevent.DefaultCreatedAt = grapheventDescCreatedAt.Default.(func() time.Time)
	tickjobFields := schema.TickJob{}.Fields()
	_ = tickjobFields
	// tickjobDescExpireInSeconds is the schema descriptor for expire_in_seconds field.
	tickjobDescExpireInSeconds := tickjobFields[5].Descriptor()
	// tickjob.DefaultExpireInSeconds holds the default value on creation for the expire_in_seconds field.
	tickjob.DefaultExpireInSeconds = tickjobDescExpireInSeconds.Default.(int)
	// tickjobDescAttempts is the schema descriptor for attempts field.
	tickjobDescAttempts := tickjobFields[6].Descriptor()
	// tickjob.DefaultAttempts holds the default value on creation for the attempts field.
	tickjob.DefaultAttempts = tickjobDescAttempts.Default.(int)
	// tickjobDescCreatedAt is the schema descriptor for created_at field.
	tickjobDescCreatedAt := tickjobFields[7].Descriptor()
	// tickjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	tickjob.DefaultCreatedAt = tickjobDescCreatedAt.Default.(func() time.Time)
}
