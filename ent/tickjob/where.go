// Code generated by ent, DO NOT EDIT.

package tickjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agx-dev/agx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TickJob {
	return predicate.TickJob(sql.FieldContainsFold(FieldID, id))
}

// Queue applies equality check predicate on the "queue" field. It's identical to QueueEQ.
func Queue(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldQueue, v))
}

// SingletonKey applies equality check predicate on the "singleton_key" field. It's identical to SingletonKeyEQ.
func SingletonKey(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldSingletonKey, v))
}

// ExpireInSeconds applies equality check predicate on the "expire_in_seconds" field. It's identical to ExpireInSecondsEQ.
func ExpireInSeconds(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldExpireInSeconds, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldAttempts, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldFinishedAt, v))
}

// QueueEQ applies the EQ predicate on the "queue" field.
func QueueEQ(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldQueue, v))
}

// QueueNEQ applies the NEQ predicate on the "queue" field.
func QueueNEQ(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldQueue, v))
}

// QueueIn applies the In predicate on the "queue" field.
func QueueIn(vs ...string) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldQueue, vs...))
}

// QueueNotIn applies the NotIn predicate on the "queue" field.
func QueueNotIn(vs ...string) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldQueue, vs...))
}

// QueueGT applies the GT predicate on the "queue" field.
func QueueGT(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldGT(FieldQueue, v))
}

// QueueGTE applies the GTE predicate on the "queue" field.
func QueueGTE(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldGTE(FieldQueue, v))
}

// QueueLT applies the LT predicate on the "queue" field.
func QueueLT(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldLT(FieldQueue, v))
}

// QueueLTE applies the LTE predicate on the "queue" field.
func QueueLTE(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldLTE(FieldQueue, v))
}

// QueueContains applies the Contains predicate on the "queue" field.
func QueueContains(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldContains(FieldQueue, v))
}

// QueueHasPrefix applies the HasPrefix predicate on the "queue" field.
func QueueHasPrefix(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldHasPrefix(FieldQueue, v))
}

// QueueHasSuffix applies the HasSuffix predicate on the "queue" field.
func QueueHasSuffix(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldHasSuffix(FieldQueue, v))
}

// QueueEqualFold applies the EqualFold predicate on the "queue" field.
func QueueEqualFold(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEqualFold(FieldQueue, v))
}

// QueueContainsFold applies the ContainsFold predicate on the "queue" field.
func QueueContainsFold(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldContainsFold(FieldQueue, v))
}

// SingletonKeyEQ applies the EQ predicate on the "singleton_key" field.
func SingletonKeyEQ(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldSingletonKey, v))
}

// SingletonKeyNEQ applies the NEQ predicate on the "singleton_key" field.
func SingletonKeyNEQ(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldSingletonKey, v))
}

// SingletonKeyIn applies the In predicate on the "singleton_key" field.
func SingletonKeyIn(vs ...string) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldSingletonKey, vs...))
}

// SingletonKeyNotIn applies the NotIn predicate on the "singleton_key" field.
func SingletonKeyNotIn(vs ...string) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldSingletonKey, vs...))
}

// SingletonKeyGT applies the GT predicate on the "singleton_key" field.
func SingletonKeyGT(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldGT(FieldSingletonKey, v))
}

// SingletonKeyGTE applies the GTE predicate on the "singleton_key" field.
func SingletonKeyGTE(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldGTE(FieldSingletonKey, v))
}

// SingletonKeyLT applies the LT predicate on the "singleton_key" field.
func SingletonKeyLT(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldLT(FieldSingletonKey, v))
}

// SingletonKeyLTE applies the LTE predicate on the "singleton_key" field.
func SingletonKeyLTE(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldLTE(FieldSingletonKey, v))
}

// SingletonKeyContains applies the Contains predicate on the "singleton_key" field.
func SingletonKeyContains(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldContains(FieldSingletonKey, v))
}

// SingletonKeyHasPrefix applies the HasPrefix predicate on the "singleton_key" field.
func SingletonKeyHasPrefix(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldHasPrefix(FieldSingletonKey, v))
}

// SingletonKeyHasSuffix applies the HasSuffix predicate on the "singleton_key" field.
func SingletonKeyHasSuffix(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldHasSuffix(FieldSingletonKey, v))
}

// SingletonKeyIsNil applies the IsNil predicate on the "singleton_key" field.
func SingletonKeyIsNil() predicate.TickJob {
	return predicate.TickJob(sql.FieldIsNull(FieldSingletonKey))
}

// SingletonKeyNotNil applies the NotNil predicate on the "singleton_key" field.
func SingletonKeyNotNil() predicate.TickJob {
	return predicate.TickJob(sql.FieldNotNull(FieldSingletonKey))
}

// SingletonKeyEqualFold applies the EqualFold predicate on the "singleton_key" field.
func SingletonKeyEqualFold(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldEqualFold(FieldSingletonKey, v))
}

// SingletonKeyContainsFold applies the ContainsFold predicate on the "singleton_key" field.
func SingletonKeyContainsFold(v string) predicate.TickJob {
	return predicate.TickJob(sql.FieldContainsFold(FieldSingletonKey, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldState, vs...))
}

// ExpireInSecondsEQ applies the EQ predicate on the "expire_in_seconds" field.
func ExpireInSecondsEQ(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldExpireInSeconds, v))
}

// ExpireInSecondsNEQ applies the NEQ predicate on the "expire_in_seconds" field.
func ExpireInSecondsNEQ(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldExpireInSeconds, v))
}

// ExpireInSecondsIn applies the In predicate on the "expire_in_seconds" field.
func ExpireInSecondsIn(vs ...int) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldExpireInSeconds, vs...))
}

// ExpireInSecondsNotIn applies the NotIn predicate on the "expire_in_seconds" field.
func ExpireInSecondsNotIn(vs ...int) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldExpireInSeconds, vs...))
}

// ExpireInSecondsGT applies the GT predicate on the "expire_in_seconds" field.
func ExpireInSecondsGT(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldGT(FieldExpireInSeconds, v))
}

// ExpireInSecondsGTE applies the GTE predicate on the "expire_in_seconds" field.
func ExpireInSecondsGTE(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldGTE(FieldExpireInSeconds, v))
}

// ExpireInSecondsLT applies the LT predicate on the "expire_in_seconds" field.
func ExpireInSecondsLT(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldLT(FieldExpireInSeconds, v))
}

// ExpireInSecondsLTE applies the LTE predicate on the "expire_in_seconds" field.
func ExpireInSecondsLTE(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldLTE(FieldExpireInSeconds, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.TickJob {
	return predicate.TickJob(sql.FieldLTE(FieldAttempts, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TickJob {
	return predicate.TickJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TickJob {
	return predicate.TickJob(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.TickJob {
	return predicate.TickJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.TickJob {
	return predicate.TickJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.TickJob {
	return predicate.TickJob(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TickJob) predicate.TickJob {
	return predicate.TickJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TickJob) predicate.TickJob {
	return predicate.TickJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TickJob) predicate.TickJob {
	return predicate.TickJob(sql.NotPredicates(p))
}
