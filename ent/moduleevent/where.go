// Code generated by ent, DO NOT EDIT.

package moduleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/charlieanna/idlecampus-engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleName applies equality check predicate on the "module_name" field. It's identical to ModuleNameEQ.
func ModuleName(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldModuleName, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldSequenceNumber, v))
}

// InitialScore applies equality check predicate on the "initial_score" field. It's identical to InitialScoreEQ.
func InitialScore(v float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldInitialScore, v))
}

// ProblemCount applies equality check predicate on the "problem_count" field. It's identical to ProblemCountEQ.
func ProblemCount(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldProblemCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// ModuleNameEQ applies the EQ predicate on the "module_name" field.
func ModuleNameEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldModuleName, v))
}

// ModuleNameNEQ applies the NEQ predicate on the "module_name" field.
func ModuleNameNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldModuleName, v))
}

// ModuleNameIn applies the In predicate on the "module_name" field.
func ModuleNameIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldModuleName, vs...))
}

// ModuleNameNotIn applies the NotIn predicate on the "module_name" field.
func ModuleNameNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldModuleName, vs...))
}

// ModuleNameGT applies the GT predicate on the "module_name" field.
func ModuleNameGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldModuleName, v))
}

// ModuleNameGTE applies the GTE predicate on the "module_name" field.
func ModuleNameGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldModuleName, v))
}

// ModuleNameLT applies the LT predicate on the "module_name" field.
func ModuleNameLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldModuleName, v))
}

// ModuleNameLTE applies the LTE predicate on the "module_name" field.
func ModuleNameLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldModuleName, v))
}

// ModuleNameContains applies the Contains predicate on the "module_name" field.
func ModuleNameContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldModuleName, v))
}

// ModuleNameHasPrefix applies the HasPrefix predicate on the "module_name" field.
func ModuleNameHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldModuleName, v))
}

// ModuleNameHasSuffix applies the HasSuffix predicate on the "module_name" field.
func ModuleNameHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldModuleName, v))
}

// ModuleNameEqualFold applies the EqualFold predicate on the "module_name" field.
func ModuleNameEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldModuleName, v))
}

// ModuleNameContainsFold applies the ContainsFold predicate on the "module_name" field.
func ModuleNameContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldModuleName, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldSequenceNumber, v))
}

// InitialScoreEQ applies the EQ predicate on the "initial_score" field.
func InitialScoreEQ(v float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldInitialScore, v))
}

// InitialScoreNEQ applies the NEQ predicate on the "initial_score" field.
func InitialScoreNEQ(v float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldInitialScore, v))
}

// InitialScoreIn applies the In predicate on the "initial_score" field.
func InitialScoreIn(vs ...float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldInitialScore, vs...))
}

// InitialScoreNotIn applies the NotIn predicate on the "initial_score" field.
func InitialScoreNotIn(vs ...float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldInitialScore, vs...))
}

// InitialScoreGT applies the GT predicate on the "initial_score" field.
func InitialScoreGT(v float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldInitialScore, v))
}

// InitialScoreGTE applies the GTE predicate on the "initial_score" field.
func InitialScoreGTE(v float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldInitialScore, v))
}

// InitialScoreLT applies the LT predicate on the "initial_score" field.
func InitialScoreLT(v float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldInitialScore, v))
}

// InitialScoreLTE applies the LTE predicate on the "initial_score" field.
func InitialScoreLTE(v float64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldInitialScore, v))
}

// ProblemCountEQ applies the EQ predicate on the "problem_count" field.
func ProblemCountEQ(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldProblemCount, v))
}

// ProblemCountNEQ applies the NEQ predicate on the "problem_count" field.
func ProblemCountNEQ(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldProblemCount, v))
}

// ProblemCountIn applies the In predicate on the "problem_count" field.
func ProblemCountIn(vs ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldProblemCount, vs...))
}

// ProblemCountNotIn applies the NotIn predicate on the "problem_count" field.
func ProblemCountNotIn(vs ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldProblemCount, vs...))
}

// ProblemCountGT applies the GT predicate on the "problem_count" field.
func ProblemCountGT(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldProblemCount, v))
}

// ProblemCountGTE applies the GTE predicate on the "problem_count" field.
func ProblemCountGTE(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldProblemCount, v))
}

// ProblemCountLT applies the LT predicate on the "problem_count" field.
func ProblemCountLT(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldProblemCount, v))
}

// ProblemCountLTE applies the LTE predicate on the "problem_count" field.
func ProblemCountLTE(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldProblemCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.NotPredicates(p))
}
