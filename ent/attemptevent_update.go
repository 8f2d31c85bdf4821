// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/charlieanna/idlecampus-engine/ent/attemptevent"
	"github.com/charlieanna/idlecampus-engine/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *AttemptEventUpdate) SetProblemID(v string) *AttemptEventUpdate {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableProblemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetPrimaryConcept sets the "primary_concept" field.
func (_u *AttemptEventUpdate) SetPrimaryConcept(v string) *AttemptEventUpdate {
	_u.mutation.SetPrimaryConcept(v)
	return _u
}

// SetNillablePrimaryConcept sets the "primary_concept" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePrimaryConcept(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetPrimaryConcept(*v)
	}
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *AttemptEventUpdate) SetConceptIds(v []string) *AttemptEventUpdate {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *AttemptEventUpdate) AppendConceptIds(v []string) *AttemptEventUpdate {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// ClearConceptIds clears the value of the "concept_ids" field.
func (_u *AttemptEventUpdate) ClearConceptIds() *AttemptEventUpdate {
	_u.mutation.ClearConceptIds()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AttemptEventUpdate) SetSuccess(v bool) *AttemptEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSuccess(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AttemptEventUpdate) SetHintsUsed(v int) *AttemptEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableHintsUsed(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AttemptEventUpdate) AddHintsUsed(v int) *AttemptEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetSubmissionAttempts sets the "submission_attempts" field.
func (_u *AttemptEventUpdate) SetSubmissionAttempts(v int) *AttemptEventUpdate {
	_u.mutation.ResetSubmissionAttempts()
	_u.mutation.SetSubmissionAttempts(v)
	return _u
}

// SetNillableSubmissionAttempts sets the "submission_attempts" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSubmissionAttempts(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetSubmissionAttempts(*v)
	}
	return _u
}

// AddSubmissionAttempts adds value to the "submission_attempts" field.
func (_u *AttemptEventUpdate) AddSubmissionAttempts(v int) *AttemptEventUpdate {
	_u.mutation.AddSubmissionAttempts(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *AttemptEventUpdate) SetTimeSpentSecs(v float64) *AttemptEventUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeSpentSecs(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *AttemptEventUpdate) AddTimeSpentSecs(v float64) *AttemptEventUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetExpectedTimeSecs sets the "expected_time_secs" field.
func (_u *AttemptEventUpdate) SetExpectedTimeSecs(v float64) *AttemptEventUpdate {
	_u.mutation.ResetExpectedTimeSecs()
	_u.mutation.SetExpectedTimeSecs(v)
	return _u
}

// SetNillableExpectedTimeSecs sets the "expected_time_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExpectedTimeSecs(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetExpectedTimeSecs(*v)
	}
	return _u
}

// AddExpectedTimeSecs adds value to the "expected_time_secs" field.
func (_u *AttemptEventUpdate) AddExpectedTimeSecs(v float64) *AttemptEventUpdate {
	_u.mutation.AddExpectedTimeSecs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdate) SetDifficulty(v string) *AttemptEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDifficulty(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := attemptevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryConcept(); ok {
		_spec.SetField(attemptevent.FieldPrimaryConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(attemptevent.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldConceptIds, value)
		})
	}
	if _u.mutation.ConceptIdsCleared() {
		_spec.ClearField(attemptevent.FieldConceptIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(attemptevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(attemptevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(attemptevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmissionAttempts(); ok {
		_spec.SetField(attemptevent.FieldSubmissionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubmissionAttempts(); ok {
		_spec.AddField(attemptevent.FieldSubmissionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSpentSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(attemptevent.FieldTimeSpentSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedTimeSecs(); ok {
		_spec.SetField(attemptevent.FieldExpectedTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedTimeSecs(); ok {
		_spec.AddField(attemptevent.FieldExpectedTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetProblemID sets the "problem_id" field.
func (_u *AttemptEventUpdateOne) SetProblemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableProblemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetPrimaryConcept sets the "primary_concept" field.
func (_u *AttemptEventUpdateOne) SetPrimaryConcept(v string) *AttemptEventUpdateOne {
	_u.mutation.SetPrimaryConcept(v)
	return _u
}

// SetNillablePrimaryConcept sets the "primary_concept" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePrimaryConcept(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPrimaryConcept(*v)
	}
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *AttemptEventUpdateOne) SetConceptIds(v []string) *AttemptEventUpdateOne {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *AttemptEventUpdateOne) AppendConceptIds(v []string) *AttemptEventUpdateOne {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// ClearConceptIds clears the value of the "concept_ids" field.
func (_u *AttemptEventUpdateOne) ClearConceptIds() *AttemptEventUpdateOne {
	_u.mutation.ClearConceptIds()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AttemptEventUpdateOne) SetSuccess(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSuccess(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AttemptEventUpdateOne) SetHintsUsed(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableHintsUsed(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AttemptEventUpdateOne) AddHintsUsed(v int) *AttemptEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetSubmissionAttempts sets the "submission_attempts" field.
func (_u *AttemptEventUpdateOne) SetSubmissionAttempts(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetSubmissionAttempts()
	_u.mutation.SetSubmissionAttempts(v)
	return _u
}

// SetNillableSubmissionAttempts sets the "submission_attempts" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSubmissionAttempts(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSubmissionAttempts(*v)
	}
	return _u
}

// AddSubmissionAttempts adds value to the "submission_attempts" field.
func (_u *AttemptEventUpdateOne) AddSubmissionAttempts(v int) *AttemptEventUpdateOne {
	_u.mutation.AddSubmissionAttempts(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *AttemptEventUpdateOne) SetTimeSpentSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeSpentSecs(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *AttemptEventUpdateOne) AddTimeSpentSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetExpectedTimeSecs sets the "expected_time_secs" field.
func (_u *AttemptEventUpdateOne) SetExpectedTimeSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetExpectedTimeSecs()
	_u.mutation.SetExpectedTimeSecs(v)
	return _u
}

// SetNillableExpectedTimeSecs sets the "expected_time_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExpectedTimeSecs(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExpectedTimeSecs(*v)
	}
	return _u
}

// AddExpectedTimeSecs adds value to the "expected_time_secs" field.
func (_u *AttemptEventUpdateOne) AddExpectedTimeSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddExpectedTimeSecs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdateOne) SetDifficulty(v string) *AttemptEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDifficulty(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := attemptevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryConcept(); ok {
		_spec.SetField(attemptevent.FieldPrimaryConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(attemptevent.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldConceptIds, value)
		})
	}
	if _u.mutation.ConceptIdsCleared() {
		_spec.ClearField(attemptevent.FieldConceptIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(attemptevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(attemptevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(attemptevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmissionAttempts(); ok {
		_spec.SetField(attemptevent.FieldSubmissionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubmissionAttempts(); ok {
		_spec.AddField(attemptevent.FieldSubmissionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSpentSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(attemptevent.FieldTimeSpentSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedTimeSecs(); ok {
		_spec.SetField(attemptevent.FieldExpectedTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedTimeSecs(); ok {
		_spec.AddField(attemptevent.FieldExpectedTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
