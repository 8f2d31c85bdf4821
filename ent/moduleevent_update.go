// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/charlieanna/idlecampus-engine/ent/moduleevent"
	"github.com/charlieanna/idlecampus-engine/ent/predicate"
)

// ModuleEventUpdate is the builder for updating ModuleEvent entities.
type ModuleEventUpdate struct {
	config
	hooks    []Hook
	mutation *ModuleEventMutation
}

// Where appends a list predicates to the ModuleEventUpdate builder.
func (_u *ModuleEventUpdate) Where(ps ...predicate.ModuleEvent) *ModuleEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ModuleEventUpdate) SetModuleID(v string) *ModuleEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ModuleEventUpdate) SetNillableModuleID(v *string) *ModuleEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetModuleName sets the "module_name" field.
func (_u *ModuleEventUpdate) SetModuleName(v string) *ModuleEventUpdate {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *ModuleEventUpdate) SetNillableModuleName(v *string) *ModuleEventUpdate {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *ModuleEventUpdate) SetSequenceNumber(v int) *ModuleEventUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *ModuleEventUpdate) SetNillableSequenceNumber(v *int) *ModuleEventUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *ModuleEventUpdate) AddSequenceNumber(v int) *ModuleEventUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetInitialScore sets the "initial_score" field.
func (_u *ModuleEventUpdate) SetInitialScore(v float64) *ModuleEventUpdate {
	_u.mutation.ResetInitialScore()
	_u.mutation.SetInitialScore(v)
	return _u
}

// SetNillableInitialScore sets the "initial_score" field if the given value is not nil.
func (_u *ModuleEventUpdate) SetNillableInitialScore(v *float64) *ModuleEventUpdate {
	if v != nil {
		_u.SetInitialScore(*v)
	}
	return _u
}

// AddInitialScore adds value to the "initial_score" field.
func (_u *ModuleEventUpdate) AddInitialScore(v float64) *ModuleEventUpdate {
	_u.mutation.AddInitialScore(v)
	return _u
}

// SetProblemCount sets the "problem_count" field.
func (_u *ModuleEventUpdate) SetProblemCount(v int) *ModuleEventUpdate {
	_u.mutation.ResetProblemCount()
	_u.mutation.SetProblemCount(v)
	return _u
}

// SetNillableProblemCount sets the "problem_count" field if the given value is not nil.
func (_u *ModuleEventUpdate) SetNillableProblemCount(v *int) *ModuleEventUpdate {
	if v != nil {
		_u.SetProblemCount(*v)
	}
	return _u
}

// AddProblemCount adds value to the "problem_count" field.
func (_u *ModuleEventUpdate) AddProblemCount(v int) *ModuleEventUpdate {
	_u.mutation.AddProblemCount(v)
	return _u
}

// Mutation returns the ModuleEventMutation object of the builder.
func (_u *ModuleEventUpdate) Mutation() *ModuleEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModuleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModuleEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleEventUpdate) check() error {
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := moduleevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleEvent.module_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ModuleEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moduleevent.Table, moduleevent.Columns, sqlgraph.NewFieldSpec(moduleevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(moduleevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(moduleevent.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(moduleevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(moduleevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InitialScore(); ok {
		_spec.SetField(moduleevent.FieldInitialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInitialScore(); ok {
		_spec.AddField(moduleevent.FieldInitialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProblemCount(); ok {
		_spec.SetField(moduleevent.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemCount(); ok {
		_spec.AddField(moduleevent.FieldProblemCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moduleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModuleEventUpdateOne is the builder for updating a single ModuleEvent entity.
type ModuleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModuleEventMutation
}

// SetModuleID sets the "module_id" field.
func (_u *ModuleEventUpdateOne) SetModuleID(v string) *ModuleEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ModuleEventUpdateOne) SetNillableModuleID(v *string) *ModuleEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetModuleName sets the "module_name" field.
func (_u *ModuleEventUpdateOne) SetModuleName(v string) *ModuleEventUpdateOne {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *ModuleEventUpdateOne) SetNillableModuleName(v *string) *ModuleEventUpdateOne {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *ModuleEventUpdateOne) SetSequenceNumber(v int) *ModuleEventUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *ModuleEventUpdateOne) SetNillableSequenceNumber(v *int) *ModuleEventUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *ModuleEventUpdateOne) AddSequenceNumber(v int) *ModuleEventUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetInitialScore sets the "initial_score" field.
func (_u *ModuleEventUpdateOne) SetInitialScore(v float64) *ModuleEventUpdateOne {
	_u.mutation.ResetInitialScore()
	_u.mutation.SetInitialScore(v)
	return _u
}

// SetNillableInitialScore sets the "initial_score" field if the given value is not nil.
func (_u *ModuleEventUpdateOne) SetNillableInitialScore(v *float64) *ModuleEventUpdateOne {
	if v != nil {
		_u.SetInitialScore(*v)
	}
	return _u
}

// AddInitialScore adds value to the "initial_score" field.
func (_u *ModuleEventUpdateOne) AddInitialScore(v float64) *ModuleEventUpdateOne {
	_u.mutation.AddInitialScore(v)
	return _u
}

// SetProblemCount sets the "problem_count" field.
func (_u *ModuleEventUpdateOne) SetProblemCount(v int) *ModuleEventUpdateOne {
	_u.mutation.ResetProblemCount()
	_u.mutation.SetProblemCount(v)
	return _u
}

// SetNillableProblemCount sets the "problem_count" field if the given value is not nil.
func (_u *ModuleEventUpdateOne) SetNillableProblemCount(v *int) *ModuleEventUpdateOne {
	if v != nil {
		_u.SetProblemCount(*v)
	}
	return _u
}

// AddProblemCount adds value to the "problem_count" field.
func (_u *ModuleEventUpdateOne) AddProblemCount(v int) *ModuleEventUpdateOne {
	_u.mutation.AddProblemCount(v)
	return _u
}

// Mutation returns the ModuleEventMutation object of the builder.
func (_u *ModuleEventUpdateOne) Mutation() *ModuleEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModuleEventUpdate builder.
func (_u *ModuleEventUpdateOne) Where(ps ...predicate.ModuleEvent) *ModuleEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModuleEventUpdateOne) Select(field string, fields ...string) *ModuleEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModuleEvent entity.
func (_u *ModuleEventUpdateOne) Save(ctx context.Context) (*ModuleEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleEventUpdateOne) SaveX(ctx context.Context) *ModuleEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModuleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleEventUpdateOne) check() error {
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := moduleevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleEvent.module_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ModuleEventUpdateOne) sqlSave(ctx context.Context) (_node *ModuleEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moduleevent.Table, moduleevent.Columns, sqlgraph.NewFieldSpec(moduleevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModuleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, moduleevent.FieldID)
		for _, f := range fields {
			if !moduleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != moduleevent.FieldID {
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
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(moduleevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(moduleevent.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(moduleevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(moduleevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InitialScore(); ok {
		_spec.SetField(moduleevent.FieldInitialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInitialScore(); ok {
		_spec.AddField(moduleevent.FieldInitialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProblemCount(); ok {
		_spec.SetField(moduleevent.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemCount(); ok {
		_spec.AddField(moduleevent.FieldProblemCount, field.TypeInt, value)
	}
	_node = &ModuleEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moduleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
