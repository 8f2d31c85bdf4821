// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/charlieanna/idlecampus-engine/ent/moduleevent"
)

// ModuleEventCreate is the builder for creating a ModuleEvent entity.
type ModuleEventCreate struct {
	config
	mutation *ModuleEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ModuleEventCreate) SetSequence(v int64) *ModuleEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ModuleEventCreate) SetTimestamp(v time.Time) *ModuleEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ModuleEventCreate) SetNillableTimestamp(v *time.Time) *ModuleEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *ModuleEventCreate) SetModuleID(v string) *ModuleEventCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetModuleName sets the "module_name" field.
func (_c *ModuleEventCreate) SetModuleName(v string) *ModuleEventCreate {
	_c.mutation.SetModuleName(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *ModuleEventCreate) SetSequenceNumber(v int) *ModuleEventCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetInitialScore sets the "initial_score" field.
func (_c *ModuleEventCreate) SetInitialScore(v float64) *ModuleEventCreate {
	_c.mutation.SetInitialScore(v)
	return _c
}

// SetProblemCount sets the "problem_count" field.
func (_c *ModuleEventCreate) SetProblemCount(v int) *ModuleEventCreate {
	_c.mutation.SetProblemCount(v)
	return _c
}

// Mutation returns the ModuleEventMutation object of the builder.
func (_c *ModuleEventCreate) Mutation() *ModuleEventMutation {
	return _c.mutation
}

// Save creates the ModuleEvent in the database.
func (_c *ModuleEventCreate) Save(ctx context.Context) (*ModuleEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModuleEventCreate) SaveX(ctx context.Context) *ModuleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModuleEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := moduleevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModuleEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ModuleEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ModuleEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "ModuleEvent.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := moduleevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleEvent.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleName(); !ok {
		return &ValidationError{Name: "module_name", err: errors.New(`ent: missing required field "ModuleEvent.module_name"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "ModuleEvent.sequence_number"`)}
	}
	if _, ok := _c.mutation.InitialScore(); !ok {
		return &ValidationError{Name: "initial_score", err: errors.New(`ent: missing required field "ModuleEvent.initial_score"`)}
	}
	if _, ok := _c.mutation.ProblemCount(); !ok {
		return &ValidationError{Name: "problem_count", err: errors.New(`ent: missing required field "ModuleEvent.problem_count"`)}
	}
	return nil
}

func (_c *ModuleEventCreate) sqlSave(ctx context.Context) (*ModuleEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModuleEventCreate) createSpec() (*ModuleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ModuleEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(moduleevent.Table, sqlgraph.NewFieldSpec(moduleevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(moduleevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(moduleevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(moduleevent.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.ModuleName(); ok {
		_spec.SetField(moduleevent.FieldModuleName, field.TypeString, value)
		_node.ModuleName = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(moduleevent.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.InitialScore(); ok {
		_spec.SetField(moduleevent.FieldInitialScore, field.TypeFloat64, value)
		_node.InitialScore = value
	}
	if value, ok := _c.mutation.ProblemCount(); ok {
		_spec.SetField(moduleevent.FieldProblemCount, field.TypeInt, value)
		_node.ProblemCount = value
	}
	return _node, _spec
}

// ModuleEventCreateBulk is the builder for creating many ModuleEvent entities in bulk.
type ModuleEventCreateBulk struct {
	config
	err      error
	builders []*ModuleEventCreate
}

// Save creates the ModuleEvent entities in the database.
func (_c *ModuleEventCreateBulk) Save(ctx context.Context) ([]*ModuleEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModuleEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModuleEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ModuleEventCreateBulk) SaveX(ctx context.Context) []*ModuleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
