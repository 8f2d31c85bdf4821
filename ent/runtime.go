// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/charlieanna/idlecampus-engine/ent/attemptevent"
	"github.com/charlieanna/idlecampus-engine/ent/moduleevent"
	"github.com/charlieanna/idlecampus-engine/ent/schema"
	"github.com/charlieanna/idlecampus-engine/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescProblemID is the schema descriptor for problem_id field.
	attempteventDescProblemID := attempteventFields[0].Descriptor()
	// attemptevent.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	attemptevent.ProblemIDValidator = attempteventDescProblemID.Validators[0].(func(string) error)
	moduleeventMixin := schema.ModuleEvent{}.Mixin()
	moduleeventMixinFields0 := moduleeventMixin[0].Fields()
	_ = moduleeventMixinFields0
	moduleeventFields := schema.ModuleEvent{}.Fields()
	_ = moduleeventFields
	// moduleeventDescTimestamp is the schema descriptor for timestamp field.
	moduleeventDescTimestamp := moduleeventMixinFields0[1].Descriptor()
	// moduleevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	moduleevent.DefaultTimestamp = moduleeventDescTimestamp.Default.(func() time.Time)
	// moduleeventDescModuleID is the schema descriptor for module_id field.
	moduleeventDescModuleID := moduleeventFields[0].Descriptor()
	// moduleevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	moduleevent.ModuleIDValidator = moduleeventDescModuleID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
