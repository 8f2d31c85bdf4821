// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "problem_id", Type: field.TypeString},
		{Name: "primary_concept", Type: field.TypeString},
		{Name: "concept_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "hints_used", Type: field.TypeInt},
		{Name: "submission_attempts", Type: field.TypeInt},
		{Name: "time_spent_secs", Type: field.TypeFloat64},
		{Name: "expected_time_secs", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeString},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_problem_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_primary_concept",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_success",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
		},
	}
	// ModuleEventsColumns holds the columns for the "module_events" table.
	ModuleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "module_id", Type: field.TypeString},
		{Name: "module_name", Type: field.TypeString},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "initial_score", Type: field.TypeFloat64},
		{Name: "problem_count", Type: field.TypeInt},
	}
	// ModuleEventsTable holds the schema information for the "module_events" table.
	ModuleEventsTable = &schema.Table{
		Name:       "module_events",
		Columns:    ModuleEventsColumns,
		PrimaryKey: []*schema.Column{ModuleEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "moduleevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[1]},
			},
			{
				Name:    "moduleevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[2]},
			},
			{
				Name:    "moduleevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ModuleEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
