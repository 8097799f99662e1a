package model

import (
	"fitbook/shared/model"
	"time"
)

const (
	TableName  = "classes"
	EntityName = "class"

	FieldID             = "id"
	FieldName           = "name"
	FieldStartTime      = "start_time"
	FieldInstructor     = "instructor"
	FieldTotalSlots     = "total_slots"
	FieldAvailableSlots = "available_slots"
)

const (
	MaxNameLength = 100
	MinCapacity   = 1
	MaxCapacity   = 100
)

// SortableFields are the columns a client may order the catalog by.
var SortableFields = []string{FieldStartTime, FieldName, FieldInstructor, FieldAvailableSlots}

type Class struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	StartTime      time.Time `db:"start_time"`
	Instructor     string    `db:"instructor"`
	TotalSlots     int       `db:"total_slots"`
	AvailableSlots int       `db:"available_slots"`
	model.Metadata
}

// IsUpcoming reports whether the class starts strictly after asOf.
func (c Class) IsUpcoming(asOf time.Time) bool {
	return c.StartTime.After(asOf)
}

func (c Class) HasSlots() bool {
	return c.AvailableSlots > 0
}
