package model

import "time"

// ClassCreatedEvent is published after a class is added to the catalog.
type ClassCreatedEvent struct {
	ClassID    string    `json:"class_id"`
	Name       string    `json:"name"`
	Instructor string    `json:"instructor"`
	StartTime  time.Time `json:"start_time"`
	TotalSlots int       `json:"total_slots"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewClassCreatedEvent(class Class) ClassCreatedEvent {
	return ClassCreatedEvent{
		ClassID:    class.ID,
		Name:       class.Name,
		Instructor: class.Instructor,
		StartTime:  class.StartTime,
		TotalSlots: class.TotalSlots,
		CreatedAt:  class.CreatedAt,
	}
}
