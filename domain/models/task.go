package models

import "time"

// Weekday is the day a task is due.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the seven due days in board order.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (w Weekday) Valid() bool {
	for _, d := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

// Task is a shared chore on the weekly board. AssignedToUserID is a
// non-owning reference: nil means the task is open for anyone to claim.
type Task struct {
	ID               uint   `gorm:"primaryKey"`
	Title            string `gorm:"size:255;not null"`
	Description      string
	DueDay           Weekday  `gorm:"type:varchar(16);not null"`
	Priority         Priority `gorm:"type:varchar(8);not null"`
	Status           Status   `gorm:"type:varchar(8);not null;default:'todo'"`
	AssignedToUserID *uint
	AssignedTo       *User `gorm:"foreignKey:AssignedToUserID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// Open reports whether the task has no assignee.
func (t *Task) Open() bool {
	return t.AssignedToUserID == nil
}
