package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a scheduled notification for a task. TaskTitle is a
// denormalized snapshot taken at creation; it does not follow later
// task renames.
type Reminder struct {
	ID         uuid.UUID `json:"id"`
	TaskID     uuid.UUID `json:"taskId"`
	TaskTitle  string    `json:"taskTitle"`
	DueDate    string    `json:"dueDate"`
	DueTime    string    `json:"dueTime,omitempty"`
	ReminderAt time.Time `json:"reminderAt"`
	IsNotified bool      `json:"isNotified"`
}

// ReminderInput is the creation payload for a reminder
type ReminderInput struct {
	TaskID     uuid.UUID `json:"taskId"`
	TaskTitle  string    `json:"taskTitle" validate:"required"`
	DueDate    string    `json:"dueDate" validate:"required"`
	DueTime    string    `json:"dueTime,omitempty"`
	ReminderAt time.Time `json:"reminderAt"`
}

// ReminderFireTime computes when a reminder should fire: minutesBefore
// minutes ahead of the task's due instant. The due instant is the due
// date at dueTime (HH:MM), or at midnight local time when no time is set.
func ReminderFireTime(dueDate, dueTime string, minutesBefore int) (time.Time, error) {
	layout := DateLayout
	value := dueDate
	if dueTime != "" {
		layout = DateLayout + " 15:04"
		value = dueDate + " " + dueTime
	}
	due, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return due.Add(-time.Duration(minutesBefore) * time.Minute), nil
}
