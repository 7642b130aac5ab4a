package models

import (
	"strconv"
	"strings"
)

// Task is a to-do item owned by the authenticated user.
type Task struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

func (t Task) RecordID() int64 { return t.ID }

func (t Task) Fields() []Field {
	return []Field{
		{"id", itoa(t.ID)},
		{"title", t.Title},
		{"done", strconv.FormatBool(t.Done)},
	}
}

// TaskDraft is the body of POST /api/tasks.
type TaskDraft struct {
	Title string `json:"title" validate:"required"`
}

func (d *TaskDraft) normalize() {
	d.Title = strings.TrimSpace(d.Title)
}
