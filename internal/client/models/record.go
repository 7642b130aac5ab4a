// Package models defines the records exchanged with the car-storage API and
// the drafts the client submits for create and update.
package models

import "strconv"

// Field is one stringified attribute of a record, keyed by its wire name.
type Field struct {
	Name  string
	Value string
}

// Record is anything a list view can sort and filter. Fields returns every
// attribute of the record in a fixed order; absent values are "".
type Record interface {
	RecordID() int64
	Fields() []Field
}

// FieldValue looks up a field by wire name. Unknown names yield "".
func FieldValue(r Record, name string) string {
	for _, f := range r.Fields() {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func itoa(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
