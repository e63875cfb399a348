package bloom

import "github.com/getbloomy/bloomgo/bulk"

// Batch input types. Optional fields are pointers; required fields are
// checked per item by the bulk executor rather than the type system, so a
// bad item is reported in the batch result instead of failing the whole
// call. Use the String and Int64 helpers to fill them.

// GoalInput is one goal to create in a batch.
type GoalInput struct {
	Title     *string
	MeetingID *int64
	UserID    *int64
}

var goalRequiredFields = []string{"title", "meeting_id"}

// Values implements bulk.Item.
func (g GoalInput) Values() bulk.Values {
	v := make(bulk.Values, 3)
	putString(v, "title", g.Title)
	putInt64(v, "meeting_id", g.MeetingID)
	putInt64(v, "user_id", g.UserID)
	return v
}

// TodoInput is one todo to create in a batch.
type TodoInput struct {
	Title     *string
	MeetingID *int64
	DueDate   *string
	UserID    *int64
	Notes     *string
}

var todoRequiredFields = []string{"title", "meeting_id"}

// Values implements bulk.Item.
func (t TodoInput) Values() bulk.Values {
	v := make(bulk.Values, 5)
	putString(v, "title", t.Title)
	putInt64(v, "meeting_id", t.MeetingID)
	putString(v, "due_date", t.DueDate)
	putInt64(v, "user_id", t.UserID)
	putString(v, "notes", t.Notes)
	return v
}

// IssueInput is one issue to create in a batch.
type IssueInput struct {
	MeetingID *int64
	Title     *string
	UserID    *int64
	Notes     *string
}

var issueRequiredFields = []string{"meeting_id", "title"}

// Values implements bulk.Item.
func (i IssueInput) Values() bulk.Values {
	v := make(bulk.Values, 4)
	putInt64(v, "meeting_id", i.MeetingID)
	putString(v, "title", i.Title)
	putInt64(v, "user_id", i.UserID)
	putString(v, "notes", i.Notes)
	return v
}

// put helpers leave the key absent when the pointer is nil, which the
// validator treats as a missing field.

func putString(v bulk.Values, key string, val *string) {
	if val != nil {
		v[key] = *val
	}
}

func putInt64(v bulk.Values, key string, val *int64) {
	if val != nil {
		v[key] = *val
	}
}
