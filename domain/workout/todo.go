// Package workout holds the domain model of the training tracker: todo
// items, follow relations, the timestamp encoding they share, and the
// aggregations the chart and trend endpoints are built from.
package workout

// Todo is a planned or completed training task owned by one user.
// IDs are assigned by the sequence counter at creation and never change.
type Todo struct {
	ID        int64  `json:"id" dynamodbav:"id"`
	UserName  string `json:"user_name" dynamodbav:"user_name"`
	Name      string `json:"name" dynamodbav:"name"`
	Weight    int    `json:"weight" dynamodbav:"weight"`
	Set       int    `json:"set" dynamodbav:"set"`
	ClearPlan string `json:"clear_plan" dynamodbav:"clear_plan"`
	CreatedAt string `json:"created_at" dynamodbav:"created_at"`
	IsCleared bool   `json:"is_cleared" dynamodbav:"is_cleared"`
	ClearDate string `json:"clear_date" dynamodbav:"clear_date"`
	Comment   string `json:"comment,omitempty" dynamodbav:"comment,omitempty"`
}

// Completed reports whether the item has left the active state.
func (t Todo) Completed() bool {
	return t.IsCleared && t.ClearDate != ClearDateSentinel
}

// Display returns a copy with stored timestamps truncated to YYYY-MM-DD.
// Fields that do not parse (the clear_date sentinel in particular) are
// passed through unchanged.
func (t Todo) Display() Todo {
	out := t
	if d, err := DecodeDate(t.ClearPlan); err == nil {
		out.ClearPlan = d
	}
	if d, err := DecodeDate(t.CreatedAt); err == nil {
		out.CreatedAt = d
	}
	if d, err := DecodeDate(t.ClearDate); err == nil {
		out.ClearDate = d
	}
	return out
}

// TodoDraft carries the caller-supplied fields for a new todo.
// ClearPlan is a YYYY-MM-DD date.
type TodoDraft struct {
	UserName  string `json:"user_name"`
	Name      string `json:"name"`
	Weight    int    `json:"weight"`
	Set       int    `json:"set"`
	ClearPlan string `json:"clear_plan"`
}

// TodoPatch carries the updatable fields of an active todo. Completion
// state is never touched through a patch.
type TodoPatch struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Weight    int    `json:"weight"`
	Set       int    `json:"set"`
	ClearPlan string `json:"clear_plan"`
}

// TodoCompletion is the post-update attribute set the store returns when
// a todo is marked complete.
type TodoCompletion struct {
	IsCleared bool   `json:"is_cleared" dynamodbav:"is_cleared"`
	ClearDate string `json:"clear_date" dynamodbav:"clear_date"`
	Comment   string `json:"comment" dynamodbav:"comment"`
}
