package domain

// Todo represents a single task record.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	CategoryID  string `json:"categoryId"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

// TodoFields carries the caller-supplied fields for a new todo. The store
// fills in id, completed and createdAt itself.
type TodoFields struct {
	Title       string
	Description string
	DueDate     string
	CategoryID  string
}

// TodoPatch is a partial update. Nil fields are left unchanged; id and
// createdAt are not part of the patch surface and can never be rewritten.
type TodoPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	CategoryID  *string
	Completed   *bool
}
