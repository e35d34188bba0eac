package domain

// Category is a named, optionally colored grouping for todos.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// CategoryFields carries the caller-supplied fields for a new category.
type CategoryFields struct {
	Name  string
	Color string
}

// CategoryPatch is a partial update. Nil fields are left unchanged.
type CategoryPatch struct {
	Name  *string
	Color *string
}
