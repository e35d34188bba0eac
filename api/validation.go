package api

import (
	"strings"
	"time"
	"unicode/utf8"

	"todo-api/domain"
)

// Field limits, matched by the client-side forms.
const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxNameLen        = 50
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate reports whether s is usable as a calendar date and returns the
// parsed instant for sorting. Dates are stored verbatim as the client sent
// them; parsing happens only here.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Request DTOs use pointer fields so a missing key and a present-but-empty
// value can be told apart. Validators return the first violated rule's
// message, or "" when the payload is acceptable.

type createTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	CategoryID  *string `json:"categoryId"`
}

func (r createTodoRequest) validate() string {
	if r.Title == nil || strings.TrimSpace(*r.Title) == "" {
		return "Title is required and must be a non-empty string"
	}
	if utf8.RuneCountInString(strings.TrimSpace(*r.Title)) > maxTitleLen {
		return "Title must be 100 characters or less"
	}
	if r.Description == nil || strings.TrimSpace(*r.Description) == "" {
		return "Description is required and must be a non-empty string"
	}
	if utf8.RuneCountInString(strings.TrimSpace(*r.Description)) > maxDescriptionLen {
		return "Description must be 500 characters or less"
	}
	if r.DueDate == nil || *r.DueDate == "" {
		return "Due date is required and must be a string"
	}
	if _, ok := parseDate(*r.DueDate); !ok {
		return "Due date must be a valid date string"
	}
	if r.CategoryID == nil || *r.CategoryID == "" {
		return "Category ID is required and must be a string"
	}
	return ""
}

func (r createTodoRequest) fields() domain.TodoFields {
	return domain.TodoFields{
		Title:       *r.Title,
		Description: *r.Description,
		DueDate:     *r.DueDate,
		CategoryID:  *r.CategoryID,
	}
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	CategoryID  *string `json:"categoryId"`
	Completed   *bool   `json:"completed"`
}

// validate checks each rule only when the corresponding field is present.
// categoryId is deliberately not shape-checked here; its existence check
// belongs to the handler.
func (r updateTodoRequest) validate() string {
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return "Title must be a non-empty string"
		}
		if utf8.RuneCountInString(strings.TrimSpace(*r.Title)) > maxTitleLen {
			return "Title must be 100 characters or less"
		}
	}
	if r.Description != nil {
		if strings.TrimSpace(*r.Description) == "" {
			return "Description must be a non-empty string"
		}
		if utf8.RuneCountInString(strings.TrimSpace(*r.Description)) > maxDescriptionLen {
			return "Description must be 500 characters or less"
		}
	}
	if r.DueDate != nil {
		if _, ok := parseDate(*r.DueDate); !ok {
			return "Due date must be a valid date string"
		}
	}
	return ""
}

func (r updateTodoRequest) patch() domain.TodoPatch {
	return domain.TodoPatch{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		CategoryID:  r.CategoryID,
		Completed:   r.Completed,
	}
}

type createCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// validate checks the name only; color is unconstrained server-side.
func (r createCategoryRequest) validate() string {
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return "Category name is required and must be a non-empty string"
	}
	if utf8.RuneCountInString(strings.TrimSpace(*r.Name)) > maxNameLen {
		return "Category name must be 50 characters or less"
	}
	return ""
}

func (r createCategoryRequest) fields() domain.CategoryFields {
	fields := domain.CategoryFields{Name: *r.Name}
	if r.Color != nil {
		fields.Color = *r.Color
	}
	return fields
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (r updateCategoryRequest) patch() domain.CategoryPatch {
	return domain.CategoryPatch{Name: r.Name, Color: r.Color}
}
