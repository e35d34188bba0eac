// Package storage holds the in-memory todo and category collections.
package storage

import (
	"strconv"
	"sync"

	"todo-api/domain"
)

// Storage owns both collections. The HTTP server runs handlers on separate
// goroutines, so a single mutex guards todos and categories together; that
// also keeps the category cascade delete atomic from a caller's perspective.
//
// This layer performs no validation and no referential checks: it will store
// an orphaned categoryId if asked to. Referential integrity is enforced by
// the handlers.
type Storage struct {
	mu          sync.Mutex
	todos       []domain.Todo
	categories  []domain.Category
	todoSeq     int
	categorySeq int
}

// New creates an empty Storage. The id counters for the two collections are
// independent, so a todo and a category may share the same id string.
func New() *Storage {
	return &Storage{todoSeq: 1, categorySeq: 1}
}

// ListTodos returns a snapshot of all todos in insertion order. Mutating the
// returned slice never affects the store.
func (s *Storage) ListTodos() []domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// GetTodo returns the todo with the given id, or false if none exists.
func (s *Storage) GetTodo(id string) (domain.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Todo{}, false
}

// CreateTodo assigns the next id, stamps createdAt and appends the record.
func (s *Storage) CreateTodo(fields domain.TodoFields) domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo := domain.Todo{
		ID:          strconv.Itoa(s.todoSeq),
		Title:       fields.Title,
		Description: fields.Description,
		DueDate:     fields.DueDate,
		CategoryID:  fields.CategoryID,
		Completed:   false,
		CreatedAt:   nextCreationTime(),
	}
	s.todoSeq++
	s.todos = append(s.todos, todo)
	return todo
}

// UpdateTodo merges non-nil patch fields into the stored record and returns
// the result, or false if no todo with the given id exists.
func (s *Storage) UpdateTodo(id string, patch domain.TodoPatch) (domain.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		t := &s.todos[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.CategoryID != nil {
			t.CategoryID = *patch.CategoryID
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		return *t, true
	}
	return domain.Todo{}, false
}

// DeleteTodo removes the todo with the given id and reports whether a record
// existed.
func (s *Storage) DeleteTodo(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return true
		}
	}
	return false
}

// ListCategories returns a snapshot of all categories in insertion order.
func (s *Storage) ListCategories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// GetCategory returns the category with the given id, or false if none exists.
func (s *Storage) GetCategory(id string) (domain.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// CreateCategory assigns the next id, stamps createdAt and appends the record.
func (s *Storage) CreateCategory(fields domain.CategoryFields) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	category := domain.Category{
		ID:        strconv.Itoa(s.categorySeq),
		Name:      fields.Name,
		Color:     fields.Color,
		CreatedAt: nextCreationTime(),
	}
	s.categorySeq++
	s.categories = append(s.categories, category)
	return category
}

// UpdateCategory merges non-nil patch fields into the stored record and
// returns the result, or false if no category with the given id exists.
func (s *Storage) UpdateCategory(id string, patch domain.CategoryPatch) (domain.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		c := &s.categories[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		return *c, true
	}
	return domain.Category{}, false
}

// DeleteCategory removes the category and every todo referencing it. Both
// removals happen under the same lock, so no caller observes a half-applied
// cascade.
func (s *Storage) DeleteCategory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	kept := s.todos[:0]
	for _, t := range s.todos {
		if t.CategoryID != id {
			kept = append(kept, t)
		}
	}
	s.todos = kept
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	return true
}
