package api

import "todo-api/domain"

// Store abstracts the in-memory collections for handlers. Operations never
// fail; absence is reported with a boolean.
type Store interface {
	ListTodos() []domain.Todo
	GetTodo(id string) (domain.Todo, bool)
	CreateTodo(fields domain.TodoFields) domain.Todo
	UpdateTodo(id string, patch domain.TodoPatch) (domain.Todo, bool)
	DeleteTodo(id string) bool

	ListCategories() []domain.Category
	GetCategory(id string) (domain.Category, bool)
	CreateCategory(fields domain.CategoryFields) domain.Category
	UpdateCategory(id string, patch domain.CategoryPatch) (domain.Category, bool)
	DeleteCategory(id string) bool
}

// All error bodies share one shape; success bodies are bare entities.
type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type storeStats struct {
	TotalTodos      int `json:"totalTodos"`
	TotalCategories int `json:"totalCategories"`
	ActiveTodos     int `json:"activeTodos"`
	CompletedTodos  int `json:"completedTodos"`
}

// GET /api/db-info response body
type dbInfoResponse struct {
	Type         string     `json:"type"`
	Persistence  string     `json:"persistence"`
	CurrentStats storeStats `json:"currentStats"`
}
