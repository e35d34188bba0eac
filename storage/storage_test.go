package storage

import (
	"testing"
	"time"

	"todo-api/domain"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTodoFields(categoryID string) domain.TodoFields {
	return domain.TodoFields{
		Title:       "Buy milk",
		Description: "2% milk",
		DueDate:     "2025-01-01",
		CategoryID:  categoryID,
	}
}

func TestCreateTodoAssignsSequentialIDs(t *testing.T) {
	s := New()
	first := s.CreateTodo(newTodoFields("1"))
	second := s.CreateTodo(newTodoFields("1"))
	if first.ID != "1" || second.ID != "2" {
		t.Fatalf("expected ids 1 and 2, got %q and %q", first.ID, second.ID)
	}
}

func TestCreateTodoDefaults(t *testing.T) {
	s := New()
	todo := s.CreateTodo(newTodoFields("1"))
	if todo.Completed {
		t.Fatal("expected new todo to start incomplete")
	}
	if _, err := time.Parse(time.RFC3339Nano, todo.CreatedAt); err != nil {
		t.Fatalf("createdAt not RFC3339: %v", err)
	}
}

func TestGetTodoRoundTrip(t *testing.T) {
	s := New()
	created := s.CreateTodo(newTodoFields("7"))
	got, ok := s.GetTodo(created.ID)
	if !ok {
		t.Fatalf("expected todo %q to exist", created.ID)
	}
	if got != created {
		t.Fatalf("round trip mismatch: created %+v, got %+v", created, got)
	}
}

func TestGetTodoMissing(t *testing.T) {
	s := New()
	if _, ok := s.GetTodo("42"); ok {
		t.Fatal("expected missing todo")
	}
}

func TestUpdateTodoMergesPatch(t *testing.T) {
	s := New()
	created := s.CreateTodo(newTodoFields("1"))

	updated, ok := s.UpdateTodo(created.ID, domain.TodoPatch{
		Title:     strPtr("Buy oat milk"),
		Completed: boolPtr(true),
	})
	if !ok {
		t.Fatal("expected update to find the todo")
	}
	if updated.Title != "Buy oat milk" || !updated.Completed {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Description != created.Description || updated.DueDate != created.DueDate {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
	if updated.ID != created.ID || updated.CreatedAt != created.CreatedAt {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
}

func TestUpdateTodoEmptyPatchIsNoOp(t *testing.T) {
	s := New()
	created := s.CreateTodo(newTodoFields("1"))
	updated, ok := s.UpdateTodo(created.ID, domain.TodoPatch{})
	if !ok {
		t.Fatal("expected update to find the todo")
	}
	if updated != created {
		t.Fatalf("empty patch changed the record: %+v != %+v", updated, created)
	}
}

func TestUpdateTodoMissing(t *testing.T) {
	s := New()
	if _, ok := s.UpdateTodo("42", domain.TodoPatch{Title: strPtr("x")}); ok {
		t.Fatal("expected update of missing todo to report absence")
	}
}

func TestDeleteTodo(t *testing.T) {
	s := New()
	created := s.CreateTodo(newTodoFields("1"))
	if !s.DeleteTodo(created.ID) {
		t.Fatal("expected delete to succeed")
	}
	if s.DeleteTodo(created.ID) {
		t.Fatal("expected second delete to report absence")
	}
	if got := s.ListTodos(); len(got) != 0 {
		t.Fatalf("expected empty store, got %d todos", len(got))
	}
}

func TestListTodosReturnsSnapshot(t *testing.T) {
	s := New()
	s.CreateTodo(newTodoFields("1"))
	snapshot := s.ListTodos()
	snapshot[0].Title = "mutated"

	fresh := s.ListTodos()
	if fresh[0].Title != "Buy milk" {
		t.Fatalf("mutation of snapshot leaked into store: %+v", fresh[0])
	}
}

func TestCountersAreIndependent(t *testing.T) {
	s := New()
	todo := s.CreateTodo(newTodoFields("1"))
	category := s.CreateCategory(domain.CategoryFields{Name: "Work"})
	if todo.ID != "1" || category.ID != "1" {
		t.Fatalf("expected both counters to start at 1, got todo %q, category %q", todo.ID, category.ID)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	s := New()
	created := s.CreateCategory(domain.CategoryFields{Name: "Work", Color: "#ff0000"})
	if created.ID != "1" || created.Name != "Work" || created.Color != "#ff0000" {
		t.Fatalf("unexpected category: %+v", created)
	}

	got, ok := s.GetCategory(created.ID)
	if !ok || got != created {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	updated, ok := s.UpdateCategory(created.ID, domain.CategoryPatch{Name: strPtr("Home")})
	if !ok || updated.Name != "Home" || updated.Color != "#ff0000" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.ID != created.ID || updated.CreatedAt != created.CreatedAt {
		t.Fatalf("immutable fields changed: %+v", updated)
	}

	if _, ok := s.UpdateCategory("42", domain.CategoryPatch{}); ok {
		t.Fatal("expected update of missing category to report absence")
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	s := New()
	a := s.CreateCategory(domain.CategoryFields{Name: "A"})
	b := s.CreateCategory(domain.CategoryFields{Name: "B"})
	s.CreateTodo(newTodoFields(a.ID))
	t2 := s.CreateTodo(newTodoFields(b.ID))
	s.CreateTodo(newTodoFields(a.ID))

	if !s.DeleteCategory(a.ID) {
		t.Fatal("expected delete to succeed")
	}

	todos := s.ListTodos()
	if len(todos) != 1 || todos[0].ID != t2.ID {
		t.Fatalf("expected only the todo in category B to survive, got %+v", todos)
	}
	categories := s.ListCategories()
	if len(categories) != 1 || categories[0].ID != b.ID {
		t.Fatalf("expected only category B to survive, got %+v", categories)
	}
}

func TestDeleteCategoryMissing(t *testing.T) {
	s := New()
	s.CreateCategory(domain.CategoryFields{Name: "A"})
	s.CreateTodo(newTodoFields("1"))
	if s.DeleteCategory("42") {
		t.Fatal("expected delete of missing category to report absence")
	}
	if len(s.ListTodos()) != 1 || len(s.ListCategories()) != 1 {
		t.Fatal("expected collections untouched")
	}
}
