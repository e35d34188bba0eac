package api

import (
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"todo-api/domain"
)

const requestBodyMaxSize = 64 * 1024 // 64 KiB

const (
	statusActive    = "active"
	statusCompleted = "completed"
	sortByDueDate   = "dueDate"
	sortByCreatedAt = "createdAt"
)

// decodeBody reads a size-capped JSON request body into v. Unknown fields
// are ignored, matching the original protocol.
func decodeBody(c echo.Context, v any) error {
	lr := io.LimitReader(c.Request().Body, requestBodyMaxSize)
	return sonic.ConfigStd.NewDecoder(lr).Decode(v)
}

func getTodos(store Store, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		ctx := c.Request().Context()
		metrics, spanCtx := newTodoRequestMetrics(ctx, logger)
		if spanCtx != nil {
			c.SetRequest(c.Request().WithContext(spanCtx))
		}
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		status := c.QueryParam("status")
		sortBy := c.QueryParam("sortBy")
		metrics.SetQuery(status, sortBy)

		fetchStart := time.Now()
		todos := store.ListTodos()
		metrics.ObserveFetch(time.Since(fetchStart))

		todos = filterTodos(todos, status)
		sortTodos(todos, sortBy)
		metrics.SetTodosReturned(len(todos))

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, todos)
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

// filterTodos keeps the subset matching the status filter. Unrecognized or
// empty values leave the list untouched.
func filterTodos(todos []domain.Todo, status string) []domain.Todo {
	var wantCompleted bool
	switch status {
	case statusActive:
		wantCompleted = false
	case statusCompleted:
		wantCompleted = true
	default:
		return todos
	}
	kept := todos[:0]
	for _, t := range todos {
		if t.Completed == wantCompleted {
			kept = append(kept, t)
		}
	}
	return kept
}

// sortTodos orders the list ascending by the parsed timestamp of the chosen
// field. Relative order of ties is unspecified. Unrecognized sort keys leave
// store order intact.
func sortTodos(todos []domain.Todo, sortBy string) {
	var key func(domain.Todo) string
	switch sortBy {
	case sortByDueDate:
		key = func(t domain.Todo) string { return t.DueDate }
	case sortByCreatedAt:
		key = func(t domain.Todo) string { return t.CreatedAt }
	default:
		return
	}
	sort.Slice(todos, func(i, j int) bool {
		ti, _ := parseDate(key(todos[i]))
		tj, _ := parseDate(key(todos[j]))
		return ti.Before(tj)
	})
}

func getTodo(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		todo, ok := store.GetTodo(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Todo not found"})
		}
		return c.JSON(http.StatusOK, todo)
	}
}

func createTodo(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createTodoRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}
		if msg := req.validate(); msg != "" {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
		}
		if _, ok := store.GetCategory(*req.CategoryID); !ok {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Category not found"})
		}
		todo := store.CreateTodo(req.fields())
		return c.JSON(http.StatusCreated, todo)
	}
}

func updateTodo(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateTodoRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}
		if msg := req.validate(); msg != "" {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
		}
		// The referenced category must exist before the patch is applied. An
		// empty categoryId skips the check, as the original backend did.
		if req.CategoryID != nil && *req.CategoryID != "" {
			if _, ok := store.GetCategory(*req.CategoryID); !ok {
				return c.JSON(http.StatusNotFound, errorResponse{Error: "Category not found"})
			}
		}
		todo, ok := store.UpdateTodo(c.Param("id"), req.patch())
		if !ok {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Todo not found"})
		}
		return c.JSON(http.StatusOK, todo)
	}
}

func deleteTodo(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !store.DeleteTodo(c.Param("id")) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Todo not found"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
