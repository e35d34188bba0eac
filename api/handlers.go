package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, store Store, logger *log.Logger) {
	g := e.Group("/api")

	g.GET("/todos", getTodos(store, logger))
	g.GET("/todos/:id", getTodo(store))
	g.POST("/todos", createTodo(store))
	g.PUT("/todos/:id", updateTodo(store))
	g.DELETE("/todos/:id", deleteTodo(store))

	g.GET("/categories", getCategories(store))
	g.GET("/categories/:id", getCategory(store))
	g.POST("/categories", createCategory(store))
	g.PUT("/categories/:id", updateCategory(store))
	g.DELETE("/categories/:id", deleteCategory(store))

	g.GET("/health", health())
	g.GET("/db-info", dbInfo(store))
}

func health() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Status: "ok", Message: "Todo API is running"})
	}
}

func dbInfo(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		todos := store.ListTodos()
		active := 0
		for _, t := range todos {
			if !t.Completed {
				active++
			}
		}
		return c.JSON(http.StatusOK, dbInfoResponse{
			Type:        "In-Memory Database",
			Persistence: "Data is lost when the server restarts",
			CurrentStats: storeStats{
				TotalTodos:      len(todos),
				TotalCategories: len(store.ListCategories()),
				ActiveTodos:     active,
				CompletedTodos:  len(todos) - active,
			},
		})
	}
}

// ErrorHandler translates routing errors and uncaught handler faults into
// the API's error body shape. Internal details are logged, never returned.
func ErrorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				_ = c.JSON(http.StatusNotFound, errorResponse{Error: "Route not found"})
				return
			}
		}
		logger.WithFields(log.Fields{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).WithError(err).Error("unhandled request error")
		_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "Something went wrong!"})
	}
}
