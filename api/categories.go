package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
)

func getCategories(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, store.ListCategories())
	}
}

func getCategory(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		category, ok := store.GetCategory(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Category not found"})
		}
		return c.JSON(http.StatusOK, category)
	}
}

func createCategory(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createCategoryRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}
		if msg := req.validate(); msg != "" {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
		}
		category := store.CreateCategory(req.fields())
		return c.JSON(http.StatusCreated, category)
	}
}

func updateCategory(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateCategoryRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}
		// The name shape is checked inline here rather than through the
		// create validator; color is never checked at all. This mirrors the
		// original backend's asymmetry.
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return c.JSON(http.StatusBadRequest, errorResponse{Error: "Category name must be a non-empty string"})
			}
			if utf8.RuneCountInString(strings.TrimSpace(*req.Name)) > maxNameLen {
				return c.JSON(http.StatusBadRequest, errorResponse{Error: "Category name must be 50 characters or less"})
			}
		}
		category, ok := store.UpdateCategory(c.Param("id"), req.patch())
		if !ok {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Category not found"})
		}
		return c.JSON(http.StatusOK, category)
	}
}

func deleteCategory(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Cascades: the store removes every todo referencing the category in
		// the same operation.
		if !store.DeleteCategory(c.Param("id")) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Category not found"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
