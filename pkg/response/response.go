// Package response writes JSON bodies in the shapes the SDG Knowledge
// System backend uses, for gin handlers that stand in for it.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Paginated is the paginated list envelope.
type Paginated struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// Success sends a 200 response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Page sends a paginated list.
func Page(c *gin.Context, count int, results interface{}) {
	c.JSON(http.StatusOK, Paginated{Count: count, Results: results})
}

// Message sends {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Detail sends {"detail": msg}, the shape of general failures.
func Detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// FieldErrors sends a 400 with a field -> messages mapping.
func FieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// Unauthorized sends a 401 detail response.
func Unauthorized(c *gin.Context, msg string) {
	Detail(c, http.StatusUnauthorized, msg)
}

// Forbidden sends a 403 detail response.
func Forbidden(c *gin.Context, msg string) {
	Detail(c, http.StatusForbidden, msg)
}

// NotFound sends a 404 detail response.
func NotFound(c *gin.Context, msg string) {
	Detail(c, http.StatusNotFound, msg)
}

// InternalError sends a 500 detail response.
func InternalError(c *gin.Context, msg string) {
	Detail(c, http.StatusInternalServerError, msg)
}
