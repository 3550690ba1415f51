package api

import (
	"fmt"
	"net/http"
	"strconv"

	"tripbooking/internal/resource"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the CRUD routes for one entity. Entity behavior
// differences live in the service behind the UseCase interface.
type ResourceHandler struct {
	name    string
	service resource.UseCase
}

func NewResourceHandler(name string, service resource.UseCase) *ResourceHandler {
	return &ResourceHandler{name: name, service: service}
}

func (h *ResourceHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search/fields", h.search)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ResourceHandler) list(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ResourceHandler) get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ResourceHandler) search(c *gin.Context) {
	var id int64
	if raw := c.Query("id"); raw != "" {
		parsed, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		id = parsed
	}

	rows, err := h.service.Search(c.Request.Context(), c.Query("name"), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ResourceHandler) create(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.Create(c.Request.Context(), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": fmt.Sprintf("%s created", h.name)})
}

func (h *ResourceHandler) update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := h.service.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"affected_rows": affected})
}

func (h *ResourceHandler) delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	affected, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"affected_rows": affected})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return id, nil
}
