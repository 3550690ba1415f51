package api

import (
	"net/http"

	"tripbooking/internal/upload"

	"github.com/gin-gonic/gin"
)

// UploadHandler stores and serves image files outside the database.
type UploadHandler struct {
	store *upload.Store
}

func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// MaxUploadSize exposes the store's cap so the router's multipart limit
// stays in step with it.
func (h *UploadHandler) MaxUploadSize() int64 {
	return h.store.MaxSize()
}

func (h *UploadHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:filename", h.get)
}

func (h *UploadHandler) create(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	filename, err := h.store.Save(fh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": filename})
}

func (h *UploadHandler) get(c *gin.Context) {
	filename := c.Param("filename")
	path, err := h.store.Path(filename)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("download") == "true" {
		c.FileAttachment(path, filename)
		return
	}
	c.File(path)
}
