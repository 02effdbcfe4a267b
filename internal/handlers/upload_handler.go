package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/upload"
)

type UploadHandler struct {
	uploads *upload.Service
}

func NewUploadHandler(s *upload.Service) *UploadHandler {
	return &UploadHandler{uploads: s}
}

// Upload recibe una imagen en el campo multipart "file"
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	if fh.Size > h.uploads.MaxBytes() {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": upload.ErrFileTooLarge.Error()})
		return
	}

	f, err := fh.Open()
	if err != nil {
		badRequest(c, "could not read file")
		return
	}
	defer f.Close()

	result, err := h.uploads.Upload(c.Request.Context(), fh.Filename, f)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, result)
	case errors.Is(err, upload.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, upload.ErrEmptyFile), errors.Is(err, upload.ErrUnsupportedType):
		badRequest(c, err.Error())
	case errors.Is(err, context.Canceled):
		c.Abort()
	default:
		zap.L().Error("upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
	}
}

// Health reporta el estado del backend de storage; nunca falla
func Health(root *kvstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		storage := "ok"
		if !root.Available(c.Request.Context()) {
			storage = "unavailable"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": storage})
	}
}
