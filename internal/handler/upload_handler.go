package handler

import (
	"fmt"
	"net/http"

	"investlion/internal/middleware"
	"investlion/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxProofSize = 8 << 20 // 8 MiB

type UploadHandler struct {
	cloud cloudinary.Client
}

func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadProof stores a payment screenshot and returns its delivery URL. The
// client attaches the URL to the deposit request it submits next.
func (h *UploadHandler) UploadProof(c *gin.Context) {
	userID := middleware.GetUserID(c)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxProofSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large, max 8MB"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer f.Close()

	publicID := fmt.Sprintf("u%d-%s", userID, uuid.NewString())
	url, err := h.cloud.UploadImage(c.Request.Context(), f, "payment-proofs", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
