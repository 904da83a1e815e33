package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/infrastructure/blobstore"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

// UploadHandler stores photo batches and hands back their public URLs. The
// URLs then travel inside ticket and order payloads; the handler itself knows
// nothing about what the photos document.
type UploadHandler struct {
	store  blobstore.Store
	logger logger.Interface
}

func NewUploadHandler(store blobstore.Store, logger logger.Interface) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger,
	}
}

// UploadPhotos handles POST /uploads
func (h *UploadHandler) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := form.File["photos"]
	if err := blobstore.ValidateBatch(len(files)); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		contentType := fileHeader.Header.Get("Content-Type")
		if err := blobstore.ValidateFile(fileHeader.Size, contentType); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Error("failed to open uploaded file", "filename", fileHeader.Filename, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, blobstore.MaxFileSize))
		file.Close()
		if err != nil {
			h.logger.Error("failed to read uploaded file", "filename", fileHeader.Filename, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
			return
		}

		url, err := h.store.Store(c.Request.Context(), data, contentType, fileHeader.Filename)
		if err != nil {
			h.logger.Error("failed to store uploaded file", "filename", fileHeader.Filename, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to store upload"))
			return
		}
		urls = append(urls, url)
	}

	utils.CreatedResponse(c, gin.H{"urls": urls}, "Photos uploaded successfully")
}
