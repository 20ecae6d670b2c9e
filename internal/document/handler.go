package document

import (
	"errors"
	"io"
	"net/http"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

// maxUploadBytes bounds the multipart body we are willing to buffer.
const maxUploadBytes = 20 << 20

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("pdf")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded file")
		http.Error(w, "failed to read uploaded file", http.StatusInternalServerError)
		return
	}

	result, err := ExtractText(fileBytes)
	if err != nil {
		log.WithError(err).Error("PDF extraction failed")
		if errors.Is(err, ErrProcessingFailed) {
			http.Error(w, "error processing PDF; the file might be corrupted or incompatible", http.StatusInternalServerError)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
