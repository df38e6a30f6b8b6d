package extract

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/extractor"
	"github.com/MrJamesThe3rd/leasedesk/internal/http/respond"
)

const maxDocumentSize = 20 << 20

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/extract", h.extract)
}

func (h *Handler) extract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "failed to read file")
		return
	}

	res, err := extractor.Extract(header.Filename, data)
	if err != nil {
		if errors.Is(err, extractor.ErrUnsupportedType) {
			respond.Error(w, http.StatusBadRequest, "Unsupported file type")
			return
		}

		slog.Warn("failed to read document", "file", header.Filename, "error", err)
		respond.ErrorDetail(w, http.StatusUnprocessableEntity, "Could not read document", err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, api.ExtractionJSON{
		Extracted:   api.NewExtractedJSON(res.Contract),
		TextPreview: res.TextPreview,
	})
}
