package contract

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
	"github.com/MrJamesThe3rd/leasedesk/internal/http/respond"
)

const maxUploadSize = 20 << 20

// Repositories hands out a contract repository scoped to one user.
type Repositories interface {
	ForUser(userID int64) contract.Repository
}

// Extractor reads a candidate contract from an uploaded document.
type Extractor interface {
	Extract(ctx context.Context, filename string, r io.Reader) (*api.Extraction, error)
}

type Handler struct {
	repos     Repositories
	extractor Extractor
}

func NewHandler(repos Repositories, extractor Extractor) *Handler {
	return &Handler{repos: repos, extractor: extractor}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/upload", h.upload)
}

func (h *Handler) service(r *http.Request) *contract.Service {
	id, _ := auth.UserID(r.Context())
	return contract.NewService(h.repos.ForUser(id))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.service(r).List(r.Context())
	if err != nil {
		slog.Error("failed to list contracts", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal error")

		return
	}

	out := make([]api.ContractJSON, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, api.NewContractJSON(c))
	}

	respond.JSON(w, http.StatusOK, out)
}

type createRequest struct {
	PropertyLabel string   `json:"propertyLabel"`
	OwnerName     string   `json:"ownerName"`
	TenantName    string   `json:"tenantName"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Amount        *float64 `json:"amount"`
	Currency      string   `json:"currency"`
}

// params reports the wire names of absent fields, or an error message for
// present fields that do not parse.
func (req createRequest) params() (contract.CreateParams, []string, string) {
	var (
		p       contract.CreateParams
		missing []string
	)

	text := []struct {
		name  string
		value string
		dst   *string
	}{
		{"propertyLabel", req.PropertyLabel, &p.PropertyLabel},
		{"ownerName", req.OwnerName, &p.OwnerName},
		{"tenantName", req.TenantName, &p.TenantName},
	}

	for _, f := range text {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
			continue
		}

		*f.dst = strings.TrimSpace(f.value)
	}

	if req.StartDate == "" {
		missing = append(missing, "startDate")
	}

	if req.EndDate == "" {
		missing = append(missing, "endDate")
	}

	if req.Amount == nil {
		missing = append(missing, "amount")
	}

	if req.Currency == "" {
		missing = append(missing, "currency")
	}

	if len(missing) > 0 {
		return p, missing, ""
	}

	var err error

	if p.StartDate, err = contract.ParseDate(req.StartDate); err != nil {
		return p, nil, "Invalid startDate"
	}

	if p.EndDate, err = contract.ParseDate(req.EndDate); err != nil {
		return p, nil, "Invalid endDate"
	}

	if p.Currency, err = contract.ParseCurrency(req.Currency); err != nil {
		return p, nil, "Invalid currency"
	}

	p.Amount = *req.Amount

	return p, nil, ""
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	params, missing, invalid := req.params()
	if len(missing) > 0 {
		respond.Error(w, http.StatusBadRequest, "Missing fields: "+strings.Join(missing, ", "))
		return
	}

	if invalid != "" {
		respond.Error(w, http.StatusBadRequest, invalid)
		return
	}

	id, err := h.service(r).Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, contract.ErrValidation) {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		slog.Error("failed to create contract", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal error")

		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		respond.Error(w, http.StatusBadRequest, "Empty filename")
		return
	}

	if !api.Allowed(header.Filename) {
		respond.Error(w, http.StatusBadRequest, "Only PDF, DOCX or TXT files are supported")
		return
	}

	ext, err := h.extractor.Extract(r.Context(), header.Filename, file)
	if err != nil {
		slog.Error("extraction failed", "file", header.Filename, "error", err)
		respond.ErrorDetail(w, http.StatusBadGateway, "IA service unavailable", err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, api.ExtractionJSON{
		Extracted:   api.NewExtractedJSON(ext.Contract),
		TextPreview: ext.TextPreview,
	})
}
