// Package respond writes the JSON bodies shared by every handler.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, api.ErrorBody{Error: msg})
}

func ErrorDetail(w http.ResponseWriter, status int, msg, detail string) {
	JSON(w, status, api.ErrorBody{Error: msg, Detail: detail})
}
