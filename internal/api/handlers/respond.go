package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/venture-studio/engine/internal/api/types"
	"github.com/venture-studio/engine/pkg/config"
	appErr "github.com/venture-studio/engine/pkg/errors"
	"github.com/venture-studio/engine/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to its HTTP status and envelope message.
// Internal failures are logged server-side; in production their details
// never reach the client.
func writeError(w http.ResponseWriter, err error) {
	status := appErr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
	}
	production := config.Loaded() && config.Get().IsProduction()
	writeJSON(w, status, types.Fail(types.ErrorMessage(err, production)))
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.Fail(msg))
}
