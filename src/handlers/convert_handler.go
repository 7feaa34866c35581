// src/handlers/convert_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/dopconv/src/logger"
	"github.com/username/dopconv/src/models"
	"github.com/username/dopconv/src/services"
	"github.com/username/dopconv/src/utils"
)

// ConvertHandler serves conversions and the current rate over HTTP.
type ConvertHandler struct {
	conversionService services.ConversionService
	rateSource        services.RateSource
}

func NewConvertHandler(conversionService services.ConversionService, rateSource services.RateSource) *ConvertHandler {
	return &ConvertHandler{
		conversionService: conversionService,
		rateSource:        rateSource,
	}
}

// HandleConvert answers GET /api/convert?q=1,000+63.25 with a Script Filter
// response. Failures are items too, so the status is always 200.
func (h *ConvertHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	query := r.URL.Query().Get("q")
	log.Info("Handling convert request", "query", query)

	response := models.ScriptFilterResponse{Items: h.conversionService.Convert(r.Context(), query)}

	etag, err := utils.GenerateETag(response)
	if err != nil {
		log.Error("Error generating ETag for conversion", "error", err)
	} else {
		quoted := `"` + etag + `"`
		w.Header().Set("ETag", quoted)
		if r.Header.Get("If-None-Match") == quoted {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("Error encoding conversion response to JSON", "error", err)
	}
}

// HandleGetRate answers GET /api/rate with the extracted rate.
func (h *ConvertHandler) HandleGetRate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	current, err := h.rateSource.CurrentRate(r.Context())
	if err != nil {
		log.Error("Error retrieving current rate", "error", err)
		utils.SendJSONError(w, services.UserMessage(err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(current); err != nil {
		log.Error("Error encoding rate to JSON", "error", err)
	}
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
