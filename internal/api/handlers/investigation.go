package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adrienfranto/ia-enquete-policie/internal/api/middleware"
	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type InvestigationHandler struct {
	svc    *service.InvestigationService
	logger *zap.Logger
}

func NewInvestigationHandler(svc *service.InvestigationService, logger *zap.Logger) *InvestigationHandler {
	return &InvestigationHandler{svc: svc, logger: logger}
}

type investigateRequest struct {
	Suspect   string `json:"suspect"`
	CrimeType string `json:"crime_type"`
}

type investigateResponse struct {
	Success   bool                  `json:"success"`
	Guilty    bool                  `json:"guilty"`
	Innocent  bool                  `json:"innocent"`
	Evidence  []domain.EvidenceKind `json:"evidence"`
	Labels    []string              `json:"labels"`
	Suspect   string                `json:"suspect"`
	CrimeType string                `json:"crime_type"`
	Engine    string                `json:"engine"`
}

type allGuiltyResponse struct {
	Success        bool     `json:"success"`
	CrimeType      string   `json:"crime_type"`
	GuiltySuspects []string `json:"guilty_suspects"`
}

func title(s string) string {
	return cases.Title(language.Und).String(s)
}

func (h *InvestigationHandler) Investigate(w http.ResponseWriter, r *http.Request) {
	var req investigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.svc.Investigate(r.Context(), req.Suspect, req.CrimeType, middleware.RequestIDFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSuspectRequired),
			errors.Is(err, service.ErrCrimeTypeRequired):
			writeError(w, http.StatusBadRequest, "Suspect and crime type are required")
		default:
			h.logger.Error("investigation failed",
				zap.String("suspect", req.Suspect),
				zap.String("crime_type", req.CrimeType),
				zap.Error(err),
			)
			writeError(w, http.StatusInternalServerError, "failed to evaluate investigation")
		}
		return
	}

	labels := make([]string, len(v.Evidence))
	for i, k := range v.Evidence {
		labels[i] = k.Label()
	}

	writeJSON(w, http.StatusOK, investigateResponse{
		Success:   true,
		Guilty:    v.Guilty,
		Innocent:  v.Innocent,
		Evidence:  v.Evidence,
		Labels:    labels,
		Suspect:   title(string(v.Suspect)),
		CrimeType: title(string(v.CrimeType)),
		Engine:    v.Engine,
	})
}

func (h *InvestigationHandler) AllGuilty(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "crime_type")
	crime, suspects, err := h.svc.AllGuilty(r.Context(), raw)
	if err != nil {
		if errors.Is(err, service.ErrCrimeTypeRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("guilty suspects lookup failed", zap.String("crime_type", raw), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to evaluate crime type")
		return
	}

	names := make([]string, len(suspects))
	for i, s := range suspects {
		names[i] = title(string(s))
	}

	writeJSON(w, http.StatusOK, allGuiltyResponse{
		Success:        true,
		CrimeType:      title(string(crime)),
		GuiltySuspects: names,
	})
}

func (h *InvestigationHandler) Suspects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"suspects": h.svc.Suspects()})
}

func (h *InvestigationHandler) CrimeTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"crime_types": h.svc.CrimeTypes()})
}

func (h *InvestigationHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	investigations, err := h.svc.History(r.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to list investigations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list investigations")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"investigations": investigations})
}
