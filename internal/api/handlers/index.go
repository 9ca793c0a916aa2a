package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/service"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type IndexHandler struct {
	svc          *service.InvestigationService
	authRequired bool
	logger       *zap.Logger
}

// NewIndexHandler serves the investigation form. With authRequired the page
// asks for the API key and sends it with every /api call.
func NewIndexHandler(svc *service.InvestigationService, authRequired bool, logger *zap.Logger) *IndexHandler {
	return &IndexHandler{svc: svc, authRequired: authRequired, logger: logger}
}

type indexData struct {
	Suspects     []domain.Suspect
	CrimeTypes   []domain.CrimeType
	AuthRequired bool
}

func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, indexData{
		Suspects:     h.svc.Suspects(),
		CrimeTypes:   h.svc.CrimeTypes(),
		AuthRequired: h.authRequired,
	})
	if err != nil {
		h.logger.Error("failed to render index", zap.Error(err))
	}
}
