package handlers

import (
	"log"
	"net/http"

	"github.com/cesam-goiania/encontro-api/internal/export"
	"github.com/cesam-goiania/encontro-api/internal/roster"
)

// ExportHandler serves the roster downloads. These are plain chi
// handlers (streamed attachments) guarded by the auth middleware, and
// they accept the same filter params as the participant list so the
// export matches what the admin sees.
type ExportHandler struct {
	store roster.Store
}

func NewExportHandler(store roster.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

func criteriaFromQuery(r *http.Request) roster.Criteria {
	q := r.URL.Query()
	return roster.Criteria{
		NameContains:  q.Get("search"),
		RegisteredOn:  q.Get("date"),
		AgeClass:      parseAgeClass(q.Get("age_class")),
		ConsentClass:  parseConsentClass(q.Get("consent_class")),
		PhoneLastFour: q.Get("phone_last4"),
	}
}

func (h *ExportHandler) HandleCSV(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		http.Error(w, "Failed to load participants", http.StatusInternalServerError)
		return
	}
	filtered := roster.Filter(participants, criteriaFromQuery(r))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="participantes.csv"`)
	if err := export.WriteCSV(w, filtered); err != nil {
		log.Printf("Failed to write CSV export: %v", err)
	}
}

func (h *ExportHandler) HandlePDF(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		http.Error(w, "Failed to load participants", http.StatusInternalServerError)
		return
	}
	filtered := roster.Filter(participants, criteriaFromQuery(r))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="participantes.pdf"`)
	if err := export.WritePDF(w, filtered); err != nil {
		log.Printf("Failed to write PDF export: %v", err)
	}
}
