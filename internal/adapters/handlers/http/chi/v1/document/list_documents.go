package document

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1DocumentResponse is the wire shape of one document upload
type V1DocumentResponse struct {
	ID          uuid.UUID `json:"id"`
	FieldID     string    `json:"fieldId"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	Verdict     string    `json:"scanVerdict"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListDocumentsV1 lists every upload attempt recorded for an application
func (h *HandlerV1) ListDocumentsV1(w http.ResponseWriter, r *http.Request) {

	applicationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}

	docs, listErr := h.uploadService.ListDocuments(r.Context(), applicationID)
	if listErr != nil {
		h.logger.Error("error listing documents", "error", listErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := make([]V1DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, V1DocumentResponse{
			ID:          doc.ID,
			FieldID:     doc.FieldID,
			Filename:    doc.Filename,
			ContentType: doc.ContentType,
			SizeBytes:   doc.SizeBytes,
			Verdict:     string(doc.Verdict),
			Status:      string(doc.Status),
			CreatedAt:   doc.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
