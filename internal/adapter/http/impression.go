package httpadapter

import (
	"net/http"

	"adgate/internal/core/domain"
)

// handleImpression advances pacing and frequency counters for a delivered
// impression.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	var ev domain.ImpressionEvent
	if !decodeBody(w, r, &ev) {
		return
	}
	if ev.ClientIP == "" {
		ev.ClientIP = remoteIP(r)
	}
	if ev.UserAgent == "" {
		ev.UserAgent = r.UserAgent()
	}
	if err := h.svc.RecordImpression(r.Context(), ev); err != nil {
		h.writeError(w, "record impression", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
