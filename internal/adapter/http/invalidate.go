package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"adgate/internal/core/domain"
)

type invalidateCampaignsRequest struct {
	Format domain.Format `json:"format"`
}

type invalidateBlocklistRequest struct {
	AdvertiserID int64 `json:"advertiser_id"`
	PublisherID  int64 `json:"publisher_id"`
}

// handleInvalidateCampaigns is called by campaign management after a
// campaign mutation. An empty body or format drops every candidate set.
func (h *Handler) handleInvalidateCampaigns(w http.ResponseWriter, r *http.Request) {
	var req invalidateCampaignsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.InvalidateCampaigns(r.Context(), req.Format); err != nil {
		h.writeError(w, "invalidate campaigns", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleInvalidateBlocklist is called after either party edited its
// blocklist.
func (h *Handler) handleInvalidateBlocklist(w http.ResponseWriter, r *http.Request) {
	var req invalidateBlocklistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.InvalidateBlocklist(r.Context(), req.AdvertiserID, req.PublisherID); err != nil {
		h.writeError(w, "invalidate blocklist", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
