package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

type funnelStatsResponse struct {
	domain.FunnelStats
	FillRate float64   `json:"fill_rate"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
}

// handleFunnelStats returns match outcomes over a period. It accepts
// optional `from`, `to` (RFC3339 timestamps) and `publisher_id` query
// parameters. If no period is provided, it defaults to the last 24 hours.
func (h *Handler) handleFunnelStats(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if pid := q.Get("publisher_id"); pid != "" {
		id, err := strconv.ParseInt(pid, 10, 64)
		if err != nil {
			http.Error(w, "invalid publisher_id", http.StatusBadRequest)
			return
		}
		req.PublisherID = &id
	}

	stats, err := h.svc.FunnelStats(r.Context(), req)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, funnelStatsResponse{
		FunnelStats: *stats,
		FillRate:    stats.FillRate(),
		From:        req.From,
		To:          req.To,
	})
}
