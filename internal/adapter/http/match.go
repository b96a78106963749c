package httpadapter

import (
	"net"
	"net/http"

	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

type matchRequest struct {
	domain.AdSlotRequest
	FrequencyCap int `json:"frequency_cap,omitempty"`
	Limit        int `json:"limit,omitempty"`
}

type matchedCampaign struct {
	CampaignID   int64           `json:"campaign_id"`
	AdvertiserID int64           `json:"advertiser_id"`
	BidModel     domain.BidModel `json:"bid_model"`
	BidAmount    decimal.Decimal `json:"bid_amount"`
	CTR          float64         `json:"ctr"`
	ECPM         float64         `json:"ecpm"`
	Creative     domain.Creative `json:"creative"`
}

type matchResponse struct {
	RequestID string            `json:"request_id"`
	Outcome   domain.Outcome    `json:"outcome"`
	Geo       domain.GeoInfo    `json:"geo"`
	Campaigns []matchedCampaign `json:"campaigns"`
	Degraded  []domain.Stage    `json:"degraded,omitempty"`
}

// handleMatch runs the decisioning pipeline for one ad slot. Client IP and
// user agent default to the caller's connection when the body omits them.
// A no-fill answers 204 with the request id and outcome in headers.
func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ClientIP == "" {
		req.ClientIP = remoteIP(r)
	}
	if req.UserAgent == "" {
		req.UserAgent = r.UserAgent()
	}

	res, err := h.svc.Match(r.Context(), req.AdSlotRequest, port.MatchOptions{
		FrequencyCap: req.FrequencyCap,
		Limit:        req.Limit,
	})
	if err != nil {
		h.writeError(w, "match", err)
		return
	}

	w.Header().Set("X-Request-Id", res.RequestID)
	w.Header().Set("X-Match-Outcome", string(res.Outcome))
	if len(res.Campaigns) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := matchResponse{
		RequestID: res.RequestID,
		Outcome:   res.Outcome,
		Geo:       res.Geo,
		Campaigns: make([]matchedCampaign, 0, len(res.Campaigns)),
		Degraded:  res.Degraded,
	}
	for _, rc := range res.Campaigns {
		resp.Campaigns = append(resp.Campaigns, matchedCampaign{
			CampaignID:   rc.Campaign.ID,
			AdvertiserID: rc.Campaign.AdvertiserID,
			BidModel:     rc.Campaign.BidModel,
			BidAmount:    rc.Campaign.BidAmount,
			CTR:          rc.CTR,
			ECPM:         rc.ECPM,
			Creative:     rc.Campaign.Creative,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
