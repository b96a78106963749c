package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
	"adgate/internal/core/port/mocks"
)

func newTestHandler(t *testing.T, opts ...Option) (*mocks.MockMatchUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockMatchUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger, opts...).Router()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "203.0.113.9:51234"
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMatchFilled(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Match(mock.Anything, mock.MatchedBy(func(r domain.AdSlotRequest) bool {
		return r.PublisherID == 1 && r.ClientIP == "8.8.8.8" && r.UserAgent == "test-agent"
	}), port.MatchOptions{Limit: 1}).Return(&domain.MatchResult{
		RequestID: "req-1",
		Outcome:   domain.OutcomeFilled,
		Campaigns: []domain.RankedCampaign{{
			Campaign: domain.Campaign{ID: 2, AdvertiserID: 20, BidModel: domain.BidCPM, BidAmount: decimal.RequireFromString("1.5")},
			CTR:      0.001,
			ECPM:     1.5,
		}},
	}, nil)

	rec := do(h, http.MethodPost, "/api/v1/ad/match",
		`{"publisher_id":1,"slot_id":"S","format":"banner","client_ip":"8.8.8.8","limit":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	var body matchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Campaigns, 1)
	assert.EqualValues(t, 2, body.Campaigns[0].CampaignID)
	assert.True(t, body.Campaigns[0].BidAmount.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, domain.OutcomeFilled, body.Outcome)
}

func TestMatchNoFill(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Match(mock.Anything, mock.MatchedBy(func(r domain.AdSlotRequest) bool {
		return r.ClientIP == "203.0.113.9"
	}), port.MatchOptions{}).Return(&domain.MatchResult{RequestID: "req-2", Outcome: domain.OutcomeNoFill}, nil)

	rec := do(h, http.MethodPost, "/api/v1/ad/match", `{"publisher_id":1,"slot_id":"S","format":"video"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "no_fill", rec.Header().Get("X-Match-Outcome"))
	assert.Empty(t, rec.Body.String())
}

func TestMatchErrors(t *testing.T) {
	svc, h := newTestHandler(t)

	rec := do(h, http.MethodPost, "/api/v1/ad/match", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.EXPECT().Match(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Field: "format", Message: "must be one of banner, native, video"}).Once()
	rec = do(h, http.MethodPost, "/api/v1/ad/match", `{"publisher_id":1,"slot_id":"S","format":"popup"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid format")

	svc.EXPECT().Match(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
	rec = do(h, http.MethodPost, "/api/v1/ad/match", `{"publisher_id":1,"slot_id":"S","format":"banner"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestImpression(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().RecordImpression(mock.Anything, mock.MatchedBy(func(ev domain.ImpressionEvent) bool {
		return ev.CampaignID == 7 && ev.Cost.Equal(decimal.RequireFromString("0.002")) && ev.ClientIP == "203.0.113.9"
	})).Return(nil)

	rec := do(h, http.MethodPost, "/api/v1/ad/impression", `{"campaign_id":7,"cost":"0.002"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestInvalidate(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().InvalidateCampaigns(mock.Anything, domain.FormatBanner).Return(nil)
	svc.EXPECT().InvalidateCampaigns(mock.Anything, domain.Format("")).Return(nil)
	svc.EXPECT().InvalidateBlocklist(mock.Anything, int64(3), int64(0)).Return(nil)
	svc.EXPECT().InvalidateBlocklist(mock.Anything, int64(0), int64(0)).
		Return(&domain.ValidationError{Field: "advertiser_id/publisher_id", Message: "at least one is required"})

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodPost, "/api/v1/cache/campaigns/invalidate", `{"format":"banner"}`).Code)
	assert.Equal(t, http.StatusNoContent, do(h, http.MethodPost, "/api/v1/cache/campaigns/invalidate", "").Code)
	assert.Equal(t, http.StatusNoContent, do(h, http.MethodPost, "/api/v1/cache/blocklist/invalidate", `{"advertiser_id":3}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/api/v1/cache/blocklist/invalidate", `{}`).Code)
}

func TestFunnelStats(t *testing.T) {
	svc, h := newTestHandler(t)
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	svc.EXPECT().FunnelStats(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
		return req.From.Equal(from) && req.To.Equal(to) && req.PublisherID != nil && *req.PublisherID == 4
	})).Return(&domain.FunnelStats{Requests: 4, Filled: 1, NoFill: 3}, nil)

	rec := do(h, http.MethodGet, "/api/v1/stats/funnel?from=2026-05-01T00:00:00Z&to=2026-05-02T00:00:00Z&publisher_id=4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body funnelStatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.EqualValues(t, 4, body.Requests)
	assert.InDelta(t, 0.25, body.FillRate, 1e-12)

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/api/v1/stats/funnel?from=yesterday", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/api/v1/stats/funnel?publisher_id=x", "").Code)
}

type recordingObserver struct {
	mu     sync.Mutex
	routes []string
}

func (o *recordingObserver) ObserveHTTP(route, method string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.routes = append(o.routes, method+" "+route+" "+http.StatusText(status))
}

func TestMetricsMiddleware(t *testing.T) {
	obs := &recordingObserver{}
	exposition := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	svc, h := newTestHandler(t, WithMetrics(obs, exposition))
	svc.EXPECT().InvalidateCampaigns(mock.Anything, domain.Format("")).Return(nil)

	do(h, http.MethodPost, "/api/v1/cache/campaigns/invalidate", "")
	rec := do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, "ok", rec.Body.String())

	assert.Equal(t, []string{
		"POST /api/v1/cache/campaigns/invalidate No Content",
		"GET /metrics OK",
	}, obs.routes)
}

