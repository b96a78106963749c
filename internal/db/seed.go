package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adgate/internal/core/domain"
)

var (
	seedGeos       = []string{"US", "GB", "DE", "FR", "AM"}
	seedCategories = []string{"news", "sports", "tech", "gaming", "finance"}
	seedFormats    = []domain.Format{domain.FormatBanner, domain.FormatNative, domain.FormatVideo}
	seedSizes      = map[domain.Format][2]int{
		domain.FormatBanner: {300, 250},
		domain.FormatNative: {0, 0},
		domain.FormatVideo:  {640, 360},
	}
)

// Seed inserts demo advertisers, publishers, campaigns, blocklist rows,
// delivery history and request log entries. It is idempotent for the
// fixed-id rows.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for i := 1; i <= 5; i++ {
			category := seedCategories[i-1]
			_, err := tx.Exec(ctx, `INSERT INTO advertisers (id, name, brand, category)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
				i, fmt.Sprintf("Advertiser %d", i), fmt.Sprintf("brand-%d", i), category)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, `INSERT INTO publishers (id, name, domain, category, quality_score)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
				i, fmt.Sprintf("Publisher %d", i), fmt.Sprintf("site%d.example", i), category, 0.3+0.15*float64(i-1))
			if err != nil {
				return err
			}
		}

		for i := 1; i <= 15; i++ {
			format := seedFormats[(i-1)%len(seedFormats)]
			size := seedSizes[format]
			targeting := domain.Targeting{
				Geos:       []string{seedGeos[r.Intn(len(seedGeos))], seedGeos[r.Intn(len(seedGeos))]},
				MinQuality: float64(r.Intn(5)) / 10,
			}
			if i%4 == 0 {
				targeting.Geos = nil
			}
			if i%3 == 0 {
				targeting.Devices = []string{"mobile"}
			}
			tgtJSON, err := json.Marshal(targeting)
			if err != nil {
				return err
			}
			bidModel := domain.BidCPM
			bid := fmt.Sprintf("%.2f", 0.5+r.Float64()*2.5)
			if i%5 == 0 {
				bidModel = domain.BidCPC
				bid = fmt.Sprintf("%.2f", 0.1+r.Float64()*0.4)
			}
			start := time.Now().AddDate(0, 0, -7)
			end := time.Now().AddDate(0, 1, 0)
			_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, name, status, bid_model, bid_amount, total_budget, daily_budget, spent_budget,
     targeting, creative_url, creative_format, creative_width, creative_height, start_date, end_date)
VALUES ($1,$2,$3,'active',$4,$5,5000,$6,0,$7,$8,$9,$10,$11,$12,$13) ON CONFLICT DO NOTHING`,
				i, (i-1)%5+1, fmt.Sprintf("Campaign %d", i), string(bidModel), bid, 100*(i%3), tgtJSON,
				fmt.Sprintf("https://cdn.example/creative/%d", i), string(format), size[0], size[1], start, end)
			if err != nil {
				return err
			}

			for d := 1; d <= 30; d++ {
				impressions := 500 + r.Intn(2000)
				clicks := r.Intn(impressions/50 + 1)
				_, err = tx.Exec(ctx, `INSERT INTO campaign_daily_stats (campaign_id, day, impressions, clicks)
VALUES ($1, current_date - $2::int, $3, $4) ON CONFLICT DO NOTHING`, i, d, impressions, clicks)
				if err != nil {
					return err
				}
			}
		}

		// publisher 2 blocks advertiser 1 by id; advertiser 3 blocks the
		// gaming category.
		if _, err := tx.Exec(ctx, `INSERT INTO publisher_blocklist (id, publisher_id, advertiser_id)
VALUES (1, 2, 1) ON CONFLICT DO NOTHING`); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO advertiser_blocklist (id, advertiser_id, category)
VALUES (1, 3, 'gaming') ON CONFLICT DO NOTHING`); err != nil {
			return err
		}

		outcomes := []domain.Outcome{domain.OutcomeFilled, domain.OutcomeFilled, domain.OutcomeNoFill, domain.OutcomeInvalidTraffic}
		for i := 0; i < 200; i++ {
			outcome := outcomes[r.Intn(len(outcomes))]
			reason := domain.ReasonEligible
			switch outcome {
			case domain.OutcomeNoFill:
				reason = domain.ReasonTargetingMismatch
			case domain.OutcomeInvalidTraffic:
				reason = domain.ReasonInvalidTraffic
			}
			_, err := tx.Exec(ctx, `INSERT INTO ad_request_log
(request_id, publisher_id, slot_id, format, geo, outcome, reason, candidates, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now() - make_interval(mins => $9))`,
				uuid.NewString(), r.Intn(5)+1, "seed-slot", string(seedFormats[r.Intn(len(seedFormats))]),
				seedGeos[r.Intn(len(seedGeos))], string(outcome), string(reason), r.Intn(6), r.Intn(24*60))
			if err != nil {
				return err
			}
		}

		// keep sequences ahead of the fixed ids
		for _, table := range []string{"advertisers", "publishers", "campaigns", "publisher_blocklist", "advertiser_blocklist"} {
			if _, err := tx.Exec(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s','id'), (SELECT max(id) FROM %s))`, table, table)); err != nil {
				return err
			}
		}
		return nil
	})
}
