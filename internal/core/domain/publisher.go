package domain

// Publisher is the read model of a publisher the core needs for targeting:
// its quality score. Domain and category are what advertiser blocklists
// match against.
type Publisher struct {
	ID           int64   `json:"id"`
	Domain       string  `json:"domain"`
	Category     string  `json:"category"`
	QualityScore float64 `json:"quality_score"`
}
