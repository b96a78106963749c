package domain

// GeoInfo is the result of resolving a client IP. The zero value means the
// location is unknown.
type GeoInfo struct {
	Country   string   `json:"country,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Known reports whether at least the country was resolved.
func (g GeoInfo) Known() bool {
	return g.Country != ""
}
