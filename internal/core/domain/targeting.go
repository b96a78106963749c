package domain

import "slices"

// Targeting describes who should see a campaign. Empty lists match any
// value.
type Targeting struct {
	Geos       []string `json:"geos"`
	Categories []string `json:"categories"`
	Devices    []string `json:"devices"`
	MinQuality float64  `json:"min_quality"`
}

// Matches reports whether a request with the given geo, device and
// publisher quality satisfies the targeting. An unknown geo only matches
// campaigns with no geo restriction.
func (t Targeting) Matches(geo, device string, quality float64) bool {
	if len(t.Geos) > 0 && (geo == "" || !slices.Contains(t.Geos, geo)) {
		return false
	}
	if len(t.Devices) > 0 && (device == "" || !slices.Contains(t.Devices, device)) {
		return false
	}
	return quality >= t.MinQuality
}
