package domain

import (
	"net/netip"
	"strings"
)

// AdSlotRequest is constructed per call by whatever layer sits in front of
// the core. It is never persisted.
type AdSlotRequest struct {
	PublisherID int64  `json:"publisher_id"`
	SlotID      string `json:"slot_id"`
	Format      Format `json:"format"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Geo         string `json:"geo,omitempty"`
	Device      string `json:"device,omitempty"`
	ClientIP    string `json:"client_ip"`
	UserAgent   string `json:"user_agent"`
	SessionID   string `json:"session_id,omitempty"`
}

// Validate checks required fields and normalises format and geo in place.
// The user agent may be empty; that is a traffic-quality signal, not a
// validation failure.
func (r *AdSlotRequest) Validate() error {
	if r.PublisherID <= 0 {
		return &ValidationError{Field: "publisher_id", Message: "is required"}
	}
	if strings.TrimSpace(r.SlotID) == "" {
		return &ValidationError{Field: "slot_id", Message: "is required"}
	}
	f, err := ParseFormat(string(r.Format))
	if err != nil {
		return err
	}
	r.Format = f
	if r.Width < 0 || r.Height < 0 {
		return &ValidationError{Field: "width/height", Message: "must not be negative"}
	}
	if r.ClientIP == "" {
		return &ValidationError{Field: "client_ip", Message: "is required"}
	}
	if _, err = netip.ParseAddr(r.ClientIP); err != nil {
		return &ValidationError{Field: "client_ip", Message: "is not a valid IP address"}
	}
	r.Geo = strings.ToUpper(strings.TrimSpace(r.Geo))
	r.Device = strings.ToLower(strings.TrimSpace(r.Device))
	return nil
}

// Addr returns the parsed client address. It must only be called after
// Validate succeeded.
func (r *AdSlotRequest) Addr() netip.Addr {
	addr, _ := netip.ParseAddr(r.ClientIP)
	return addr.Unmap()
}
