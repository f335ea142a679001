package panel

import "strings"

// WellKnownBackends is the fixed set of addresses the selector always offers.
var WellKnownBackends = []string{
	"http://localhost:8080",
	"http://localhost:3000",
	"http://127.0.0.1:8000",
}

// Selection tracks the backend address the next triggered action will use.
// There is no reconciliation between preset picks and free-text input: the
// last write wins. Changing the selection never issues an HTTP call.
type Selection struct {
	presets []string
	current string
}

// NewSelection builds the selector. defaultAddr is the externally supplied
// default (may be empty); it is offered first and used as the initial
// address. extra entries from configuration follow the well-known set.
func NewSelection(defaultAddr string, extra []string) *Selection {
	var presets []string
	seen := map[string]struct{}{}
	add := func(addr string) {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			return
		}
		if _, ok := seen[addr]; ok {
			return
		}
		seen[addr] = struct{}{}
		presets = append(presets, addr)
	}

	add(defaultAddr)
	for _, addr := range WellKnownBackends {
		add(addr)
	}
	for _, addr := range extra {
		add(addr)
	}

	s := &Selection{presets: presets}
	if len(presets) > 0 {
		s.current = presets[0]
	}
	return s
}

// Presets returns the selectable addresses in display order.
func (s *Selection) Presets() []string {
	dup := make([]string, len(s.presets))
	copy(dup, s.presets)
	return dup
}

// Use records address as the current selection. Blank input is ignored.
func (s *Selection) Use(address string) {
	address = strings.TrimSpace(address)
	if address == "" {
		return
	}
	s.current = address
}

// Current returns the address the next action will be issued against.
func (s *Selection) Current() string {
	return s.current
}
