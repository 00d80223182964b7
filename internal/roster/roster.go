// Package roster maps a team's game focus to its roster size limits.
package roster

import "strings"

// Limit caps a team roster for one game.
type Limit struct {
	MaxTotal       int `json:"max_total"`
	MaxSubstitutes int `json:"max_substitutes"`
	Starters       int `json:"starters"`
}

// DefaultLimit applies when the game focus matches no table entry.
var DefaultLimit = Limit{MaxTotal: 7, MaxSubstitutes: 2, Starters: 5}

// Ordered: more specific keys before shorter ones they contain.
var limits = []struct {
	key   string
	limit Limit
}{
	{"counter-strike", Limit{7, 2, 5}},
	{"csgo", Limit{7, 2, 5}},
	{"cs2", Limit{7, 2, 5}},
	{"valorant", Limit{7, 2, 5}},
	{"overwatch", Limit{7, 2, 5}},
	{"dota", Limit{7, 2, 5}},
	{"league of legends", Limit{7, 2, 5}},
	{"lol", Limit{7, 2, 5}},
	{"rainbow six", Limit{7, 2, 5}},
	{"r6", Limit{7, 2, 5}},
	{"rocket league", Limit{5, 2, 3}},
	{"apex", Limit{5, 2, 3}},
	{"ea fc", Limit{3, 2, 1}},
	{"fifa", Limit{3, 2, 1}},
	{"efootball", Limit{3, 2, 1}},
	{"street fighter", Limit{3, 2, 1}},
}

// LimitFor resolves the roster limit for a free-text game focus. Matching is
// case-insensitive, exact or substring ("Counter-Strike 2" matches
// "counter-strike"). Unknown games fall back to DefaultLimit.
func LimitFor(gameFocus string) Limit {
	g := strings.ToLower(strings.TrimSpace(gameFocus))
	if g == "" {
		return DefaultLimit
	}
	for _, e := range limits {
		if g == e.key || strings.Contains(g, e.key) {
			return e.limit
		}
	}
	return DefaultLimit
}
