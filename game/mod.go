package game

// FactionID identifies a faction in the catalog.
type FactionID string

// Faction is static reference data describing one playable faction.
type Faction struct {
	ID              FactionID   `json:"id"`
	Name            string      `json:"name"`
	Reach           int         `json:"reach"`                     // Balance weight, never negative
	IconFileName    string      `json:"iconFileName"`              // Relative to the icons directory
	OnlyPresentWith []FactionID `json:"onlyPresentWith,omitempty"` // Factions that must also be in play
}

// BotPlayer is a non-human seat whose faction is fixed by its bot identity.
type BotPlayer struct {
	Name         string    `json:"name"`
	Faction      FactionID `json:"faction"`
	IconFileName string    `json:"iconFileName,omitempty"`
}

// Player is one roster entry. An empty Faction means no pre-chosen faction.
type Player struct {
	Name         string    `json:"name"`
	Faction      FactionID `json:"faction,omitempty"`
	Bot          bool      `json:"bot"`
	IconFileName string    `json:"iconFileName,omitempty"`
}

// HasFaction reports whether the player picked a faction before generation.
func (p Player) HasFaction() bool {
	return p.Faction != ""
}

type Map struct {
	Name          string `json:"name"`
	Alt           string `json:"alt"`
	ImageFileName string `json:"imageFileName"`
	NumClearings  int    `json:"numClearings"`
}

type ClearingType struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IconFileName string `json:"iconFileName"`
}
