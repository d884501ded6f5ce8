package game

import "errors"

// Failures raised while generating a game setup. Callers match them with errors.Is.
var (
	ErrInsufficientPlayers     = errors.New("insufficient player count")
	ErrNotEnoughFactions       = errors.New("not enough available factions for this player count")
	ErrNoFeasibleCombination   = errors.New("no combination of available factions hits the target reach")
	ErrIneligibleFactionForBot = errors.New("bots cannot play this faction")
)

// Failures raised by roster management and catalog validation.
var (
	ErrInvalidName      = errors.New("invalid player name")
	ErrTooManyBots      = errors.New("maximum number of bot players reached")
	ErrUnknownFaction   = errors.New("unknown faction")
	ErrDuplicateFaction = errors.New("faction chosen more than once")
	ErrPlayerIndex      = errors.New("player index out of range")
	ErrInvalidCatalog   = errors.New("invalid catalog")
)
