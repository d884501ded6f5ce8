package setup

import (
	"fmt"

	"woodland/game"
	"woodland/utils"
)

// Seat is one resolved slot of a game setup.
type Seat struct {
	Name         string         `json:"name"`
	Faction      game.FactionID `json:"faction"`
	Bot          bool           `json:"bot"`
	PreChosen    bool           `json:"preChosen"`
	IconFileName string         `json:"iconFileName,omitempty"` // Overrides the faction icon when set
}

// Icon returns the seat's icon override, or the faction icon.
func (s Seat) Icon(catalog *game.Catalog) string {
	if s.IconFileName != "" {
		return s.IconFileName
	}
	if f := catalog.Faction(s.Faction); f != nil {
		return f.IconFileName
	}
	return ""
}

// Describe renders the seat as "<name> will play <faction>".
func (s Seat) Describe(catalog *game.Catalog) string {
	name := string(s.Faction)
	if f := catalog.Faction(s.Faction); f != nil {
		name = f.Name
	}
	return fmt.Sprintf("%s will play %s", s.Name, name)
}

// AssignFactions selects factions for the roster and binds them to seats.
// Seats come out in three groups, each in roster order: players with a
// pre-chosen faction, then bots, then the remaining humans. Bot seats take the
// name and icon of the bot that plays their faction.
func AssignFactions(catalog *game.Catalog, rng Random, players []game.Player) ([]Seat, error) {
	numHumans, numBots := 0, 0
	var preChosen []game.FactionID
	for _, p := range players {
		switch {
		case p.HasFaction():
			if p.Bot && !catalog.IsBotFaction(p.Faction) {
				return nil, fmt.Errorf("%w: %q", game.ErrIneligibleFactionForBot, p.Faction)
			}
			preChosen = append(preChosen, p.Faction)
		case p.Bot:
			numBots++
		default:
			numHumans++
		}
	}

	factions, err := SelectFactions(catalog, rng, numHumans, numBots, preChosen)
	if err != nil {
		return nil, err
	}

	seats := make([]Seat, 0, len(players))
	for _, p := range players {
		if !p.HasFaction() {
			continue
		}
		factions, _ = utils.Remove(factions, p.Faction)
		seat := Seat{Name: p.Name, Faction: p.Faction, PreChosen: true, IconFileName: p.IconFileName}
		if p.Bot {
			if seat, err = botSeat(catalog, p.Faction); err != nil {
				return nil, err
			}
			seat.PreChosen = true
		}
		seats = append(seats, seat)
	}

	for _, p := range players {
		if !p.Bot || p.HasFaction() {
			continue
		}
		faction := firstBotFaction(catalog, factions)
		seat, err := botSeat(catalog, faction)
		if err != nil {
			return nil, err
		}
		factions, _ = utils.Remove(factions, faction)
		seats = append(seats, seat)
	}

	for _, p := range players {
		if p.Bot || p.HasFaction() {
			continue
		}
		seats = append(seats, Seat{Name: p.Name, Faction: factions[0], IconFileName: p.IconFileName})
		factions = factions[1:]
	}

	return seats, nil
}

func firstBotFaction(catalog *game.Catalog, factions []game.FactionID) game.FactionID {
	for _, id := range factions {
		if catalog.IsBotFaction(id) {
			return id
		}
	}
	return ""
}

func botSeat(catalog *game.Catalog, faction game.FactionID) (Seat, error) {
	bot := catalog.BotFor(faction)
	if bot == nil {
		return Seat{}, fmt.Errorf("%w: %q", game.ErrIneligibleFactionForBot, faction)
	}
	return Seat{Name: bot.Name, Faction: bot.Faction, Bot: true, IconFileName: bot.IconFileName}, nil
}
