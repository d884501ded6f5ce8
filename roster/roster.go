package roster

import (
	"fmt"
	"strings"

	"woodland/game"
)

// RandomBotName is the roster name of a bot whose identity is decided at generation.
const RandomBotName = "Random Bot"

// Roster is the mutable player list a game setup is generated from.
// It is not safe for concurrent use; hand Snapshot() to the generator.
type Roster struct {
	catalog *game.Catalog
	players []game.Player
}

func New(catalog *game.Catalog, players ...game.Player) *Roster {
	r := &Roster{catalog: catalog}
	r.players = append(r.players, players...)
	return r
}

// Add appends a human player. Empty names, names already on the roster and
// names reserved for bots are rejected.
func (r *Roster) Add(name string) error {
	name = strings.TrimSpace(name)
	if r.reserved(name) {
		return fmt.Errorf("%w: %q", game.ErrInvalidName, name)
	}
	r.players = append(r.players, game.Player{Name: name})
	return nil
}

func (r *Roster) reserved(name string) bool {
	if name == "" || name == RandomBotName {
		return true
	}
	for _, p := range r.players {
		if p.Name == name {
			return true
		}
	}
	for _, bot := range r.catalog.Bots {
		if bot.Name == name {
			return true
		}
	}
	return false
}

// AddBot appends a bot seat, up to one per bot in the catalog.
func (r *Roster) AddBot() error {
	if r.Bots() >= len(r.catalog.Bots) {
		return fmt.Errorf("%w: %d", game.ErrTooManyBots, len(r.catalog.Bots))
	}
	r.players = append(r.players, game.Player{Name: RandomBotName, Bot: true})
	return nil
}

func (r *Roster) Remove(index int) error {
	if index < 0 || index >= len(r.players) {
		return fmt.Errorf("%w: %d of %d", game.ErrPlayerIndex, index, len(r.players))
	}
	r.players = append(r.players[:index], r.players[index+1:]...)
	return nil
}

func (r *Roster) Clear() {
	r.players = nil
}

// Choose pre-assigns a faction to the player at index. An empty id clears the choice.
func (r *Roster) Choose(index int, id game.FactionID) error {
	if index < 0 || index >= len(r.players) {
		return fmt.Errorf("%w: %d of %d", game.ErrPlayerIndex, index, len(r.players))
	}
	if id != "" {
		if r.catalog.Faction(id) == nil {
			return fmt.Errorf("%w: %q", game.ErrUnknownFaction, id)
		}
		if r.players[index].Bot && !r.catalog.IsBotFaction(id) {
			return fmt.Errorf("%w: %q", game.ErrIneligibleFactionForBot, id)
		}
		for i, p := range r.players {
			if i != index && p.Faction == id {
				return fmt.Errorf("%w: %q already taken by %s", game.ErrDuplicateFaction, id, p.Name)
			}
		}
	}
	r.players[index].Faction = id
	return nil
}

// ChooseByName resolves a player and a faction by name, see Catalog.FindFaction.
func (r *Roster) ChooseByName(player, faction string) error {
	index := r.Index(player)
	if index < 0 {
		return fmt.Errorf("%w: no player named %q", game.ErrPlayerIndex, player)
	}
	id, err := r.catalog.FindFaction(faction)
	if err != nil {
		return err
	}
	return r.Choose(index, id)
}

// Index returns the position of the first player with name, or -1.
func (r *Roster) Index(name string) int {
	for i, p := range r.players {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (r *Roster) Len() int {
	return len(r.players)
}

func (r *Roster) Bots() int {
	n := 0
	for _, p := range r.players {
		if p.Bot {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the players, safe to hand to a generator.
func (r *Roster) Snapshot() []game.Player {
	out := make([]game.Player, len(r.players))
	copy(out, r.players)
	return out
}
