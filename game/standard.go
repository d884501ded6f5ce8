package game

// NewStandardCatalog builds the catalog for the base game and its expansions.
func NewStandardCatalog() *Catalog {
	c := NewCatalog()

	for _, f := range standardFactions {
		faction := f
		c.AddFaction(&faction)
	}
	for _, b := range standardBots {
		bot := b
		c.AddBot(&bot)
	}
	for _, m := range standardMaps {
		gameMap := m
		c.AddMap(&gameMap)
	}
	for _, ct := range standardClearingTypes {
		clearing := ct
		c.AddClearingType(&clearing)
	}
	for seats, reach := range standardReach {
		c.SetMinReach(seats, reach)
	}

	return c
}

const (
	Marquise  FactionID = "marquise"
	Eyrie     FactionID = "eyrie"
	Alliance  FactionID = "alliance"
	Vagabond  FactionID = "vagabond"
	Riverfolk FactionID = "riverfolk"
	Lizards   FactionID = "lizards"
	Duchy     FactionID = "duchy"
	Corvids   FactionID = "corvids"
	Vagabond2 FactionID = "vagabond2"
	Hundreds  FactionID = "hundreds"
	Keepers   FactionID = "keepers"
)

var standardFactions = []Faction{
	{ID: Marquise, Name: "Marquise de Cat", Reach: 10, IconFileName: "marquise.png"},
	{ID: Eyrie, Name: "Eyrie Dynasties", Reach: 7, IconFileName: "eyrie.png"},
	{ID: Alliance, Name: "Woodland Alliance", Reach: 3, IconFileName: "alliance.png"},
	{ID: Vagabond, Name: "Vagabond", Reach: 5, IconFileName: "vagabond.png"},
	{ID: Riverfolk, Name: "Riverfolk Company", Reach: 5, IconFileName: "riverfolk.png"},
	{ID: Lizards, Name: "Lizard Cult", Reach: 2, IconFileName: "lizards.png"},
	{ID: Duchy, Name: "Underground Duchy", Reach: 8, IconFileName: "duchy.png"},
	{ID: Corvids, Name: "Corvid Conspiracy", Reach: 3, IconFileName: "corvids.png"},
	{ID: Vagabond2, Name: "Second Vagabond", Reach: 2, IconFileName: "vagabond.png", OnlyPresentWith: []FactionID{Vagabond}},
	{ID: Hundreds, Name: "Lord of the Hundreds", Reach: 9, IconFileName: "hundreds.png"},
	{ID: Keepers, Name: "Keepers in Iron", Reach: 8, IconFileName: "keepers.png"},
}

var standardBots = []BotPlayer{
	{Name: "Mechanical Marquise 2.0", Faction: Marquise, IconFileName: "bot-marquise.png"},
	{Name: "Electric Eyrie", Faction: Eyrie, IconFileName: "bot-eyrie.png"},
	{Name: "Automated Alliance", Faction: Alliance, IconFileName: "bot-alliance.png"},
	{Name: "Vagabot", Faction: Vagabond, IconFileName: "bot-vagabond.png"},
	{Name: "Riverfolk Robots", Faction: Riverfolk, IconFileName: "bot-riverfolk.png"},
	{Name: "Logical Lizards", Faction: Lizards, IconFileName: "bot-lizards.png"},
	{Name: "Drillbit Duchy", Faction: Duchy, IconFileName: "bot-duchy.png"},
	{Name: "Cogwheel Corvids", Faction: Corvids, IconFileName: "bot-corvids.png"},
}

var standardMaps = []Map{
	{Name: "Autumn", Alt: "The Autumn map, a forest of twelve clearings.", ImageFileName: "autumn.png", NumClearings: 12},
	{Name: "Winter", Alt: "The Winter map, a snowy woodland of twelve clearings.", ImageFileName: "winter.png", NumClearings: 12},
	{Name: "Lake", Alt: "The Lake map, twelve clearings around a central lake.", ImageFileName: "lake.png", NumClearings: 12},
	{Name: "Mountain", Alt: "The Mountain map, twelve clearings split by mountain passes.", ImageFileName: "mountain.png", NumClearings: 12},
}

var standardClearingTypes = []ClearingType{
	{ID: "fox", Name: "Fox", IconFileName: "fox.png"},
	{ID: "rabbit", Name: "Rabbit", IconFileName: "rabbit.png"},
	{ID: "mouse", Name: "Mouse", IconFileName: "mouse.png"},
}

// Recommended minimum total reach per number of players
var standardReach = map[int]int{
	2: 17,
	3: 18,
	4: 21,
	5: 25,
	6: 28,
}
