package catalog

// islandAliases maps a lowercase substring of a location's free-text
// island field to an island id. Configuration data, not logic: the
// datasets spell island names inconsistently ("Havelock", "Swaraj
// Dweep (Havelock)", ...) and new spellings should land here, not in
// the resolver. Checked in order; first hit wins.
var islandAliases = []struct {
	Substring string
	IslandID  string
}{
	{"havelock", "HL"},
	{"swaraj", "HL"},
	{"neil", "NL"},
	{"shaheed", "NL"},
	{"port blair", "PB"},
	{"portblair", "PB"},
	{"sri vijaya puram", "PB"},
	{"rangat", "RG"},
	{"mayabunder", "MY"},
	{"diglipur", "DG"},
	{"baratang", "BT"},
	{"little andaman", "LA"},
	{"hut bay", "LA"},
	{"long island", "LI"},
}

// canonicalIslandOrder drives the "recommended" sort: the classic
// tourist circuit first, everything else in dataset order behind it.
var canonicalIslandOrder = []string{"PB", "HL", "NL"}

// heroLocations get pulled to the front of their island group in the
// recommended ordering.
var heroLocations = map[string]bool{
	"Radhanagar Beach": true,
	"Cellular Jail":    true,
	"Natural Bridge":   true,
	"Elephant Beach":   true,
	"Bharatpur Beach":  true,
}
