package tracker

import (
	"sort"
	"strconv"

	"github.com/leighmacdonald/fpl-form/internal/fpl"
)

// Fixed code tables. Add new codes here, nothing else needs to change.
var (
	positionLabels = map[int]string{
		1: "Goalkeeper",
		2: "Defender",
		3: "Midfielder",
		4: "Forward",
	}

	statusLabels = map[string]string{
		"a": "Active",
		"i": "Injured",
		"d": "Doubtful",
		"s": "Suspended",
	}
)

// PositionLabel maps an element_type code to its label. Unknown codes are returned as the raw code.
func PositionLabel(code int) string {
	if label, ok := positionLabels[code]; ok {
		return label
	}

	return strconv.Itoa(code)
}

// StatusLabel maps a status code to its label. Unknown codes are returned as the raw code.
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}

	return code
}

// Positions returns the known position labels ordered by their code.
func Positions() []string {
	codes := make([]int, 0, len(positionLabels))
	for code := range positionLabels {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	labels := make([]string, len(codes))
	for idx, code := range codes {
		labels[idx] = positionLabels[code]
	}

	return labels
}

// clubLookup maps club id to name. Duplicate ids overwrite, last one wins.
type clubLookup map[int]string

func newClubLookup(clubs []fpl.ClubRecord) clubLookup {
	lookup := make(clubLookup, len(clubs))
	for _, club := range clubs {
		lookup[club.ID] = club.Name
	}

	return lookup
}

func (l clubLookup) label(teamID int) string {
	if name, ok := l[teamID]; ok {
		return name
	}

	return strconv.Itoa(teamID)
}

// labels returns every club name sorted alphabetically.
func (l clubLookup) labels() []string {
	names := make([]string, 0, len(l))
	for _, name := range l {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
