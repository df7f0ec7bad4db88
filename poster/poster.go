// Package poster renders a program's podium onto fixed graphical layouts.
// Templates are pure: the same program and podium always produce the same
// SVG, and every layout renders exactly three slots, falling back to a
// neutral placeholder when a position has no winner.
package poster

import (
	"fmt"
	"sort"

	"sargalayam/ranking"
)

// Program identifies the competition a poster is rendered for.
type Program struct {
	Event    string
	Category string
	Year     string
}

type Template interface {
	Name() string
	Render(program Program, podium ranking.Podium) (string, error)
}

var registry = map[string]Template{}

func register(t Template) {
	registry[t.Name()] = t
}

func Lookup(name string) (Template, bool) {
	t, ok := registry[name]
	return t, ok
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	placeholderParticipant = "N/A"
	placeholderSchool      = "---"
)

type slot struct {
	Number      string
	Participant string
	School      string
	Present     bool
}

// podiumSlots maps the podium onto the three fixed slots every layout
// renders. Absent positions become placeholders here so the templates never
// have to distinguish a missing winner from a winner with empty fields.
func podiumSlots(podium ranking.Podium) [3]slot {
	var slots [3]slot
	for i := range slots {
		position := i + 1
		s := slot{Number: fmt.Sprintf("%02d", position)}
		if winner := podium.At(position); winner != nil {
			s.Participant = winner.Participant
			s.School = winner.School
			s.Present = true
		} else {
			s.Participant = placeholderParticipant
			s.School = placeholderSchool
		}
		slots[i] = s
	}
	return slots
}
