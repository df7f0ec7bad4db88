package poster

import (
	"strings"
	"testing"

	"sargalayam/ranking"
	"sargalayam/repository"

	"github.com/stretchr/testify/assert"
)

func fullPodium() ranking.Podium {
	return ranking.PodiumOf([]*repository.Result{
		{Id: 1, Event: "Quiz", Category: repository.CategoryGeneral, Year: "2025", Participant: "Amina", School: "Hilltop HSS", Position: 1, Points: 10},
		{Id: 2, Event: "Quiz", Category: repository.CategoryGeneral, Year: "2025", Participant: "Basil", School: "Riverdale", Position: 2, Points: 7},
		{Id: 3, Event: "Quiz", Category: repository.CategoryGeneral, Year: "2025", Participant: "Ciara", School: "Lakeside", Position: 3, Points: 5},
	})
}

func firstOnlyPodium() ranking.Podium {
	return ranking.PodiumOf([]*repository.Result{
		{Id: 1, Event: "Quiz", Category: repository.CategoryGeneral, Year: "2025", Participant: "Amina", School: "Hilltop HSS", Position: 1, Points: 10},
	})
}

var program = Program{Event: "Quiz", Category: repository.CategoryGeneral, Year: "2025"}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"classic", "midnight"}, Names())
	for _, name := range Names() {
		template, ok := Lookup(name)
		assert.True(t, ok)
		assert.Equal(t, name, template.Name())
	}
	_, ok := Lookup("neon")
	assert.False(t, ok)
}

func TestRenderFullPodium(t *testing.T) {
	for _, name := range Names() {
		template, _ := Lookup(name)
		svg, err := template.Render(program, fullPodium())
		assert.NoError(t, err)
		assert.Contains(t, svg, "QUIZ")
		for _, winner := range []string{"Amina", "Basil", "Ciara"} {
			assert.Contains(t, svg, winner, "template %s should include %s", name, winner)
		}
		assert.Contains(t, svg, "Hilltop HSS")
		assert.NotContains(t, svg, "N/A")
	}
}

func TestRenderAlwaysProducesThreeSlots(t *testing.T) {
	for _, name := range Names() {
		template, _ := Lookup(name)
		svg, err := template.Render(program, firstOnlyPodium())
		assert.NoError(t, err)
		for _, number := range []string{"01", "02", "03"} {
			assert.Contains(t, svg, number, "template %s should keep slot %s", name, number)
		}
		assert.Equal(t, 2, strings.Count(svg, "N/A"), "template %s should render two placeholders", name)
	}
}

func TestRenderIsPure(t *testing.T) {
	for _, name := range Names() {
		template, _ := Lookup(name)
		first, err := template.Render(program, fullPodium())
		assert.NoError(t, err)
		second, err := template.Render(program, fullPodium())
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestRenderEscapesMarkup(t *testing.T) {
	podium := ranking.PodiumOf([]*repository.Result{
		{Id: 1, Event: "Quiz", Participant: `Tom & "Jerry" <b>`, School: "St. Mary's", Position: 1},
	})
	for _, name := range Names() {
		template, _ := Lookup(name)
		svg, err := template.Render(program, podium)
		assert.NoError(t, err)
		assert.NotContains(t, svg, "<b>")
		assert.Contains(t, svg, "&amp;")
	}
}
