package ranking

import (
	"testing"

	"sargalayam/repository"

	"github.com/stretchr/testify/assert"
)

func makeResult(id int, event string, category repository.Category, year string, participant string, school string, position int, points int) *repository.Result {
	return &repository.Result{
		Id:          id,
		Event:       event,
		Category:    category,
		Year:        year,
		Participant: participant,
		School:      school,
		Position:    position,
		Points:      points,
	}
}

func sampleResults() []*repository.Result {
	return []*repository.Result{
		makeResult(1, "Quiz", repository.CategoryGeneral, "2025", "Amina", "Hilltop HSS", 1, 10),
		makeResult(2, "Quiz", repository.CategoryGeneral, "2025", "Basil", "Riverdale", 2, 7),
		makeResult(3, "Essay Writing", repository.CategoryHighZone, "2025", "Ciara", "Hilltop HSS", 1, 10),
		makeResult(4, "Quiz", repository.CategoryGeneral, "2024", "Devika", "Lakeside", 1, 10),
		makeResult(5, "Poetry Recitation", repository.CategoryLowZone, "2025", "Esha", "Riverdale", 3, 5),
	}
}

func TestViewFiltersByYearAndCategory(t *testing.T) {
	view := View(sampleResults(), Filters{Year: "2025", Category: repository.CategoryGeneral})
	assert.Len(t, view, 2)
	for _, r := range view {
		assert.Equal(t, "2025", r.Year)
		assert.Equal(t, repository.CategoryGeneral, r.Category)
	}
}

func TestViewAllSentinelMatchesEverything(t *testing.T) {
	assert.Len(t, View(sampleResults(), Filters{Year: All, Category: All}), 5)
	assert.Len(t, View(sampleResults(), Filters{}), 5)
}

func TestViewSearchMatchesAnyField(t *testing.T) {
	results := sampleResults()

	// participant
	view := View(results, Filters{Search: "amina"})
	assert.Len(t, view, 1)
	assert.Equal(t, "Amina", view[0].Participant)

	// school, case-insensitive substring
	view = View(results, Filters{Search: "HILLTOP"})
	assert.Len(t, view, 2)

	// event
	view = View(results, Filters{Search: "essay"})
	assert.Len(t, view, 1)
	assert.Equal(t, "Essay Writing", view[0].Event)

	// no field matches
	assert.Empty(t, View(results, Filters{Search: "zzz"}))
}

func TestViewOrdersByPointsDescendingStable(t *testing.T) {
	results := []*repository.Result{
		makeResult(1, "Quiz", repository.CategoryGeneral, "2025", "Second", "", 2, 7),
		makeResult(2, "Quiz", repository.CategoryGeneral, "2025", "First", "", 1, 10),
		makeResult(3, "Essay Writing", repository.CategoryGeneral, "2025", "TiedA", "", 2, 7),
		makeResult(4, "Poetry Recitation", repository.CategoryGeneral, "2025", "TiedB", "", 2, 7),
	}
	view := View(results, Filters{})
	assert.Equal(t, "First", view[0].Participant)
	// ties keep input order
	assert.Equal(t, "Second", view[1].Participant)
	assert.Equal(t, "TiedA", view[2].Participant)
	assert.Equal(t, "TiedB", view[3].Participant)
}

func TestViewIsIdempotent(t *testing.T) {
	filters := Filters{Year: "2025", Category: All, Search: "quiz"}
	once := View(sampleResults(), filters)
	twice := View(once, filters)
	assert.Equal(t, once, twice)
}

func TestViewEliminatingFiltersYieldEmptySequence(t *testing.T) {
	view := View(sampleResults(), Filters{Year: "1999"})
	assert.NotNil(t, view)
	assert.Empty(t, view)
}

func TestViewDoesNotMutateInput(t *testing.T) {
	results := sampleResults()
	View(results, Filters{Search: "quiz"})
	assert.Equal(t, sampleResults(), results)
}
