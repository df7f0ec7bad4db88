package service

import (
	"testing"

	"sargalayam/ranking"
	"sargalayam/repository"

	"github.com/stretchr/testify/assert"
)

func TestBuildSubmissionBatchFullPodium(t *testing.T) {
	batch, err := BuildSubmissionBatch("Quiz", repository.CategoryGeneral, "2025", WinnerSlots{
		First:  WinnerEntry{Participant: "Amina", School: "Hilltop HSS"},
		Second: WinnerEntry{Participant: "Basil", School: "Riverdale"},
		Third:  WinnerEntry{Participant: "Ciara", School: "Lakeside"},
	})
	assert.NoError(t, err)
	assert.Len(t, batch, 3)
	for i, result := range batch {
		assert.Equal(t, "Quiz", result.Event)
		assert.Equal(t, repository.CategoryGeneral, result.Category)
		assert.Equal(t, "2025", result.Year)
		assert.Equal(t, i+1, result.Position)
	}
	assert.Equal(t, 10, batch[0].Points)
	assert.Equal(t, 7, batch[1].Points)
	assert.Equal(t, 5, batch[2].Points)
}

func TestBuildSubmissionBatchDropsBlankSlots(t *testing.T) {
	batch, err := BuildSubmissionBatch("Quiz", repository.CategoryGeneral, "2025", WinnerSlots{
		First:  WinnerEntry{Participant: "Amina"},
		Second: WinnerEntry{Participant: "   "},
		Third:  WinnerEntry{Participant: "Ciara"},
	})
	assert.NoError(t, err)
	assert.Len(t, batch, 2)
	assert.Equal(t, 1, batch[0].Position)
	// position comes from the slot, not from the surviving order
	assert.Equal(t, 3, batch[1].Position)
	assert.Equal(t, 5, batch[1].Points)
}

func TestBuildSubmissionBatchRequiresFirstPlace(t *testing.T) {
	_, err := BuildSubmissionBatch("Quiz", repository.CategoryGeneral, "2025", WinnerSlots{
		Second: WinnerEntry{Participant: "Basil"},
		Third:  WinnerEntry{Participant: "Ciara"},
	})
	assert.ErrorIs(t, err, ErrMissingFirstPlace)

	// whitespace-only counts as blank
	_, err = BuildSubmissionBatch("Quiz", repository.CategoryGeneral, "2025", WinnerSlots{
		First:  WinnerEntry{Participant: "   "},
		Second: WinnerEntry{Participant: "Basil"},
	})
	assert.ErrorIs(t, err, ErrMissingFirstPlace)

	_, err = BuildSubmissionBatch("Quiz", repository.CategoryGeneral, "2025", WinnerSlots{})
	assert.ErrorIs(t, err, ErrMissingFirstPlace)
}

// End-to-end over the pure pipeline: batch -> view -> podium.
func TestSubmissionToPodiumScenario(t *testing.T) {
	batch, err := BuildSubmissionBatch("Quiz", repository.CategoryGeneral, "2025", WinnerSlots{
		First:  WinnerEntry{Participant: "A"},
		Second: WinnerEntry{Participant: "B"},
		Third:  WinnerEntry{Participant: ""},
	})
	assert.NoError(t, err)
	assert.Len(t, batch, 2)

	view := ranking.View(batch, ranking.Filters{Year: "2025", Category: repository.CategoryGeneral})
	assert.Len(t, view, 2)
	assert.Equal(t, "A", view[0].Participant)
	assert.Equal(t, 10, view[0].Points)
	assert.Equal(t, "B", view[1].Participant)
	assert.Equal(t, 7, view[1].Points)

	podium := ranking.PodiumOf(batch)
	assert.Equal(t, "A", podium.First.Participant)
	assert.Equal(t, "B", podium.Second.Participant)
	assert.Nil(t, podium.Third)
}
