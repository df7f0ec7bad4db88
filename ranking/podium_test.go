package ranking

import (
	"testing"

	"sargalayam/repository"

	"github.com/stretchr/testify/assert"
)

func TestPodiumOfFullGroup(t *testing.T) {
	podium := PodiumOf([]*repository.Result{
		makeResult(1, "Quiz", repository.CategoryGeneral, "2025", "Amina", "", 1, 10),
		makeResult(2, "Quiz", repository.CategoryGeneral, "2025", "Basil", "", 2, 7),
		makeResult(3, "Quiz", repository.CategoryGeneral, "2025", "Ciara", "", 3, 5),
	})
	assert.Equal(t, "Amina", podium.First.Participant)
	assert.Equal(t, "Basil", podium.Second.Participant)
	assert.Equal(t, "Ciara", podium.Third.Participant)
}

func TestPodiumOfMissingPositionsAreNil(t *testing.T) {
	podium := PodiumOf([]*repository.Result{
		makeResult(1, "Quiz", repository.CategoryGeneral, "2025", "Amina", "", 1, 10),
	})
	assert.NotNil(t, podium.First)
	assert.Nil(t, podium.Second)
	assert.Nil(t, podium.Third)
}

func TestPodiumOfDuplicatePositionFirstMatchWins(t *testing.T) {
	podium := PodiumOf([]*repository.Result{
		makeResult(1, "Quiz", repository.CategoryGeneral, "2025", "Amina", "", 1, 10),
		makeResult(2, "Quiz", repository.CategoryGeneral, "2025", "Imposter", "", 1, 10),
	})
	assert.Equal(t, "Amina", podium.First.Participant)
}

func TestPodiumOfIgnoresIrrelevantPositions(t *testing.T) {
	podium := PodiumOf([]*repository.Result{
		makeResult(1, "Quiz", repository.CategoryGeneral, "2025", "Straggler", "", 7, 0),
		makeResult(2, "Quiz", repository.CategoryGeneral, "2025", "Amina", "", 1, 10),
	})
	assert.Equal(t, "Amina", podium.First.Participant)
	assert.Nil(t, podium.Second)
	assert.Nil(t, podium.Third)
}

func TestPodiumAt(t *testing.T) {
	first := makeResult(1, "Quiz", repository.CategoryGeneral, "2025", "Amina", "", 1, 10)
	podium := PodiumOf([]*repository.Result{first})
	assert.Equal(t, first, podium.At(1))
	assert.Nil(t, podium.At(2))
	assert.Nil(t, podium.At(3))
	assert.Nil(t, podium.At(0))
	assert.Nil(t, podium.At(4))
}

func TestPodiumOfEmptyInput(t *testing.T) {
	podium := PodiumOf(nil)
	assert.Nil(t, podium.First)
	assert.Nil(t, podium.Second)
	assert.Nil(t, podium.Third)
}
