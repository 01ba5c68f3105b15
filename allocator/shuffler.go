//go:generate go run go.uber.org/mock/mockgen -source=shuffler.go -destination=../mocks/mock_shuffler.go -package=mocks
package allocator

import (
	"team-lab/domain"

	"github.com/samber/lo/mutable"
)

// Shuffler reorders a roster in place before it is bucketed by role.
type Shuffler interface {
	Shuffle(roster domain.Roster)
}

// RandomShuffler draws a fresh uniform permutation on every call.
type RandomShuffler struct{}

func NewRandomShuffler() RandomShuffler {
	return RandomShuffler{}
}

func (RandomShuffler) Shuffle(roster domain.Roster) {
	mutable.Shuffle(roster)
}
