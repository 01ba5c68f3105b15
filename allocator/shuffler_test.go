package allocator

import (
	"team-lab/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomShuffler_Shuffle_IsPermutation(t *testing.T) {
	req := require.New(t)
	roster := buildRoster(6, 9, 5)
	shuffled := roster.Clone()

	NewRandomShuffler().Shuffle(shuffled)

	req.ElementsMatch(roster, shuffled)
}

// Twenty distinct entries give 20! orderings, so two equal draws in a row never happen in practice.
func TestRandomShuffler_Shuffle_DrawsFreshOrderEachCall(t *testing.T) {
	req := require.New(t)
	shuffler := NewRandomShuffler()
	first := buildRoster(6, 9, 5)
	second := first.Clone()

	shuffler.Shuffle(first)
	shuffler.Shuffle(second)

	req.ElementsMatch(first, second)
	req.NotEqual(names(first), names(second))
}

func TestRandomShuffler_Shuffle_ToleratesTinyRosters(t *testing.T) {
	req := require.New(t)
	shuffler := NewRandomShuffler()
	var empty domain.Roster
	single := domain.Roster{entry("Tony", domain.Attack)}

	shuffler.Shuffle(empty)
	shuffler.Shuffle(single)

	req.Empty(empty)
	req.Equal(domain.Roster{entry("Tony", domain.Attack)}, single)
}
