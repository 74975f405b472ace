package rng

import (
	"math/rand"
	"sort"

	"github.com/koquifi/lottoframe/internal/domain"
)

// Source produces a sorted set of unique lottery numbers. Draws inject
// it so tests can force a known combination.
type Source interface {
	Draw() []int32
}

// PseudoSource samples with math/rand. Not suitable for a real
// monetary draw; a verifiable randomness backend would implement
// Source in its place.
type PseudoSource struct{}

func New() *PseudoSource {
	return &PseudoSource{}
}

// Draw rejection-samples five unique numbers in [1,50], ascending.
// The domain is small, so repeats are rare and termination is quick.
func (s *PseudoSource) Draw() []int32 {
	seen := make(map[int32]struct{}, domain.NumbersPerTicket)
	numbers := make([]int32, 0, domain.NumbersPerTicket)
	for len(numbers) < domain.NumbersPerTicket {
		n := int32(rand.Intn(domain.MaxNumber)) + domain.MinNumber
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return numbers
}
