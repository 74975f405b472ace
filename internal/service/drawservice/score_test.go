package drawservice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountMatches(t *testing.T) {
	tests := []struct {
		name    string
		ticket  []int32
		winning []int32
		want    int
	}{
		{"all match", []int32{1, 2, 3, 4, 5}, []int32{1, 2, 3, 4, 5}, 5},
		{"four match", []int32{1, 2, 3, 4, 50}, []int32{1, 2, 3, 4, 5}, 4},
		{"three match", []int32{1, 2, 3, 10, 20}, []int32{1, 2, 3, 4, 5}, 3},
		{"none match", []int32{10, 20, 30, 40, 50}, []int32{1, 2, 3, 4, 5}, 0},
		{"empty ticket", nil, []int32{1, 2, 3, 4, 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountMatches(tt.ticket, tt.winning))
		})
	}
}

func TestCountMatchesOrderInvariant(t *testing.T) {
	ticket := []int32{1, 2, 3, 10, 20}
	winning := []int32{1, 2, 3, 4, 5}
	want := CountMatches(ticket, winning)

	for i := 0; i < 20; i++ {
		shuffledTicket := append([]int32(nil), ticket...)
		shuffledWinning := append([]int32(nil), winning...)
		rand.Shuffle(len(shuffledTicket), func(i, j int) {
			shuffledTicket[i], shuffledTicket[j] = shuffledTicket[j], shuffledTicket[i]
		})
		rand.Shuffle(len(shuffledWinning), func(i, j int) {
			shuffledWinning[i], shuffledWinning[j] = shuffledWinning[j], shuffledWinning[i]
		})

		assert.Equal(t, want, CountMatches(shuffledTicket, shuffledWinning))
	}
}
