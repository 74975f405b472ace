package drawservice

import "fmt"

const (
	// TierNone marks a ticket with fewer than three matches.
	TierNone = 0
	// Tier1 pays the 5-match jackpot share, Tier2 the 4-match share,
	// Tier3 the 3-match share.
	Tier1 = 1
	Tier2 = 2
	Tier3 = 3
)

// NoPrize is the descriptor reported for tickets outside every tier.
const NoPrize = "0"

// Tiers maps match counts to payout tiers. The shares are policy
// loaded from configuration, not code.
type Tiers struct {
	shares map[int]int
}

func NewTiers(tier1Share, tier2Share, tier3Share int) *Tiers {
	return &Tiers{
		shares: map[int]int{
			Tier1: tier1Share,
			Tier2: tier2Share,
			Tier3: tier3Share,
		},
	}
}

// Classify is total over match counts 0..5.
func (t *Tiers) Classify(matches int) int {
	switch matches {
	case 5:
		return Tier1
	case 4:
		return Tier2
	case 3:
		return Tier3
	default:
		return TierNone
	}
}

func (t *Tiers) Prize(tier int) string {
	if tier == TierNone {
		return NoPrize
	}
	return fmt.Sprintf("%d%% del pool", t.shares[tier])
}

func (t *Tiers) PrizeForMatches(matches int) string {
	return t.Prize(t.Classify(matches))
}
