package validate

import "github.com/koquifi/lottoframe/internal/domain"

// Numbers reports whether nums is a valid ticket combination:
// exactly five pairwise distinct integers, each in [1,50].
func Numbers(nums []int32) bool {
	if len(nums) != domain.NumbersPerTicket {
		return false
	}
	seen := make(map[int32]struct{}, len(nums))
	for _, n := range nums {
		if n < domain.MinNumber || n > domain.MaxNumber {
			return false
		}
		if _, ok := seen[n]; ok {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}
