package drawservice

// CountMatches reports how many of the ticket's numbers appear among
// the winning numbers. Pure, order-insensitive.
func CountMatches(ticketNumbers, winningNumbers []int32) int {
	winning := make(map[int32]struct{}, len(winningNumbers))
	for _, n := range winningNumbers {
		winning[n] = struct{}{}
	}

	matches := 0
	for _, n := range ticketNumbers {
		if _, ok := winning[n]; ok {
			matches++
		}
	}
	return matches
}
