package usecase

// EstimateEventMinutes distributes count events evenly over a player's
// minutes on the field. A single event lands at the midpoint; multiple
// events land at floor(k * minutes/count) for k = 1..count. The output
// is an approximation with defined, reproducible values, not observed
// timestamps.
func EstimateEventMinutes(count, minutesPlayed int) []int {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []int{minutesPlayed / 2}
	}

	interval := float64(minutesPlayed) / float64(count)
	out := make([]int, 0, count)
	for k := 1; k <= count; k++ {
		out = append(out, int(float64(k)*interval))
	}
	return out
}
