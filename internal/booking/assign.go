package booking

// Room assignment is a pure function over the snapshot of occupied room
// numbers read inside the booking transaction. No counters or caches are
// kept across requests.

// distinctRoomCount counts distinct room numbers among the overlapping
// assignments. A room occupied by more than one row still counts once.
func distinctRoomCount(occupied []int) int {
	seen := make(map[int]struct{}, len(occupied))
	for _, n := range occupied {
		seen[n] = struct{}{}
	}
	return len(seen)
}

// firstFreeRoom scans candidate room numbers 1..capacity in ascending order
// and returns the first one not in the occupied set. The lowest free number
// wins, so repeated calls over the same snapshot are deterministic.
// Returns 0 when every room is taken.
func firstFreeRoom(capacity int, occupied []int) int {
	taken := make(map[int]struct{}, len(occupied))
	for _, n := range occupied {
		taken[n] = struct{}{}
	}
	for number := 1; number <= capacity; number++ {
		if _, ok := taken[number]; !ok {
			return number
		}
	}
	return 0
}

// remainingRooms computes how many rooms of the type are free for the whole
// interval given the occupied snapshot, clamped at zero.
func remainingRooms(capacity int, occupied []int) int {
	remaining := capacity - distinctRoomCount(occupied)
	if remaining < 0 {
		return 0
	}
	return remaining
}
