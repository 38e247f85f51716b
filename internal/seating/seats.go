package seating

import (
	"sort"

	"github.com/google/uuid"
)

// Candidate is an unseated guest eligible for automatic placement.
type Candidate struct {
	GuestID uuid.UUID
	Group   string
}

// OrderCandidates sorts by group label ascending with the empty label
// last, then by guest id, so guests sharing a label are contiguous.
func OrderCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if (a.Group == "") != (b.Group == "") {
			return b.Group == ""
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.GuestID.String() < b.GuestID.String()
	})
}

// NextSeatNumber returns the smallest integer >= 1 not present in taken.
func NextSeatNumber(taken map[int]bool) int {
	n := 1
	for taken[n] {
		n++
	}
	return n
}
