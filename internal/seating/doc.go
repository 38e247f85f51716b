// Package seating holds the allocation rules used when guests are placed
// at tables: candidate ordering, seat numbering and the greedy
// auto-assignment planner.
//
// Everything here is pure. Callers take a snapshot of tables and guests,
// ask for a Plan, and apply the placements through their own
// transactional write path.
package seating
