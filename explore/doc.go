// Package explore tracks the explored region of an unbounded 2D integer
// coordinate space for a single agent that visits points one at a time.
//
// What:
//
//   - Grid grows on demand to the minimal bounding rectangle covering every
//     registered coordinate; it never shrinks.
//   - Each cell is Estimated (never visited) or Explored (visited at least once).
//   - Border registrations overwrite per-axis signals (XMaxed, YMaxed) used by a
//     planner to infer that the agent touched a world boundary.
//   - Statistics: PercentExplored, Efficiency, IsExplored and a Stats snapshot.
//   - Region analysis: ExploredRegions (connected explored components) and
//     Frontier (unexplored cells touching explored ones).
//
// Growth:
//
//	register (5,0) on an empty grid      then register (1,2)
//
//	    x→ 0 1 2 3 4 5                       x→ 0 1 2 3 4 5
//	  y 0  . . . . . #                     y 0  . . . . . #
//	                                         1  . . . . . .
//	                                         2  . # . . . .
//
// Columns are appended first, then every column is extended to the new height.
//
// Complexity:
//
//   - RegisterPoint:              O(1) without growth; growing by Δw columns and
//     Δh rows costs O(Δw·H' + W'·Δh) plus column reallocation (W',H' = new size).
//   - IsPointExplored, State:     O(1).
//   - Cells, ExploredRegions,
//     Frontier:                   O(W×H).
//
// Errors:
//
//   - ErrInvalidPoint (type ErrTypeInvalidPoint): nil point, negative coordinate
//     or coordinate equal to math.MaxInt passed to a registering call.
//   - ErrGridOverflow (type ErrTypeGridOverflow): the grown rectangle would hold
//     more than math.MaxInt cells.
//
// Rejected registrations leave the grid unchanged.
//
// Concurrency:
//
//	Every method takes a single RWMutex for its whole duration, so readers never
//	observe a partially grown grid.
package explore
