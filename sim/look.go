// LOOK disk scheduling.

package sim

// LOOK is the elevator policy with the reversal boundary at the farthest
// pending request, never the disk edge: the direction flips exactly when no
// eligible request remains on the current side. SCAN's sweep already turns in
// place at its last candidate, so the two share one loop; they stay separate
// entry points because they are distinct selectors with distinct parameters.
func LOOK(reqs []Request, initialHead int, dir Direction) Result {
	return elevator(reqs, initialHead, dir)
}
