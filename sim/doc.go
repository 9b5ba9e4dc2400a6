// Package sim holds the mutable state of an interactive error-placement
// session: one immutable hgp.Code plus the two error vectors a user edits.
//
// What:
//
//   - Session owns the bit-flip (X) and phase-flip (Z) error vectors,
//     one bit per physical qubit, and recomputes both syndromes on demand.
//   - ToggleX/ToggleZ flip a single qubit's error bit (the click gesture);
//     SetX/SetZ place or clear one explicitly; ClearErrors zeroes both.
//   - Reset swaps in a freshly constructed code and zeroes the errors —
//     there is no partial-update path for a changed code.
//
// Why:
//
//   - The construction and syndrome functions in hgp are pure; something
//     has to own the mutation between recomputations. A Session makes that
//     ownership explicit and caller-held instead of package-global.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; a sync.RWMutex guards the
//     vectors. Reads (XErrors, Syndromes) take the read lock and return
//     copies, so callers never alias internal state.
//
// Errors:
//
//   - hgp.ErrNilCode: NewSession or Reset received a nil code.
//   - hgp.ErrQubitOutOfRange: a toggle or set addressed a qubit outside [0, N).
package sim
