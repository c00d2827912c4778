// Package vm implements the UVM interpreter: instruction decode, the
// fetch/decode/execute loop over an exclusively owned machine state, and
// sparse XML state snapshots.
//
// One run owns exactly one Machine. The state is mutated in place by the
// step loop and nothing else touches it, so execution is deterministic
// and needs no locking.
package vm
