// Package session holds the state that exists only while the vault is
// unlocked: the key store handle and the queue of signing requests waiting
// for the user's decision.
//
// A PendingRequest has exactly one owner at a time. It is created by the
// feed, owned by the Queue while waiting, moved out by PopFront and then
// resolved or abandoned exactly once. Any other sequence is a programming
// error and panics.
package session
