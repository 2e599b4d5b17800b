// Package tour provides the tour value type and the per-worker work stack
// used by the depth-first search.
//
// A Tour is an ordered sequence of visited cities together with its running
// cost. Tours are immutable: Extend returns a fresh copy, so a tour held by
// several stack entries can be shared freely across goroutines without
// locks.
//
// A Stack is a singly linked LIFO of pending extensions (Item values). Each
// stack is exclusively owned by one worker; ownership of a contiguous half
// transfers to another worker only through Split and Adopt, which the
// solver performs under its coordinator lock.
package tour
