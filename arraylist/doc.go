// Package arraylist implements a generic growable vector with explicit capacity bookkeeping.
//
// A List owns a contiguous buffer of exactly Cap() slots, of which the first Len() hold live values.
// Inserting into a full list doubles the capacity before the value is written; capacity never shrinks.
// Index-based operations are bounds-checked against Len() and report failures through their error
// return instead of panicking.
//
// Lists come in two ownership flavors. New allocates the header and the buffer and hands back a
// pointer the caller owns. Init configures a List value the caller already holds, such as a local
// variable or a struct field, and only allocates the buffer. Destroy releases the buffer for both;
// any later call on the destroyed list fails with ErrDestroyed.
//
// A List is not safe for concurrent use. Growth reallocates the buffer, so values obtained through
// Snapshot are copies and never alias the live storage.
package arraylist
