/*
Package memory provides the scratch-memory shim of the callback table: a
thin forwarding layer over the Go runtime allocator, not an arena or pool.

Allocate hands out an opaque Block whose bytes are all zero, or nil when the
request cannot be satisfied (size overflow, runtime refusal). Free and
Block.Release are nil-safe, preserving the "exactly one legal release,
releasing nothing is a no-op" contract without manual pointer discipline.
The package keeps no bookkeeping of outstanding allocations.
*/
package memory
