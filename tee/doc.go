/*
Package tee duplicates a single-pass [iter.Seq] into independent cursors.

Every cursor created by [New] (or cloned from another cursor) is a sibling: all siblings
read from one shared [Buffer]. A cursor that reads past the end of the buffer pulls exactly
one new element from the source and appends it, so the source is never asked twice for the
same position no matter how the siblings interleave.

# Memory

The buffer only retains the elements between the most-behind and the most-ahead live cursor.
Elements that every live cursor has passed are released, which keeps lock-step readers over
unbounded sources (sliding windows, for example) in constant memory:

	cursors := tee.New(seqs.Naturals(), 2)
	cursors[1].Advance(1)
	for {
		a, _ := cursors[0].Next()
		b, _ := cursors[1].Next()
		// (0,1) (1,2) (2,3) ...
	}

A cursor that is never advanced pins the whole sequence in memory. Call [Cursor.Close] on
cursors that are no longer needed; when the last cursor of a buffer closes, the underlying
pull is stopped.

# Concurrency

Cursors are not safe for concurrent use. Siblings must be advanced by a single goroutine at a
time.
*/
package tee
