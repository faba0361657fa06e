/*
Package regen provides [Regenerator], a replayable view over a single-pass [iter.Seq].

A Regenerator reads its source at most once, yet every call to [Regenerator.All] starts the
sequence over from the first element:

	r := regen.New(lines(os.Stdin)) // a single-pass source
	for l := range r.All() {
		// first pass
	}
	for l := range r.All() {
		// same lines again
	}

Internally the source is split with [tee.New] into a baseline cursor, which is never consumed,
and an active cursor. Each traversal is a fresh sibling of the baseline.

# Finiteness

Sources may be unbounded. Operations that have to see the end of the sequence ([Regenerator.Len],
negative [Regenerator.At], [Power], [Product], [Regenerator.Shuffle]) never return on an
unbounded source. That is the caller's responsibility; no timeout is applied.

# Mutation

[Scale], [Boost], [Regenerator.Append], [Regenerator.Inject], [Regenerator.Map] and
[Regenerator.Filter] replace the baseline in place with a lazy stage over the old one and
return the receiver, so calls can be chained. Nothing is evaluated until the next traversal.
*/
package regen
