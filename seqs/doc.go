/*
Package seqs provides lazy combinators over Go iterators (iter.Seq).

Every function returns a sequence that does nothing until it is ranged, and reads its input
only as far as the consumer asks. The combinators fall into a few groups:

  - **Selection by position**: [Choose], [Skip], [Take], [Drop]. [Choose] stops reading its
    input as soon as the highest requested position has been produced, so it can be used on
    unbounded sequences such as [Naturals].
  - **Windows and buckets**: [Walks] (overlapping windows, stride 1), [Slices] (non-overlapping,
    padded), [Split] (buckets delimited by cut points), and the general [Window] and [Chunk].
  - **Flattening**: [Flatten] (one level) and [Flat] (fully recursive), which classify every
    value once into a [Kind].
  - **Transformations**: [Map], [Filter], [FlatMap], [Concat], [Zip], [Enumerate], [Distinct],
    [Unique], [Peek], [Scan], [Cumsum], [Diffs], [Nopes].
  - **Sinks**: [First], [Count], [Any], [All].
  - **Randomness**: [Shuffle], [Sample], [Roll], [Powerset] over finite sequences.

# Errors

Functions taking a window length or cut points validate them up front and return
[ErrInvalidArgument] instead of a sequence. [Indices] returns [ErrNotInteger] for non-integer
index arguments.

# Finiteness

Functions that materialize their input ([Shuffle], [Sample], [Roll], [Powerset]) or need to see
its end ([Skip] to finish, the last bucket of [Split]) never complete on unbounded sequences.
*/
package seqs
