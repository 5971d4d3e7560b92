// Package stitch implements an in-memory, archetype-based record store for
// entities with dynamically changing sets of typed components.
//
// Features:
//   - Columnar storage: one typed column per component type per archetype,
//     all sharing one size/capacity descriptor.
//   - Archetype graph with cached add/remove edges, so repeated transitions
//     skip Kind arithmetic and lookups.
//   - Swap-remove compaction with an explicit row -> entity reverse index, so
//     removals repair exactly one Location Record.
//   - Per-type index (column positions plus archetype bitmaps) for O(1)
//     membership tests and fast View construction.
//   - Generational entity IDs: recycled slots differ by GenerationStride.
//
// A World is single-threaded; callers synchronize externally.
package stitch
