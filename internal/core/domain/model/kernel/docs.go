// Package kernel provides the shared value objects of the logistics domain.
//
// The package includes:
//   - UUID: identifier of every aggregate and entity, ordered so that row locks
//     can always be taken in the same sequence
//   - Load: a weight and volume pair used both for truck capacity and for the
//     load produced by a set of inventory lines
//
// Values in this package are immutable and safe for concurrent use.
package kernel
