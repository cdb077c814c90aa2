// Package inventory models the inventory ledger: per-warehouse stock lines and
// the transfers that move quantity between warehouses.
//
// Key business rules:
//   - a line's quantity never drops below zero; a withdrawal that would do so
//     fails with an insufficient inventory error and leaves the line untouched
//   - lines are identified within a warehouse by SKU; crediting a warehouse that
//     has no line for a SKU replicates the source line there
//   - transfers follow PENDING -> IN_TRANSIT -> COMPLETED and may be cancelled
//     until they complete
package inventory
