// Package shipment models a shipment moving between two warehouses together
// with the item-level scan reconciliation that decides when it may be loaded.
//
// Lifecycle:
//
//	PENDING -> SCHEDULED_FOR_PICKUP -> READY_FOR_PICKUP -> IN_TRANSIT -> DELIVERED
//	any non-terminal status -> CANCELLED
//
// A truck assignment moves a PENDING shipment to SCHEDULED_FOR_PICKUP. While it
// waits for pickup every item is scanned, reported missing or weighed; once all
// items are accounted for and the scanned weight matches the expected weight
// within the ReadinessPolicy tolerance the shipment is promoted to
// READY_FOR_PICKUP. Statuses never move backwards.
package shipment
