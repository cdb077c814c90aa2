// Package fleet models the trucks of the fleet directory.
//
// A Truck is homed at a warehouse, has a weight/volume capacity and may have a
// driver. Its status is the binding flag used by every workflow that puts
// cargo on it:
//
//	AVAILABLE -> ASSIGNED -> IN_TRANSIT -> AVAILABLE
//	AVAILABLE <-> MAINTENANCE
//
// Only an AVAILABLE truck can be bound, which is what keeps a truck from
// carrying two active shipments or assignments at once.
package fleet
