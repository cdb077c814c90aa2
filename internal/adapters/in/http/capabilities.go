package http

import "slices"

// Capability names an operation exposed over HTTP.
type Capability string

const (
	RegisterTrucks           Capability = "trucks:register"
	MaintainTrucks           Capability = "trucks:maintain"
	FindAvailableTrucks      Capability = "trucks:available"
	TransferInventory        Capability = "inventory:transfer"
	ViewReorderAlerts        Capability = "inventory:reorder"
	ViewWarehouseReorder     Capability = "inventory:reorder:warehouse"
	AssignInventory          Capability = "assignments:create"
	ViewAssignments          Capability = "assignments:view"
	ViewWarehouseAssignments Capability = "assignments:view:warehouse"
	UpdateAssignmentStatus   Capability = "assignments:status"
	RegisterShipments        Capability = "shipments:register"
	ViewShipments            Capability = "shipments:view"
	ViewPendingShipments     Capability = "shipments:pending"
	AssignTrucks             Capability = "shipments:assign_truck"
	UpdateShipmentStatus     Capability = "shipments:status"
	CancelShipments          Capability = "shipments:cancel"
	ProcessShipments         Capability = "processing:scan"
	ViewProcessing           Capability = "processing:summary"
)

var (
	everyone = []Role{RoleAdmin, RoleLogisticsManager, RoleWarehouseStaff, RoleDeliveryDriver}
	managers = []Role{RoleAdmin, RoleLogisticsManager}
	floor    = []Role{RoleAdmin, RoleLogisticsManager, RoleWarehouseStaff}
	scanners = []Role{RoleAdmin, RoleWarehouseStaff}
)

var capabilities = map[Capability][]Role{
	RegisterTrucks:           managers,
	MaintainTrucks:           {RoleAdmin, RoleLogisticsManager, RoleDeliveryDriver},
	FindAvailableTrucks:      managers,
	TransferInventory:        floor,
	ViewReorderAlerts:        managers,
	ViewWarehouseReorder:     floor,
	AssignInventory:          floor,
	ViewAssignments:          everyone,
	ViewWarehouseAssignments: floor,
	UpdateAssignmentStatus:   everyone,
	RegisterShipments:        managers,
	ViewShipments:            everyone,
	ViewPendingShipments:     managers,
	AssignTrucks:             managers,
	UpdateShipmentStatus:     {RoleAdmin, RoleLogisticsManager, RoleDeliveryDriver},
	CancelShipments:          {RoleAdmin},
	ProcessShipments:         scanners,
	ViewProcessing:           floor,
}

// Allowed reports whether role holds capability. Unknown capabilities are denied.
func Allowed(role Role, capability Capability) bool {
	return slices.Contains(capabilities[capability], role)
}
