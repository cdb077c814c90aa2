package http

import (
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func errorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// Requests.

type RegisterTruckRequest struct {
	RegistrationNumber string          `json:"registration_number"`
	Model              string          `json:"model"`
	CapacityWeight     decimal.Decimal `json:"capacity_weight"`
	CapacityVolume     decimal.Decimal `json:"capacity_volume"`
	HomeWarehouseID    string          `json:"home_warehouse_id"`
	DriverID           *string         `json:"driver_id"`
}

type MaintainTruckRequest struct {
	Completed           bool       `json:"completed"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date"`
}

type TransferInventoryRequest struct {
	SourceInventoryID      string `json:"source_inventory_id"`
	DestinationWarehouseID string `json:"destination_warehouse_id"`
	Quantity               int    `json:"quantity"`
}

type AssignmentLineRequest struct {
	InventoryID string `json:"inventory_id"`
	Quantity    int    `json:"quantity"`
}

type AssignInventoryRequest struct {
	TruckID                string                  `json:"truck_id"`
	SourceWarehouseID      string                  `json:"source_warehouse_id"`
	DestinationWarehouseID string                  `json:"destination_warehouse_id"`
	Items                  []AssignmentLineRequest `json:"items"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type ShipmentItemRequest struct {
	Barcode        string          `json:"barcode"`
	Description    string          `json:"description"`
	ExpectedWeight decimal.Decimal `json:"expected_weight"`
}

type RegisterShipmentRequest struct {
	TrackingNumber         string                `json:"tracking_number"`
	SourceInventoryID      string                `json:"source_inventory_id"`
	DestinationWarehouseID string                `json:"destination_warehouse_id"`
	Quantity               int                   `json:"quantity"`
	TotalVolume            decimal.Decimal       `json:"total_volume"`
	EstimatedDeliveryAt    *time.Time            `json:"estimated_delivery_at"`
	Items                  []ShipmentItemRequest `json:"items"`
	Notes                  string                `json:"notes"`
}

type AssignTruckRequest struct {
	ShipmentID        string    `json:"shipment_id"`
	TruckID           string    `json:"truck_id"`
	ScheduledPickupAt time.Time `json:"scheduled_pickup_at"`
	Notes             string    `json:"notes"`
}

type ScanItemRequest struct {
	TrackingNumber string           `json:"tracking_number"`
	Barcode        string           `json:"barcode"`
	Weight         *decimal.Decimal `json:"weight"`
	Status         string           `json:"status"`
	Notes          string           `json:"notes"`
}

type ReportMissingRequest struct {
	Notes string `json:"notes"`
}

type WeightReadingRequest struct {
	ActualWeight decimal.Decimal `json:"actual_weight"`
}

// Responses.

type IDResponse struct {
	ID string `json:"id"`
}

type TruckResponse struct {
	ID                  string          `json:"id"`
	RegistrationNumber  string          `json:"registration_number"`
	Model               string          `json:"model"`
	CapacityWeight      decimal.Decimal `json:"capacity_weight"`
	CapacityVolume      decimal.Decimal `json:"capacity_volume"`
	DriverID            *string         `json:"driver_id,omitempty"`
	HomeWarehouseID     string          `json:"home_warehouse_id"`
	Status              string          `json:"status"`
	LastMaintenanceDate *time.Time      `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time      `json:"next_maintenance_date,omitempty"`
}

func newTruckResponse(v queries.TruckView) TruckResponse {
	return TruckResponse{
		ID:                  v.ID.String(),
		RegistrationNumber:  v.RegistrationNumber,
		Model:               v.Model,
		CapacityWeight:      v.CapacityWeight,
		CapacityVolume:      v.CapacityVolume,
		DriverID:            idString(v.DriverID),
		HomeWarehouseID:     v.HomeWarehouseID.String(),
		Status:              v.Status,
		LastMaintenanceDate: v.LastMaintenanceDate,
		NextMaintenanceDate: v.NextMaintenanceDate,
	}
}

func newTruckResponseFromDomain(t *fleet.Truck) TruckResponse {
	return TruckResponse{
		ID:                  t.ID().String(),
		RegistrationNumber:  t.RegistrationNumber(),
		Model:               t.Model(),
		CapacityWeight:      t.Capacity().Weight(),
		CapacityVolume:      t.Capacity().Volume(),
		DriverID:            idString(t.DriverID()),
		HomeWarehouseID:     t.HomeWarehouseID().String(),
		Status:              t.Status().String(),
		LastMaintenanceDate: t.LastMaintenanceDate(),
		NextMaintenanceDate: t.NextMaintenanceDate(),
	}
}

type ReorderAlertResponse struct {
	InventoryID     string `json:"inventory_id"`
	WarehouseID     string `json:"warehouse_id"`
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	ReorderPoint    int    `json:"reorder_point"`
	ReorderQuantity int    `json:"reorder_quantity"`
}

type AssignmentItemResponse struct {
	InventoryID string          `json:"inventory_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
	Volume      decimal.Decimal `json:"volume"`
}

type AssignmentResponse struct {
	ID                     string                   `json:"id"`
	TruckID                string                   `json:"truck_id"`
	SourceWarehouseID      string                   `json:"source_warehouse_id"`
	DestinationWarehouseID string                   `json:"destination_warehouse_id"`
	Status                 string                   `json:"status"`
	Items                  []AssignmentItemResponse `json:"items"`
	TotalWeight            decimal.Decimal          `json:"total_weight"`
	TotalVolume            decimal.Decimal          `json:"total_volume"`
	AssignedBy             string                   `json:"assigned_by"`
	AssignedAt             time.Time                `json:"assigned_at"`
	CompletedAt            *time.Time               `json:"completed_at,omitempty"`
}

func newAssignmentResponse(v queries.AssignmentView) AssignmentResponse {
	resp := AssignmentResponse{
		ID:                     v.ID.String(),
		TruckID:                v.TruckID.String(),
		SourceWarehouseID:      v.SourceWarehouseID.String(),
		DestinationWarehouseID: v.DestinationWarehouseID.String(),
		Status:                 v.Status,
		Items:                  make([]AssignmentItemResponse, 0, len(v.Items)),
		TotalWeight:            v.TotalWeight,
		TotalVolume:            v.TotalVolume,
		AssignedBy:             v.AssignedBy.String(),
		AssignedAt:             v.AssignedAt,
		CompletedAt:            v.CompletedAt,
	}
	for _, item := range v.Items {
		resp.Items = append(resp.Items, AssignmentItemResponse{
			InventoryID: item.InventoryID.String(),
			SKU:         item.SKU,
			Name:        item.Name,
			Quantity:    item.Quantity,
			Weight:      item.Weight,
			Volume:      item.Volume,
		})
	}
	return resp
}

func newAssignmentResponses(views []queries.AssignmentView) []AssignmentResponse {
	list := make([]AssignmentResponse, 0, len(views))
	for _, v := range views {
		list = append(list, newAssignmentResponse(v))
	}
	return list
}

type WarehouseAssignmentsResponse struct {
	Source      []AssignmentResponse `json:"source"`
	Destination []AssignmentResponse `json:"destination"`
}

type AssignInventoryResponse struct {
	Success                  bool                     `json:"success"`
	Message                  string                   `json:"message"`
	AssignmentID             string                   `json:"assignment_id,omitempty"`
	TruckID                  string                   `json:"truck_id,omitempty"`
	TruckRegistrationNumber  string                   `json:"truck_registration_number,omitempty"`
	DriverID                 *string                  `json:"driver_id,omitempty"`
	OriginWarehouseName      string                   `json:"origin_warehouse_name,omitempty"`
	DestinationWarehouseName string                   `json:"destination_warehouse_name,omitempty"`
	Items                    []AssignmentItemResponse `json:"items,omitempty"`
	Status                   string                   `json:"status,omitempty"`
	AssignedAt               *time.Time               `json:"assigned_at,omitempty"`
}

func newAssignInventoryResponse(r commands.AssignInventoryToTruckResult) AssignInventoryResponse {
	resp := AssignInventoryResponse{Success: r.Success, Message: r.Message}
	if !r.Success {
		return resp
	}
	assignedAt := r.AssignedAt
	resp.AssignmentID = r.AssignmentID.String()
	resp.TruckID = r.TruckID.String()
	resp.TruckRegistrationNumber = r.TruckRegistrationNumber
	resp.DriverID = idString(r.DriverID)
	resp.OriginWarehouseName = r.OriginWarehouseName
	resp.DestinationWarehouseName = r.DestinationWarehouseName
	resp.Status = r.Status
	resp.AssignedAt = &assignedAt
	for _, item := range r.Items {
		resp.Items = append(resp.Items, AssignmentItemResponse{
			InventoryID: item.InventoryID.String(),
			SKU:         item.SKU,
			Name:        item.Name,
			Quantity:    item.Quantity,
			Weight:      item.Weight,
			Volume:      item.Volume,
		})
	}
	return resp
}

type AssignmentStatusResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func newAssignmentStatusResponse(a *assignment.Assignment) AssignmentStatusResponse {
	return AssignmentStatusResponse{ID: a.ID().String(), Status: a.Status().String(), CompletedAt: a.CompletedAt()}
}

type ShipmentItemResponse struct {
	ID             string           `json:"id"`
	Barcode        string           `json:"barcode"`
	Description    string           `json:"description,omitempty"`
	ExpectedWeight decimal.Decimal  `json:"expected_weight"`
	ObservedWeight *decimal.Decimal `json:"observed_weight,omitempty"`
	Status         string           `json:"status"`
	ProcessedAt    *time.Time       `json:"processed_at,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

func newShipmentItemResponses(views []queries.ShipmentItemView) []ShipmentItemResponse {
	list := make([]ShipmentItemResponse, 0, len(views))
	for _, v := range views {
		list = append(list, ShipmentItemResponse{
			ID:             v.ID.String(),
			Barcode:        v.Barcode,
			Description:    v.Description,
			ExpectedWeight: v.ExpectedWeight,
			ObservedWeight: v.ObservedWeight,
			Status:         v.Status,
			ProcessedAt:    v.ProcessedAt,
			Notes:          v.Notes,
		})
	}
	return list
}

type ShipmentResponse struct {
	ID                     string                 `json:"id"`
	TrackingNumber         string                 `json:"tracking_number"`
	TransferID             *string                `json:"transfer_id,omitempty"`
	OriginWarehouseID      string                 `json:"origin_warehouse_id"`
	DestinationWarehouseID string                 `json:"destination_warehouse_id"`
	TruckID                *string                `json:"truck_id,omitempty"`
	Status                 string                 `json:"status"`
	TotalWeight            decimal.Decimal        `json:"total_weight"`
	TotalVolume            decimal.Decimal        `json:"total_volume"`
	ScheduledPickupAt      *time.Time             `json:"scheduled_pickup_at,omitempty"`
	ActualPickupAt         *time.Time             `json:"actual_pickup_at,omitempty"`
	EstimatedDeliveryAt    *time.Time             `json:"estimated_delivery_at,omitempty"`
	ActualDeliveryAt       *time.Time             `json:"actual_delivery_at,omitempty"`
	Notes                  string                 `json:"notes,omitempty"`
	Items                  []ShipmentItemResponse `json:"items"`
	CreatedBy              string                 `json:"created_by"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
}

func newShipmentResponse(v queries.ShipmentView) ShipmentResponse {
	return ShipmentResponse{
		ID:                     v.ID.String(),
		TrackingNumber:         v.TrackingNumber,
		TransferID:             idString(v.TransferID),
		OriginWarehouseID:      v.OriginWarehouseID.String(),
		DestinationWarehouseID: v.DestinationWarehouseID.String(),
		TruckID:                idString(v.TruckID),
		Status:                 v.Status,
		TotalWeight:            v.TotalWeight,
		TotalVolume:            v.TotalVolume,
		ScheduledPickupAt:      v.ScheduledPickupAt,
		ActualPickupAt:         v.ActualPickupAt,
		EstimatedDeliveryAt:    v.EstimatedDeliveryAt,
		ActualDeliveryAt:       v.ActualDeliveryAt,
		Notes:                  v.Notes,
		Items:                  newShipmentItemResponses(v.Items),
		CreatedBy:              v.CreatedBy.String(),
		CreatedAt:              v.CreatedAt,
		UpdatedAt:              v.UpdatedAt,
	}
}

type RegisterShipmentResponse struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
	ShipmentID     string           `json:"shipment_id,omitempty"`
	TransferID     string           `json:"transfer_id,omitempty"`
	TrackingNumber string           `json:"tracking_number,omitempty"`
	Status         string           `json:"status,omitempty"`
	TotalWeight    *decimal.Decimal `json:"total_weight,omitempty"`
}

func newRegisterShipmentResponse(r commands.RegisterShipmentResult) RegisterShipmentResponse {
	resp := RegisterShipmentResponse{Success: r.Success, Message: r.Message}
	if r.Success {
		total := r.TotalWeight
		resp.ShipmentID = r.ShipmentID.String()
		resp.TransferID = r.TransferID.String()
		resp.TrackingNumber = r.TrackingNumber
		resp.Status = r.Status
		resp.TotalWeight = &total
	}
	return resp
}

type AssignTruckResponse struct {
	Success                 bool       `json:"success"`
	Message                 string     `json:"message"`
	ShipmentID              string     `json:"shipment_id,omitempty"`
	TrackingNumber          string     `json:"tracking_number,omitempty"`
	TruckID                 string     `json:"truck_id,omitempty"`
	TruckRegistrationNumber string     `json:"truck_registration_number,omitempty"`
	DriverID                *string    `json:"driver_id,omitempty"`
	Status                  string     `json:"status,omitempty"`
	ScheduledPickupAt       *time.Time `json:"scheduled_pickup_at,omitempty"`
}

func newAssignTruckResponse(r commands.AssignTruckToShipmentResult) AssignTruckResponse {
	resp := AssignTruckResponse{Success: r.Success, Message: r.Message}
	if r.Success {
		resp.ShipmentID = r.ShipmentID.String()
		resp.TrackingNumber = r.TrackingNumber
		resp.TruckID = r.TruckID.String()
		resp.TruckRegistrationNumber = r.TruckRegistrationNumber
		resp.DriverID = idString(r.DriverID)
		resp.Status = r.Status
		resp.ScheduledPickupAt = r.ScheduledPickupAt
	}
	return resp
}

type ShipmentStatusResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

func newShipmentStatusResponse(s *shipment.Shipment) ShipmentStatusResponse {
	return ShipmentStatusResponse{ID: s.ID().String(), TrackingNumber: s.TrackingNumber(), Status: s.Status().String()}
}

type ProcessingResponse struct {
	Success              bool             `json:"success"`
	Message              string           `json:"message"`
	TrackingNumber       string           `json:"tracking_number,omitempty"`
	ShipmentStatus       string           `json:"shipment_status,omitempty"`
	Barcode              string           `json:"barcode,omitempty"`
	ItemStatus           string           `json:"item_status,omitempty"`
	Weight               *decimal.Decimal `json:"weight,omitempty"`
	TotalProcessedWeight decimal.Decimal  `json:"total_processed_weight"`
	TotalExpectedWeight  decimal.Decimal  `json:"total_expected_weight"`
	ProcessedCount       int              `json:"processed_count"`
	TotalCount           int              `json:"total_count"`
	AllItemsProcessed    bool             `json:"all_items_processed"`
	ReadyForLoading      bool             `json:"ready_for_loading"`
	WeightMismatch       bool             `json:"weight_mismatch"`
	MissingItems         []string         `json:"missing_items"`
}

func newProcessingResponse(r commands.ProcessingResult) ProcessingResponse {
	missing := r.MissingItems
	if missing == nil {
		missing = []string{}
	}
	return ProcessingResponse{
		Success:              r.Success,
		Message:              r.Message,
		TrackingNumber:       r.TrackingNumber,
		ShipmentStatus:       r.ShipmentStatus,
		Barcode:              r.Barcode,
		ItemStatus:           r.ItemStatus,
		Weight:               r.Weight,
		TotalProcessedWeight: r.TotalProcessedWeight,
		TotalExpectedWeight:  r.TotalExpectedWeight,
		ProcessedCount:       r.ProcessedCount,
		TotalCount:           r.TotalCount,
		AllItemsProcessed:    r.AllItemsProcessed,
		ReadyForLoading:      r.ReadyForLoading,
		WeightMismatch:       r.WeightMismatch,
		MissingItems:         missing,
	}
}

type ProcessingSummaryResponse struct {
	ShipmentID           string                 `json:"shipment_id"`
	TrackingNumber       string                 `json:"tracking_number"`
	ShipmentStatus       string                 `json:"shipment_status"`
	TotalItems           int                    `json:"total_items"`
	ProcessedItems       int                    `json:"processed_items"`
	MissingItems         int                    `json:"missing_items"`
	DamagedItems         int                    `json:"damaged_items"`
	TotalExpectedWeight  decimal.Decimal        `json:"total_expected_weight"`
	TotalProcessedWeight decimal.Decimal        `json:"total_processed_weight"`
	AllItemsProcessed    bool                   `json:"all_items_processed"`
	ReadyForLoading      bool                   `json:"ready_for_loading"`
	WeightMismatch       bool                   `json:"weight_mismatch"`
	MissingBarcodes      []string               `json:"missing_barcodes"`
	LastProcessedAt      *time.Time             `json:"last_processed_at,omitempty"`
	Items                []ShipmentItemResponse `json:"items"`
}

func newProcessingSummaryResponse(s *queries.ProcessingSummary) ProcessingSummaryResponse {
	return ProcessingSummaryResponse{
		ShipmentID:           s.ShipmentID,
		TrackingNumber:       s.TrackingNumber,
		ShipmentStatus:       s.ShipmentStatus,
		TotalItems:           s.TotalItems,
		ProcessedItems:       s.ProcessedItems,
		MissingItems:         s.MissingItems,
		DamagedItems:         s.DamagedItems,
		TotalExpectedWeight:  s.TotalExpectedWeight,
		TotalProcessedWeight: s.TotalProcessedWeight,
		AllItemsProcessed:    s.AllItemsProcessed,
		ReadyForLoading:      s.ReadyForLoading,
		WeightMismatch:       s.WeightMismatch,
		MissingBarcodes:      s.MissingBarcodes,
		LastProcessedAt:      s.LastProcessedAt,
		Items:                newShipmentItemResponses(s.Items),
	}
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
