// Package http exposes the fleet, ledger and shipment use cases over REST.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"logistics/api"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	RegisterTruck          commands.RegisterTruckCommandHandler
	MaintainTruck          commands.MaintainTruckCommandHandler
	TransferInventory      commands.TransferInventoryCommandHandler
	AssignInventory        commands.AssignInventoryToTruckCommandHandler
	UpdateAssignmentStatus commands.UpdateAssignmentStatusCommandHandler
	RegisterShipment       commands.RegisterShipmentCommandHandler
	AssignTruck            commands.AssignTruckToShipmentCommandHandler
	UpdateShipmentStatus   commands.UpdateShipmentStatusCommandHandler
	ProcessItem            commands.ProcessShipmentItemCommandHandler
	ReportMissingItem      commands.ReportMissingItemCommandHandler
	ReportWeightMismatch   commands.ReportWeightMismatchCommandHandler

	AvailableTrucks        queries.GetAvailableTrucksQueryHandler
	ItemsBelowReorderPoint queries.GetItemsBelowReorderPointQueryHandler
	Assignment             queries.GetAssignmentQueryHandler
	AssignmentsByTruck     queries.GetAssignmentsByTruckQueryHandler
	AssignmentsByWarehouse queries.GetAssignmentsByWarehouseQueryHandler
	Shipment               queries.GetShipmentQueryHandler
	PendingShipments       queries.GetPendingShipmentsQueryHandler
	ProcessingSummary      queries.GetProcessingSummaryQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e. Everything under /api needs a bearer
// token signed with secret and must match the embedded OpenAPI document.
func (s *Server) Register(e *echo.Echo, secret []byte) error {
	doc, err := LoadOpenAPI(context.Background(), api.OpenAPI)
	if err != nil {
		return err
	}
	validate, err := ValidateRequests(doc)
	if err != nil {
		return err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	routes := e.Group("/api", Authenticate(secret), validate)

	trucks := routes.Group("/trucks")
	trucks.POST("", s.RegisterTruck, Require(RegisterTrucks))
	trucks.POST("/:id/maintenance", s.MaintainTruck, Require(MaintainTrucks))
	trucks.GET("/warehouse/:warehouseId/available", s.GetAvailableTrucks, Require(FindAvailableTrucks))
	trucks.GET("/warehouse/:warehouseId/available/capacity", s.GetAvailableTrucksWithCapacity, Require(FindAvailableTrucks))
	trucks.GET("/warehouse/:warehouseId/available/with-driver", s.GetAvailableTrucksWithDriver, Require(FindAvailableTrucks))

	inventory := routes.Group("/inventory")
	inventory.POST("/transfer", s.TransferInventory, Require(TransferInventory))
	inventory.GET("/reorder", s.GetItemsBelowReorderPoint, Require(ViewReorderAlerts))
	inventory.GET("/reorder/warehouse/:warehouseId", s.GetItemsBelowReorderPoint, Require(ViewWarehouseReorder))

	assignments := routes.Group("/inventory-assignments")
	assignments.POST("", s.AssignInventory, Require(AssignInventory))
	assignments.GET("/:assignmentId", s.GetAssignment, Require(ViewAssignments))
	assignments.GET("/truck/:truckId", s.GetAssignmentsByTruck, Require(ViewAssignments))
	assignments.GET("/warehouse/:warehouseId", s.GetAssignmentsByWarehouse, Require(ViewWarehouseAssignments))
	assignments.PUT("/:assignmentId/status", s.UpdateAssignmentStatus, Require(UpdateAssignmentStatus))

	shipments := routes.Group("/shipments")
	shipments.POST("", s.RegisterShipment, Require(RegisterShipments))
	shipments.GET("/:id", s.GetShipment, Require(ViewShipments))
	shipments.GET("/tracking/:trackingNumber", s.GetShipmentByTrackingNumber, Require(ViewShipments))
	shipments.GET("/warehouse/:warehouseId/pending", s.GetPendingShipments, Require(ViewPendingShipments))
	shipments.POST("/assign-truck", s.AssignTruck, Require(AssignTrucks))
	shipments.PATCH("/:id/status", s.UpdateShipmentStatus, Require(UpdateShipmentStatus))
	shipments.DELETE("/:id", s.CancelShipment, Require(CancelShipments))

	processing := routes.Group("/shipment-processing")
	processing.POST("/scan-item", s.ScanItem, Require(ProcessShipments))
	processing.GET("/summary/:trackingNumber", s.GetProcessingSummary, Require(ViewProcessing))
	processing.POST("/report-missing/:trackingNumber/:barcode", s.ReportMissingItem, Require(ProcessShipments))
	processing.POST("/report-weight-mismatch/:trackingNumber", s.ReportWeightMismatch, Require(ProcessShipments))

	return nil
}
