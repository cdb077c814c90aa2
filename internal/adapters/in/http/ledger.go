package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// TransferInventory handles POST /api/inventory/transfer.
func (s *Server) TransferInventory(c echo.Context) error {
	var req TransferInventoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	sourceID, err := bindID("source_inventory_id", req.SourceInventoryID)
	if err != nil {
		return s.fail(c, err)
	}
	destinationID, err := bindID("destination_warehouse_id", req.DestinationWarehouseID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTransferInventoryCommand(sourceID, destinationID, req.Quantity, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	transferID, err := s.handlers.TransferInventory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, IDResponse{ID: transferID.String()})
}

// GetItemsBelowReorderPoint handles GET /api/inventory/reorder and
// GET /api/inventory/reorder/warehouse/:warehouseId.
func (s *Server) GetItemsBelowReorderPoint(c echo.Context) error {
	var warehouseID *kernel.UUID
	if c.Param("warehouseId") != "" {
		id, err := pathID(c, "warehouseId")
		if err != nil {
			return s.fail(c, err)
		}
		warehouseID = &id
	}

	query, err := queries.NewGetItemsBelowReorderPointQuery(warehouseID)
	if err != nil {
		return s.fail(c, err)
	}
	alerts, err := s.handlers.ItemsBelowReorderPoint.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]ReorderAlertResponse, len(alerts))
	for i, a := range alerts {
		response[i] = ReorderAlertResponse{
			InventoryID:     a.InventoryID.String(),
			WarehouseID:     a.WarehouseID.String(),
			SKU:             a.SKU,
			Name:            a.Name,
			Quantity:        a.Quantity,
			ReorderPoint:    a.ReorderPoint,
			ReorderQuantity: a.ReorderQuantity,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// AssignInventory handles POST /api/inventory-assignments.
func (s *Server) AssignInventory(c echo.Context) error {
	var req AssignInventoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	truckID, err := bindID("truck_id", req.TruckID)
	if err != nil {
		return s.fail(c, err)
	}
	sourceID, err := bindID("source_warehouse_id", req.SourceWarehouseID)
	if err != nil {
		return s.fail(c, err)
	}
	destinationID, err := bindID("destination_warehouse_id", req.DestinationWarehouseID)
	if err != nil {
		return s.fail(c, err)
	}
	lines := make([]commands.AssignmentLine, 0, len(req.Items))
	for _, item := range req.Items {
		inventoryID, err := bindID("inventory_id", item.InventoryID)
		if err != nil {
			return s.fail(c, err)
		}
		lines = append(lines, commands.AssignmentLine{InventoryID: inventoryID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewAssignInventoryToTruckCommand(truckID, sourceID, destinationID, lines, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.AssignInventory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(outcomeStatus(result.Success, http.StatusCreated), newAssignInventoryResponse(result))
}

// GetAssignment handles GET /api/inventory-assignments/:assignmentId.
func (s *Server) GetAssignment(c echo.Context) error {
	id, err := pathID(c, "assignmentId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetAssignmentQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.Assignment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newAssignmentResponse(view))
}

// GetAssignmentsByTruck handles GET /api/inventory-assignments/truck/:truckId.
func (s *Server) GetAssignmentsByTruck(c echo.Context) error {
	id, err := pathID(c, "truckId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetAssignmentsByTruckQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.AssignmentsByTruck.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newAssignmentResponses(views))
}

// GetAssignmentsByWarehouse handles GET /api/inventory-assignments/warehouse/:warehouseId.
func (s *Server) GetAssignmentsByWarehouse(c echo.Context) error {
	id, err := pathID(c, "warehouseId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetAssignmentsByWarehouseQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	split, err := s.handlers.AssignmentsByWarehouse.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, WarehouseAssignmentsResponse{
		Source:      newAssignmentResponses(split.Source),
		Destination: newAssignmentResponses(split.Destination),
	})
}

// UpdateAssignmentStatus handles PUT /api/inventory-assignments/:assignmentId/status.
func (s *Server) UpdateAssignmentStatus(c echo.Context) error {
	id, err := pathID(c, "assignmentId")
	if err != nil {
		return s.fail(c, err)
	}
	var req StatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Status == "" {
		if req.Status, err = queryString(c, "status"); err != nil {
			return s.fail(c, err)
		}
	}

	cmd, err := commands.NewUpdateAssignmentStatusCommand(id, req.Status)
	if err != nil {
		return s.fail(c, err)
	}
	a, err := s.handlers.UpdateAssignmentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newAssignmentStatusResponse(a))
}
