package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterShipment handles POST /api/shipments.
func (s *Server) RegisterShipment(c echo.Context) error {
	var req RegisterShipmentRequest
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
	items := make([]commands.ShipmentItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ShipmentItemInput{
			Barcode:        item.Barcode,
			Description:    item.Description,
			ExpectedWeight: item.ExpectedWeight,
		})
	}

	cmd, err := commands.NewRegisterShipmentCommand(req.TrackingNumber, sourceID, destinationID, req.Quantity,
		req.TotalVolume, req.EstimatedDeliveryAt, items, req.Notes, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.RegisterShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(outcomeStatus(result.Success, http.StatusCreated), newRegisterShipmentResponse(result))
}

// GetShipment handles GET /api/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	return s.shipment(c, query)
}

// GetShipmentByTrackingNumber handles GET /api/shipments/tracking/:trackingNumber.
func (s *Server) GetShipmentByTrackingNumber(c echo.Context) error {
	trackingNumber, err := pathString(c, "trackingNumber")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetShipmentByTrackingNumberQuery(trackingNumber)
	if err != nil {
		return s.fail(c, err)
	}
	return s.shipment(c, query)
}

func (s *Server) shipment(c echo.Context, query queries.GetShipmentQuery) error {
	view, err := s.handlers.Shipment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newShipmentResponse(view))
}

// GetPendingShipments handles GET /api/shipments/warehouse/:warehouseId/pending.
func (s *Server) GetPendingShipments(c echo.Context) error {
	warehouseID, err := pathID(c, "warehouseId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetPendingShipmentsQuery(warehouseID)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.PendingShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]ShipmentResponse, len(views))
	for i, view := range views {
		response[i] = newShipmentResponse(view)
	}
	return c.JSON(http.StatusOK, response)
}

// AssignTruck handles POST /api/shipments/assign-truck.
func (s *Server) AssignTruck(c echo.Context) error {
	var req AssignTruckRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	shipmentID, err := bindID("shipment_id", req.ShipmentID)
	if err != nil {
		return s.fail(c, err)
	}
	truckID, err := bindID("truck_id", req.TruckID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignTruckToShipmentCommand(shipmentID, truckID, req.ScheduledPickupAt, req.Notes, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.AssignTruck.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(outcomeStatus(result.Success, http.StatusOK), newAssignTruckResponse(result))
}

// UpdateShipmentStatus handles PATCH /api/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req StatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, req.Status, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	return s.updateShipmentStatus(c, cmd)
}

// CancelShipment handles DELETE /api/shipments/:id. Shipments are cancelled,
// never removed.
func (s *Server) CancelShipment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCancelShipmentCommand(id, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	return s.updateShipmentStatus(c, cmd)
}

func (s *Server) updateShipmentStatus(c echo.Context, cmd commands.UpdateShipmentStatusCommand) error {
	updated, err := s.handlers.UpdateShipmentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newShipmentStatusResponse(updated))
}
