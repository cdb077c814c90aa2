package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterTruck handles POST /api/trucks.
func (s *Server) RegisterTruck(c echo.Context) error {
	var req RegisterTruckRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	homeWarehouseID, err := bindID("home_warehouse_id", req.HomeWarehouseID)
	if err != nil {
		return s.fail(c, err)
	}
	driverID, err := bindOptionalID("driver_id", req.DriverID)
	if err != nil {
		return s.fail(c, err)
	}
	capacity, err := kernel.NewLoad(req.CapacityWeight, req.CapacityVolume)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRegisterTruckCommand(req.RegistrationNumber, req.Model, capacity, homeWarehouseID, driverID)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := s.handlers.RegisterTruck.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// MaintainTruck handles POST /api/trucks/:id/maintenance.
func (s *Server) MaintainTruck(c echo.Context) error {
	truckID, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req MaintainTruckRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewMaintainTruckCommand(truckID, req.Completed, req.NextMaintenanceDate)
	if err != nil {
		return s.fail(c, err)
	}
	truck, err := s.handlers.MaintainTruck.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newTruckResponseFromDomain(truck))
}

// GetAvailableTrucks handles GET /api/trucks/warehouse/:warehouseId/available.
func (s *Server) GetAvailableTrucks(c echo.Context) error {
	warehouseID, err := pathID(c, "warehouseId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetAvailableTrucksQuery(warehouseID)
	if err != nil {
		return s.fail(c, err)
	}
	return s.availableTrucks(c, query)
}

// GetAvailableTrucksWithCapacity handles
// GET /api/trucks/warehouse/:warehouseId/available/capacity?weight=&volume=.
func (s *Server) GetAvailableTrucksWithCapacity(c echo.Context) error {
	warehouseID, err := pathID(c, "warehouseId")
	if err != nil {
		return s.fail(c, err)
	}
	weight, err := queryDecimal(c, "weight")
	if err != nil {
		return s.fail(c, err)
	}
	volume, err := queryDecimal(c, "volume")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetAvailableTrucksWithCapacityQuery(warehouseID, weight, volume)
	if err != nil {
		return s.fail(c, err)
	}
	return s.availableTrucks(c, query)
}

// GetAvailableTrucksWithDriver handles GET /api/trucks/warehouse/:warehouseId/available/with-driver.
func (s *Server) GetAvailableTrucksWithDriver(c echo.Context) error {
	warehouseID, err := pathID(c, "warehouseId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetAvailableTrucksWithDriverQuery(warehouseID)
	if err != nil {
		return s.fail(c, err)
	}
	return s.availableTrucks(c, query)
}

func (s *Server) availableTrucks(c echo.Context, query queries.GetAvailableTrucksQuery) error {
	trucks, err := s.handlers.AvailableTrucks.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]TruckResponse, len(trucks))
	for i, truck := range trucks {
		response[i] = newTruckResponse(truck)
	}
	return c.JSON(http.StatusOK, response)
}
