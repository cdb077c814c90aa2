package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ScanItem handles POST /api/shipment-processing/scan-item.
func (s *Server) ScanItem(c echo.Context) error {
	var req ScanItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewProcessShipmentItemCommand(req.TrackingNumber, req.Barcode, req.Weight, req.Status,
		req.Notes, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.ProcessItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(outcomeStatus(result.Success, http.StatusOK), newProcessingResponse(result))
}

// ReportMissingItem handles POST /api/shipment-processing/report-missing/:trackingNumber/:barcode.
func (s *Server) ReportMissingItem(c echo.Context) error {
	var req ReportMissingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	trackingNumber, err := pathString(c, "trackingNumber")
	if err != nil {
		return s.fail(c, err)
	}
	barcode, err := pathString(c, "barcode")
	if err != nil {
		return s.fail(c, err)
	}
	if req.Notes == "" {
		if req.Notes, err = queryString(c, "notes"); err != nil {
			return s.fail(c, err)
		}
	}

	cmd, err := commands.NewReportMissingItemCommand(trackingNumber, barcode, req.Notes, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.ReportMissingItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(outcomeStatus(result.Success, http.StatusOK), newProcessingResponse(result))
}

// ReportWeightMismatch handles POST /api/shipment-processing/report-weight-mismatch/:trackingNumber.
func (s *Server) ReportWeightMismatch(c echo.Context) error {
	var req WeightReadingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	trackingNumber, err := pathString(c, "trackingNumber")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewReportWeightMismatchCommand(trackingNumber, req.ActualWeight, actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.ReportWeightMismatch.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(outcomeStatus(result.Success, http.StatusOK), newProcessingResponse(result))
}

// GetProcessingSummary handles GET /api/shipment-processing/summary/:trackingNumber.
func (s *Server) GetProcessingSummary(c echo.Context) error {
	trackingNumber, err := pathString(c, "trackingNumber")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetProcessingSummaryQuery(trackingNumber)
	if err != nil {
		return s.fail(c, err)
	}
	summary, found, err := s.handlers.ProcessingSummary.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	if !found {
		return c.JSON(http.StatusNotFound, errorResponse("shipment not found"))
	}
	return c.JSON(http.StatusOK, newProcessingSummaryResponse(summary))
}
