package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apphttp "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/domain/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type uowFactory struct{ f *memory.UnitOfWorkFactory }

func (u uowFactory) Create() commands.UoW { return u.f.Create() }

type ledgerUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (u ledgerUoWFactory) Create() commands.LedgerUoW { return u.f.Create() }

type fleetUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (u fleetUoWFactory) Create() commands.FleetUoW { return u.f.Create() }

// api is an echo instance over a memory store holding two warehouses, 100
// bolts at the source and one truck.
type api struct {
	t           *testing.T
	echo        *echo.Echo
	reader      memory.Reader
	source      *warehouse.Warehouse
	destination *warehouse.Warehouse
	bolts       *inventory.Line
	truck       *fleet.Truck
}

func newAPI(t *testing.T) *api {
	t.Helper()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	reader := memory.NewReader(store)
	logger := slog.New(slog.DiscardHandler)
	events := memory.NewEventLog(logger)
	policy := shipment.DefaultReadinessPolicy()

	u := uowFactory{f: factory}
	handlers := apphttp.Handlers{
		RegisterTruck:          commands.NewRegisterTruckCommandHandler(fleetUoWFactory{f: factory}),
		MaintainTruck:          commands.NewMaintainTruckCommandHandler(fleetUoWFactory{f: factory}),
		TransferInventory:      commands.NewTransferInventoryCommandHandler(ledgerUoWFactory{f: factory}, logger),
		AssignInventory:        commands.NewAssignInventoryToTruckCommandHandler(u, logger),
		UpdateAssignmentStatus: commands.NewUpdateAssignmentStatusCommandHandler(u, logger),
		RegisterShipment:       commands.NewRegisterShipmentCommandHandler(u, logger),
		AssignTruck:            commands.NewAssignTruckToShipmentCommandHandler(u, policy, events, logger),
		UpdateShipmentStatus:   commands.NewUpdateShipmentStatusCommandHandler(u, events, logger),
		ProcessItem:            commands.NewProcessShipmentItemCommandHandler(u, policy, events, logger),
		ReportMissingItem:      commands.NewReportMissingItemCommandHandler(u, policy, events, logger),
		ReportWeightMismatch:   commands.NewReportWeightMismatchCommandHandler(u, policy, events, logger),
		AvailableTrucks:        queries.NewGetAvailableTrucksQueryHandler(reader, services.NewCapacityMatcher()),
		ItemsBelowReorderPoint: queries.NewGetItemsBelowReorderPointQueryHandler(reader),
		Assignment:             queries.NewGetAssignmentQueryHandler(reader),
		AssignmentsByTruck:     queries.NewGetAssignmentsByTruckQueryHandler(reader),
		AssignmentsByWarehouse: queries.NewGetAssignmentsByWarehouseQueryHandler(reader),
		Shipment:               queries.NewGetShipmentQueryHandler(reader),
		PendingShipments:       queries.NewGetPendingShipmentsQueryHandler(reader),
		ProcessingSummary:      queries.NewGetProcessingSummaryQueryHandler(reader, policy),
	}

	e := echo.New()
	require.NoError(t, apphttp.NewServer(handlers, logger).Register(e, []byte(testSecret)))

	a := &api{t: t, echo: e, reader: reader}
	a.source = a.seedWarehouse("Central")
	a.destination = a.seedWarehouse("North")
	a.bolts = a.seedLine(a.source.ID(), "BOLT", 100)
	a.truck = a.seedTruck("KA-01")
	return a
}

func (a *api) seedWarehouse(name string) *warehouse.Warehouse {
	wh, err := warehouse.NewWarehouse(kernel.NewUUID(), name, name+" district", 10000, nil, true)
	require.NoError(a.t, err)
	require.NoError(a.t, a.reader.WarehouseRepository().Add(context.Background(), wh))
	return wh
}

func (a *api) seedLine(warehouseID kernel.UUID, sku string, quantity int) *inventory.Line {
	unit, err := kernel.NewLoad(decimal.NewFromInt(1), decimal.RequireFromString("0.1"))
	require.NoError(a.t, err)
	item, err := inventory.NewItem(sku, "item "+sku, "", decimal.NewFromInt(5), unit)
	require.NoError(a.t, err)
	line, err := inventory.NewLine(kernel.NewUUID(), warehouseID, item, quantity, 10, 50)
	require.NoError(a.t, err)
	require.NoError(a.t, a.reader.InventoryRepository().Add(context.Background(), line))
	return line
}

func (a *api) seedTruck(registration string) *fleet.Truck {
	capacity, err := kernel.NewLoad(decimal.NewFromInt(1000), decimal.NewFromInt(20))
	require.NoError(a.t, err)
	driver := kernel.NewUUID()
	truck, err := fleet.NewTruck(kernel.NewUUID(), registration, "Volvo FH", capacity, a.source.ID(), &driver)
	require.NoError(a.t, err)
	require.NoError(a.t, a.reader.TruckRepository().Add(context.Background(), truck))
	return truck
}

func token(t *testing.T, role string) string {
	t.Helper()
	claims := apphttp.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// do sends body as JSON with a token for role; an empty role sends no token.
func (a *api) do(method, path, role string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if role != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token(a.t, role))
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth_NeedsNoToken(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthentication(t *testing.T) {
	a := newAPI(t)
	path := "/api/shipments/tracking/TRK-404"

	t.Run("missing token", func(t *testing.T) {
		rec := a.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad signature", func(t *testing.T) {
		claims := apphttp.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: kernel.NewUUID().String()},
			Role:             "admin",
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
		rec := httptest.NewRecorder()
		a.echo.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		rec := a.do(http.MethodGet, path, "customer", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("prefixed role", func(t *testing.T) {
		rec := a.do(http.MethodGet, path, "ROLE_delivery_driver", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAllowed(t *testing.T) {
	assert.True(t, apphttp.Allowed(apphttp.RoleAdmin, apphttp.CancelShipments))
	assert.False(t, apphttp.Allowed(apphttp.RoleLogisticsManager, apphttp.CancelShipments))
	assert.True(t, apphttp.Allowed(apphttp.RoleWarehouseStaff, apphttp.ProcessShipments))
	assert.False(t, apphttp.Allowed(apphttp.RoleDeliveryDriver, apphttp.ProcessShipments))
	assert.True(t, apphttp.Allowed(apphttp.RoleDeliveryDriver, apphttp.UpdateShipmentStatus))
	assert.False(t, apphttp.Allowed(apphttp.RoleAdmin, apphttp.Capability("unknown")))
}

func TestRegisterTruck(t *testing.T) {
	a := newAPI(t)
	body := apphttp.RegisterTruckRequest{
		RegistrationNumber: "KA-02",
		Model:              "MAN TGX",
		CapacityWeight:     decimal.NewFromInt(500),
		CapacityVolume:     decimal.NewFromInt(8),
		HomeWarehouseID:    a.source.ID().String(),
	}

	rec := a.do(http.MethodPost, "/api/trucks", "delivery_driver", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodPost, "/api/trucks", "logistics_manager", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decode[apphttp.IDResponse](t, rec).ID)

	rec = a.do(http.MethodPost, "/api/trucks", "admin", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body.HomeWarehouseID = kernel.NewUUID().String()
	body.RegistrationNumber = "KA-03"
	rec = a.do(http.MethodPost, "/api/trucks", "admin", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAvailableTrucks(t *testing.T) {
	a := newAPI(t)
	base := "/api/trucks/warehouse/" + a.source.ID().String() + "/available"

	rec := a.do(http.MethodGet, base, "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	trucks := decode[[]apphttp.TruckResponse](t, rec)
	require.Len(t, trucks, 1)
	assert.Equal(t, "KA-01", trucks[0].RegistrationNumber)
	assert.Equal(t, "AVAILABLE", trucks[0].Status)

	rec = a.do(http.MethodGet, base+"/capacity?weight=2000&volume=1", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]apphttp.TruckResponse](t, rec))

	rec = a.do(http.MethodGet, base+"/capacity?weight=abc&volume=1", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, base+"/with-driver", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apphttp.TruckResponse](t, rec), 1)

	rec = a.do(http.MethodGet, "/api/trucks/warehouse/not-a-uuid/available", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMaintainTruck(t *testing.T) {
	a := newAPI(t)
	path := "/api/trucks/" + a.truck.ID().String() + "/maintenance"

	rec := a.do(http.MethodPost, path, "delivery_driver", apphttp.MaintainTruckRequest{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "MAINTENANCE", decode[apphttp.TruckResponse](t, rec).Status)

	rec = a.do(http.MethodPost, path, "delivery_driver", apphttp.MaintainTruckRequest{Completed: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "AVAILABLE", decode[apphttp.TruckResponse](t, rec).Status)
}

func TestAssignInventory(t *testing.T) {
	a := newAPI(t)
	body := apphttp.AssignInventoryRequest{
		TruckID:                a.truck.ID().String(),
		SourceWarehouseID:      a.source.ID().String(),
		DestinationWarehouseID: a.destination.ID().String(),
		Items:                  []apphttp.AssignmentLineRequest{{InventoryID: a.bolts.ID().String(), Quantity: 30}},
	}

	rec := a.do(http.MethodPost, "/api/inventory-assignments", "warehouse_staff", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[apphttp.AssignInventoryResponse](t, rec)
	require.True(t, created.Success)
	assert.Equal(t, "KA-01", created.TruckRegistrationNumber)
	assert.Equal(t, "North", created.DestinationWarehouseName)
	require.Len(t, created.Items, 1)
	assert.Equal(t, 30, created.Items[0].Quantity)

	rec = a.do(http.MethodGet, "/api/inventory-assignments/"+created.AssignmentID, "delivery_driver", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[apphttp.AssignmentResponse](t, rec)
	assert.Equal(t, "PENDING", view.Status)
	assert.True(t, view.TotalWeight.Equal(decimal.NewFromInt(30)))

	rec = a.do(http.MethodGet, "/api/inventory-assignments/truck/"+a.truck.ID().String(), "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apphttp.AssignmentResponse](t, rec), 1)

	rec = a.do(http.MethodGet, "/api/inventory-assignments/warehouse/"+a.source.ID().String(), "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	split := decode[apphttp.WarehouseAssignmentsResponse](t, rec)
	assert.Len(t, split.Source, 1)
	assert.Empty(t, split.Destination)

	rec = a.do(http.MethodPut, "/api/inventory-assignments/"+created.AssignmentID+"/status", "delivery_driver",
		apphttp.StatusRequest{Status: "IN_TRANSIT"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "IN_TRANSIT", decode[apphttp.AssignmentStatusResponse](t, rec).Status)

	rec = a.do(http.MethodPut, "/api/inventory-assignments/"+created.AssignmentID+"/status", "delivery_driver",
		apphttp.StatusRequest{Status: "PENDING"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAssignInventory_RejectionIsBadRequest(t *testing.T) {
	a := newAPI(t)
	body := apphttp.AssignInventoryRequest{
		TruckID:                a.truck.ID().String(),
		SourceWarehouseID:      a.source.ID().String(),
		DestinationWarehouseID: a.destination.ID().String(),
		Items:                  []apphttp.AssignmentLineRequest{{InventoryID: a.bolts.ID().String(), Quantity: 500}},
	}

	rec := a.do(http.MethodPost, "/api/inventory-assignments", "admin", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	result := decode[apphttp.AssignInventoryResponse](t, rec)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestGetAssignment_NotFound(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/api/inventory-assignments/"+kernel.NewUUID().String(), "admin", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, "/api/inventory-assignments/42", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransferAndReorder(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/inventory/transfer", "warehouse_staff", apphttp.TransferInventoryRequest{
		SourceInventoryID:      a.bolts.ID().String(),
		DestinationWarehouseID: a.destination.ID().String(),
		Quantity:               95,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/inventory/reorder", "warehouse_staff", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodGet, "/api/inventory/reorder/warehouse/"+a.source.ID().String(), "warehouse_staff", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	alerts := decode[[]apphttp.ReorderAlertResponse](t, rec)
	require.Len(t, alerts, 1)
	assert.Equal(t, "BOLT", alerts[0].SKU)
	assert.Equal(t, 5, alerts[0].Quantity)

	rec = a.do(http.MethodGet, "/api/inventory/reorder", "logistics_manager", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apphttp.ReorderAlertResponse](t, rec), 1)
}

func TestShipmentFlow(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/shipments", "logistics_manager", apphttp.RegisterShipmentRequest{
		TrackingNumber:         "trk-001",
		SourceInventoryID:      a.bolts.ID().String(),
		DestinationWarehouseID: a.destination.ID().String(),
		Quantity:               30,
		TotalVolume:            decimal.NewFromInt(3),
		Items: []apphttp.ShipmentItemRequest{
			{Barcode: "item1", ExpectedWeight: decimal.NewFromInt(10)},
			{Barcode: "item2", ExpectedWeight: decimal.NewFromInt(20)},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decode[apphttp.RegisterShipmentResponse](t, rec)
	require.True(t, registered.Success)
	assert.Equal(t, "TRK-001", registered.TrackingNumber)

	rec = a.do(http.MethodGet, "/api/shipments/warehouse/"+a.source.ID().String()+"/pending", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apphttp.ShipmentResponse](t, rec), 1)

	rec = a.do(http.MethodPost, "/api/shipments/assign-truck", "logistics_manager", apphttp.AssignTruckRequest{
		ShipmentID:        registered.ShipmentID,
		TruckID:           a.truck.ID().String(),
		ScheduledPickupAt: time.Now().Add(time.Hour),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "SCHEDULED_FOR_PICKUP", decode[apphttp.AssignTruckResponse](t, rec).Status)

	rec = a.do(http.MethodPost, "/api/shipment-processing/scan-item", "delivery_driver",
		apphttp.ScanItemRequest{TrackingNumber: "TRK-001", Barcode: "item1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ten := decimal.NewFromInt(10)
	rec = a.do(http.MethodPost, "/api/shipment-processing/scan-item", "warehouse_staff",
		apphttp.ScanItemRequest{TrackingNumber: "TRK-001", Barcode: "item1", Weight: &ten})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, decode[apphttp.ProcessingResponse](t, rec).ReadyForLoading)

	rec = a.do(http.MethodPost, "/api/shipment-processing/report-missing/TRK-001/item2", "warehouse_staff",
		apphttp.ReportMissingRequest{Notes: "not on pallet"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	missing := decode[apphttp.ProcessingResponse](t, rec)
	assert.True(t, missing.ReadyForLoading)
	assert.Equal(t, "READY_FOR_PICKUP", missing.ShipmentStatus)
	assert.Equal(t, []string{"item2"}, missing.MissingItems)

	rec = a.do(http.MethodPost, "/api/shipment-processing/report-weight-mismatch/TRK-001", "admin",
		apphttp.WeightReadingRequest{ActualWeight: decimal.NewFromInt(10)})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reading := decode[apphttp.ProcessingResponse](t, rec)
	assert.True(t, reading.Success)
	assert.False(t, reading.WeightMismatch)

	rec = a.do(http.MethodGet, "/api/shipment-processing/summary/TRK-001", "logistics_manager", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[apphttp.ProcessingSummaryResponse](t, rec)
	assert.Equal(t, 1, summary.ProcessedItems)
	assert.Equal(t, 1, summary.MissingItems)
	assert.True(t, summary.TotalExpectedWeight.Equal(ten))

	rec = a.do(http.MethodPatch, "/api/shipments/"+registered.ShipmentID+"/status", "delivery_driver",
		apphttp.StatusRequest{Status: "IN_TRANSIT"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "IN_TRANSIT", decode[apphttp.ShipmentStatusResponse](t, rec).Status)

	rec = a.do(http.MethodGet, "/api/shipments/tracking/TRK-001", "delivery_driver", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[apphttp.ShipmentResponse](t, rec)
	assert.Equal(t, "IN_TRANSIT", view.Status)
	require.NotNil(t, view.TruckID)
	assert.Equal(t, a.truck.ID().String(), *view.TruckID)
}

func TestCancelShipment(t *testing.T) {
	a := newAPI(t)
	rec := a.do(http.MethodPost, "/api/shipments", "admin", apphttp.RegisterShipmentRequest{
		SourceInventoryID:      a.bolts.ID().String(),
		DestinationWarehouseID: a.destination.ID().String(),
		Quantity:               10,
		Items:                  []apphttp.ShipmentItemRequest{{Barcode: "item1", ExpectedWeight: decimal.NewFromInt(10)}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decode[apphttp.RegisterShipmentResponse](t, rec)

	rec = a.do(http.MethodDelete, "/api/shipments/"+registered.ShipmentID, "logistics_manager", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodDelete, "/api/shipments/"+registered.ShipmentID, "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "CANCELLED", decode[apphttp.ShipmentStatusResponse](t, rec).Status)

	rec = a.do(http.MethodGet, "/api/shipments/"+registered.ShipmentID, "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CANCELLED", decode[apphttp.ShipmentResponse](t, rec).Status)
}

func TestGetProcessingSummary_UnknownTracking(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/api/shipment-processing/summary/TRK-404", "admin", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
