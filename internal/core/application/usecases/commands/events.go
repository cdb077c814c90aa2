package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

const ShipmentStatusChangedEventType = "shipment.status_changed"

// ShipmentStatusChanged is published after every committed shipment status
// change. READY_FOR_PICKUP is the signal to send the truck.
type ShipmentStatusChanged struct {
	Type           string    `json:"type"`
	ShipmentID     string    `json:"shipment_id"`
	TrackingNumber string    `json:"tracking_number"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	TruckID        string    `json:"truck_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newShipmentStatusChanged(s *shipment.Shipment, from shipment.Status) ShipmentStatusChanged {
	event := ShipmentStatusChanged{
		Type:           ShipmentStatusChangedEventType,
		ShipmentID:     s.ID().String(),
		TrackingNumber: s.TrackingNumber(),
		From:           from.String(),
		To:             s.Status().String(),
		OccurredAt:     s.UpdatedAt(),
	}
	if s.TruckID() != nil {
		event.TruckID = s.TruckID().String()
	}
	return event
}

// statusNotifier publishes shipment status changes. It runs after commit, so a
// failed publish is logged and never undoes the change.
type statusNotifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func (n statusNotifier) notify(ctx context.Context, s *shipment.Shipment, from shipment.Status) {
	if n.publisher == nil || s.Status() == from {
		return
	}
	event := newShipmentStatusChanged(s, from)
	if err := n.publisher.Publish(ctx, event.ShipmentID, event); err != nil {
		n.logger.WarnContext(ctx, "failed to publish shipment status change",
			"shipment_id", event.ShipmentID, "status", event.To, "error", err)
	}
}
