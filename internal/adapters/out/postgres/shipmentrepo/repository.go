package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the shipment row and each item row. The set of items is
// fixed at registration, only their scan state changes.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for i := range dto.Items {
		item := dto.Items[i]
		if err := db.Model(&ShipmentItemDTO{}).Where("id = ?", item.ID).Select("*").Updates(&item).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "shipment", id.String(), "id = ?", id.Bytes())
}

func (r *GormShipmentRepository) Lock(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.locked(ctx), "shipment", id.String(), "id = ?", id.Bytes())
}

func (r *GormShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	return r.first(r.db.WithContext(ctx), "tracking number", trackingNumber, "tracking_number = ?", trackingNumber)
}

func (r *GormShipmentRepository) LockByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (*shipment.Shipment, error) {
	return r.first(r.locked(ctx), "tracking number", trackingNumber, "tracking_number = ?", trackingNumber)
}

// FindPendingByWarehouse lists PENDING shipments leaving warehouseID, oldest first.
func (r *GormShipmentRepository) FindPendingByWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.withItems(r.db.WithContext(ctx)).
		Where("origin_warehouse_id = ? AND status = ?", warehouseID.Bytes(), shipment.Pending.String()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	list := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}

	return list, nil
}

// locked takes the row lock on the shipment row. Its items are only ever
// written together with the shipment, so they need no lock of their own.
func (r *GormShipmentRepository) locked(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *GormShipmentRepository) withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormShipmentRepository) first(db *gorm.DB, param, value, condition string, arg any) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.withItems(db).First(&dto, condition, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}

	return toDomain(dto)
}
