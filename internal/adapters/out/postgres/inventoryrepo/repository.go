package inventoryrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Line) error {
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

func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LineDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// LockMany locks the lines in ascending id order, the same order every
// workflow uses, so two workflows over overlapping lines cannot deadlock.
func (r *GormInventoryRepository) LockMany(ctx context.Context, lineIDs []kernel.UUID) ([]*inventory.Line, error) {
	sorted := kernel.SortedUnique(lineIDs)
	if len(sorted) == 0 {
		return []*inventory.Line{}, nil
	}

	raw := make([]any, 0, len(sorted))
	for _, id := range sorted {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []LineDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines, err := toDomainList(dtos)
	if err != nil {
		return nil, err
	}
	for i, id := range sorted {
		if i >= len(lines) || !lines[i].ID().IsEqual(id) {
			return nil, errs.NewObjectNotFoundError("inventory", id.String())
		}
	}

	return lines, nil
}

func (r *GormInventoryRepository) FindBySKU(ctx context.Context, warehouseID kernel.UUID, sku string) (*inventory.Line, error) {
	var dto LineDTO
	if err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND sku = ?", warehouseID.Bytes(), sku).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", sku)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindBelowReorderPoint lists lines holding less than their reorder point,
// across all warehouses when warehouseID is nil.
func (r *GormInventoryRepository) FindBelowReorderPoint(
	ctx context.Context,
	warehouseID *kernel.UUID,
) ([]*inventory.Line, error) {
	query := r.db.WithContext(ctx).Where("quantity < reorder_point")
	if warehouseID != nil {
		query = query.Where("warehouse_id = ?", warehouseID.Bytes())
	}

	var dtos []LineDTO
	if err := query.Order("warehouse_id").Order("sku").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
