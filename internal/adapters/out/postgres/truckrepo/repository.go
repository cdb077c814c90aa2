package truckrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTruckRepository implements ports.TruckRepository using GORM.
type GormTruckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTruckRepository(db *gorm.DB, tracker aggregateTracker) *GormTruckRepository {
	return &GormTruckRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTruckRepository) Add(ctx context.Context, aggregate *fleet.Truck) error {
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

// Update writes every column, so cleared maintenance dates and drivers are
// stored as NULL.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *fleet.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TruckDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Truck, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// Lock reads the truck with SELECT ... FOR UPDATE.
func (r *GormTruckRepository) Lock(ctx context.Context, id kernel.UUID) (*fleet.Truck, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormTruckRepository) first(db *gorm.DB, id kernel.UUID) (*fleet.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTruckRepository) FindByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*fleet.Truck, error) {
	var dtos []TruckDTO
	if err := r.db.WithContext(ctx).
		Where("home_warehouse_id = ?", warehouseID.Bytes()).
		Order("registration_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	trucks := make([]*fleet.Truck, 0, len(dtos))
	for _, dto := range dtos {
		truck, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, truck)
	}

	return trucks, nil
}

// ExistsByRegistrationNumber compares case-insensitively.
func (r *GormTruckRepository) ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&TruckDTO{}).
		Where("LOWER(registration_number) = LOWER(?)", registrationNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
