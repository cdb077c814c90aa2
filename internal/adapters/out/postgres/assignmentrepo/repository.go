package assignmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores the assignment and its items in one statement batch.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
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

// Update writes the assignment row only. Items never change after creation.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
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

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *GormAssignmentRepository) Lock(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormAssignmentRepository) first(db *gorm.DB, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := db.Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAssignmentRepository) FindByTruck(ctx context.Context, truckID kernel.UUID) ([]*assignment.Assignment, error) {
	return r.find(ctx, "truck_id = ?", truckID)
}

func (r *GormAssignmentRepository) FindBySourceWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
) ([]*assignment.Assignment, error) {
	return r.find(ctx, "source_warehouse_id = ?", warehouseID)
}

func (r *GormAssignmentRepository) FindByDestinationWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
) ([]*assignment.Assignment, error) {
	return r.find(ctx, "destination_warehouse_id = ?", warehouseID)
}

// find returns matching assignments, newest first.
func (r *GormAssignmentRepository) find(
	ctx context.Context,
	condition string,
	id kernel.UUID,
) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where(condition, id.Bytes()).
		Order("assigned_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	list := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}

	return list, nil
}
