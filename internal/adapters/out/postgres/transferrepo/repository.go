package transferrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormTransferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTransferRepository(db *gorm.DB, tracker aggregateTracker) *GormTransferRepository {
	return &GormTransferRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTransferRepository) Add(ctx context.Context, aggregate *inventory.Transfer) error {
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

func (r *GormTransferRepository) Update(ctx context.Context, aggregate *inventory.Transfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TransferDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTransferRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Transfer, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *GormTransferRepository) Lock(ctx context.Context, id kernel.UUID) (*inventory.Transfer, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormTransferRepository) first(db *gorm.DB, id kernel.UUID) (*inventory.Transfer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransferDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transfer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
