package repository

import (
	"context"

	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RepairOrderRepository interface {
	Create(ctx context.Context, o *model.RepairOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RepairOrder, error)
	List(ctx context.Context, filter dto.RepairFilter) ([]model.RepairOrder, int64, error)
	Update(ctx context.Context, o *model.RepairOrder) error
}

type repairRepo struct{ db *gorm.DB }

func NewRepairOrderRepository(db *gorm.DB) RepairOrderRepository { return &repairRepo{db: db} }

func (r *repairRepo) Create(ctx context.Context, o *model.RepairOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repairRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RepairOrder, error) {
	var o model.RepairOrder
	err := r.db.WithContext(ctx).Preload("Customer").Preload("Technician").First(&o, id).Error
	return &o, err
}

func (r *repairRepo) List(ctx context.Context, filter dto.RepairFilter) ([]model.RepairOrder, int64, error) {
	var orders []model.RepairOrder
	var total int64

	q := r.db.WithContext(ctx).Model(&model.RepairOrder{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.TechnicianID != "" {
		q = q.Where("technician_id = ?", filter.TechnicianID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Customer").Preload("Technician").
		Order("created_at DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *repairRepo) Update(ctx context.Context, o *model.RepairOrder) error {
	return r.db.WithContext(ctx).Save(o).Error
}
