package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
)

type IdempotencyRepository struct {
	db *gorm.DB
}

func NewIdempotencyRepository(gdb *gorm.DB) repositories.IdempotencyRepository {
	return &IdempotencyRepository{db: gdb}
}

func (r *IdempotencyRepository) FindByKey(ctx context.Context, key string) (*entities.IdempotencyRecord, error) {
	var model IdempotencyModel
	if err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	return &entities.IdempotencyRecord{
		ID:         id,
		Key:        model.Key,
		Request:    model.Request,
		Response:   model.Response,
		StatusCode: model.StatusCode,
		CreatedAt:  model.CreatedAt,
	}, nil
}

func (r *IdempotencyRepository) Create(ctx context.Context, record *entities.IdempotencyRecord) (*entities.IdempotencyRecord, error) {
	model := IdempotencyModel{
		ID:         record.ID.String(),
		Key:        record.Key,
		Request:    record.Request,
		Response:   record.Response,
		StatusCode: record.StatusCode,
		CreatedAt:  record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	return record, nil
}
