package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(gdb *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: gdb}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := userModelFromEntity(userEntity)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, userModel.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userEntityFromModel(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userEntityFromModel(&userModel), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userEntityFromModel(&userModel), nil
}

func (r *UserRepository) SearchByEmail(ctx context.Context, emailQuery string, limit int) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).
		Where("email LIKE ?", "%"+emailQuery+"%").
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		out = append(out, userEntityFromModel(&userModels[i]))
	}
	return out, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&userModels).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		out = append(out, userEntityFromModel(&userModels[i]))
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := userModelFromEntity(user.GetUser())
	if err := r.db.WithContext(ctx).Save(userModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, userModel.ID)
}

func userModelFromEntity(user *entities.User) *UserModel {
	return &UserModel{
		ID:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		HashedPassword: user.Password,
		FullName:       user.FullName,
		IsActive:       user.IsActive,
		IsAdmin:        user.IsAdmin,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

func userEntityFromModel(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:        userModel.ID,
		Email:     userModel.Email,
		Username:  userModel.Username,
		FullName:  userModel.FullName,
		Password:  userModel.HashedPassword,
		IsActive:  userModel.IsActive,
		IsAdmin:   userModel.IsAdmin,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
	}
}
