package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByRoleID(db *gorm.DB, roleID int) ([]entity.User, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
}
