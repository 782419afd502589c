package repository

import (
	"clinic-voice-tools/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Migrate(db *gorm.DB) error
	Count(db *gorm.DB) (int64, error)
	CreateBatch(db *gorm.DB, doctors []entity.Doctor) error
	FindByNameFragment(db *gorm.DB, fragment string) (*entity.Doctor, error)
}
