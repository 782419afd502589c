package repository

import (
	"errors"
	"strings"

	"clinic-voice-tools/internal/domain/entity"
	domainRepo "clinic-voice-tools/internal/domain/repository"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Doctor{})
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Doctor{}).Count(&total).Error
	return total, err
}

func (r *doctorRepository) CreateBatch(db *gorm.DB, doctors []entity.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	return db.Create(&doctors).Error
}

// FindByNameFragment returns the lowest-id doctor whose name contains
// fragment, ignoring case. The fragment is matched literally.
func (r *doctorRepository) FindByNameFragment(db *gorm.DB, fragment string) (*entity.Doctor, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(fragment)) + "%"

	var doctor entity.Doctor
	err := db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Take(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
