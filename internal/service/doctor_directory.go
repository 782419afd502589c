package service

import (
	"context"
	"fmt"

	"clinic-voice-tools/internal/domain/entity"
	"clinic-voice-tools/internal/domain/repository"
	"clinic-voice-tools/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedDoctors is the fixed directory content written into an empty store.
var SeedDoctors = []entity.Doctor{
	{ID: 1, Name: "Dr. Priya", Slots: entity.JoinSlots([]string{"10:00 AM", "04:00 PM"})},
	{ID: 2, Name: "Dr. Arun", Slots: entity.JoinSlots([]string{"09:00 AM", "02:00 PM"})},
	{ID: 3, Name: "Dr. Danielle", Slots: entity.JoinSlots([]string{"10:00 AM"})},
}

// DoctorDirectory is the read-mostly store of doctors and their slots.
type DoctorDirectory interface {
	// Initialize creates the doctors table when absent and seeds it when empty.
	Initialize(ctx context.Context) error
	// FindByNameFragment returns the first doctor whose name contains
	// fragment, ignoring case, or nil when none does.
	FindByNameFragment(ctx context.Context, fragment string) (*entity.Doctor, error)
}

type doctorDirectory struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	validator  *validator.CustomValidator
	seed       []entity.Doctor
}

func NewDoctorDirectory(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	validator *validator.CustomValidator,
	seed []entity.Doctor,
) DoctorDirectory {
	return &doctorDirectory{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		validator:  validator,
		seed:       seed,
	}
}

func (d *doctorDirectory) Initialize(ctx context.Context) error {
	if err := d.doctorRepo.Migrate(d.db.WithContext(ctx)); err != nil {
		d.log.Warnf("Failed to migrate doctors table: %+v", err)
		return fmt.Errorf("migrate doctors: %w", err)
	}

	for i := range d.seed {
		if err := d.validator.Validate(&d.seed[i]); err != nil {
			return fmt.Errorf("seed doctor %d: %w", d.seed[i].ID, err)
		}
	}

	var seeded bool
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total, err := d.doctorRepo.Count(tx)
		if err != nil {
			return fmt.Errorf("count doctors: %w", err)
		}
		if total > 0 {
			return nil
		}
		if err := d.doctorRepo.CreateBatch(tx, d.seed); err != nil {
			return fmt.Errorf("insert seed doctors: %w", err)
		}
		seeded = true
		return nil
	})
	if err != nil {
		d.log.Warnf("Failed to seed doctor directory: %+v", err)
		return err
	}

	if seeded {
		d.log.Infof("Doctor directory seeded with %d doctors", len(d.seed))
	} else {
		d.log.Debug("Doctor directory already populated, skipping seed")
	}
	return nil
}

func (d *doctorDirectory) FindByNameFragment(ctx context.Context, fragment string) (*entity.Doctor, error) {
	doctor, err := d.doctorRepo.FindByNameFragment(d.db.WithContext(ctx), fragment)
	if err != nil {
		d.log.Warnf("Failed to find doctor by fragment %q: %+v", fragment, err)
		return nil, fmt.Errorf("find doctor by fragment: %w", err)
	}
	return doctor, nil
}
