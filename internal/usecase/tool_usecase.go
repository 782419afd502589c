package usecase

import (
	"context"

	"clinic-voice-tools/internal/converter"
	"clinic-voice-tools/internal/delivery/dto"
	"clinic-voice-tools/internal/resolver"
	"clinic-voice-tools/internal/service"

	"github.com/sirupsen/logrus"
)

type ToolUsecase interface {
	CheckSlots(ctx context.Context, req *dto.CheckSlotsRequest) (*dto.ToolResponse, error)
	BookSlot(ctx context.Context, req *dto.BookSlotRequest) (*dto.ToolResponse, error)
}

// AmbiguityObserver is notified when a booking time matched ambiguously.
type AmbiguityObserver interface {
	ObserveAmbiguousTime()
}

type toolUsecase struct {
	log            *logrus.Logger
	directory      service.DoctorDirectory
	termResolver   *resolver.TermResolver
	timeNormalizer *resolver.TimeNormalizer
	ambiguity      AmbiguityObserver
}

func NewToolUsecase(
	log *logrus.Logger,
	directory service.DoctorDirectory,
	termResolver *resolver.TermResolver,
	timeNormalizer *resolver.TimeNormalizer,
	ambiguity AmbiguityObserver,
) ToolUsecase {
	return &toolUsecase{
		log:            log,
		directory:      directory,
		termResolver:   termResolver,
		timeNormalizer: timeNormalizer,
		ambiguity:      ambiguity,
	}
}

// CheckSlots resolves the search term to a name fragment and reports that
// doctor's slots. A miss is a normal response, not an error.
func (u *toolUsecase) CheckSlots(ctx context.Context, req *dto.CheckSlotsRequest) (*dto.ToolResponse, error) {
	resolution := u.termResolver.Resolve(req.SearchTerm)
	u.log.WithFields(logrus.Fields{
		"term":     resolution.Term,
		"fragment": resolution.Fragment,
		"rule":     resolution.Rule,
	}).Infof("Mapped '%s' -> '%s'", resolution.Term, resolution.Fragment)

	doctor, err := u.directory.FindByNameFragment(ctx, resolution.Fragment)
	if err != nil {
		u.log.Warnf("Failed to check slots for %q: %+v", resolution.Term, err)
		return nil, err
	}
	if doctor == nil {
		u.log.Infof("No doctor found for '%s'", resolution.Term)
		return converter.DoctorNotFound(resolution.Term), nil
	}

	response := converter.DoctorToAvailability(doctor)
	u.log.Infof("Returning: %s", response.Message)
	return response, nil
}

// BookSlot confirms a booking without touching the directory; neither the
// doctor nor the slot is checked.
func (u *toolUsecase) BookSlot(ctx context.Context, req *dto.BookSlotRequest) (*dto.ToolResponse, error) {
	normalized := u.timeNormalizer.Normalize(req.Time)
	if normalized.Ambiguous {
		u.log.WithFields(logrus.Fields{
			"time": req.Time,
			"rule": normalized.Rule,
			"slot": normalized.Slot,
		}).Warn("Booking time matched ambiguously")
		if u.ambiguity != nil {
			u.ambiguity.ObserveAmbiguousTime()
		}
	}

	u.log.Infof("Booking: %s @ %s", req.DoctorName, normalized.Slot)
	return converter.BookingConfirmation(req.DoctorName, normalized.Slot), nil
}
