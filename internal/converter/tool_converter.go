package converter

import (
	"fmt"

	"clinic-voice-tools/internal/delivery/dto"
	"clinic-voice-tools/internal/domain/entity"
	"clinic-voice-tools/internal/infrastructure/metrics"
)

const (
	CheckSlotsSystemError = "System Error: Unable to check database."
	BookSlotSystemError   = "System Error: Booking failed."
	BookingSuccessful     = "Booking Successful"

	unnamedDoctor = "the doctor"
)

// DoctorToAvailability renders a doctor's slots under both result and message.
func DoctorToAvailability(doctor *entity.Doctor) *dto.ToolResponse {
	if doctor == nil {
		return nil
	}

	msg := fmt.Sprintf("The database confirms: %s is available at %s.", doctor.Name, doctor.Slots)
	return &dto.ToolResponse{
		Result:  msg,
		Message: msg,
		Outcome: metrics.OutcomeFound,
	}
}

func DoctorNotFound(term string) *dto.ToolResponse {
	return &dto.ToolResponse{
		Result:  fmt.Sprintf("No doctor found matching '%s'.", term),
		Outcome: metrics.OutcomeNotFound,
	}
}

func BookingConfirmation(doctorName, slot string) *dto.ToolResponse {
	if doctorName == "" {
		doctorName = unnamedDoctor
	}
	return &dto.ToolResponse{
		Result:  BookingSuccessful,
		Message: fmt.Sprintf("Success. Appointment confirmed with %s at %s.", doctorName, slot),
		Outcome: metrics.OutcomeBooked,
	}
}

func SystemError(result string) *dto.ToolResponse {
	return &dto.ToolResponse{
		Result:  result,
		Outcome: metrics.OutcomeError,
	}
}
