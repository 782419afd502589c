package dto

// Request DTOs

// CheckSlotsRequest carries the raw search term: doctorName, doctor_name or
// specialty, whichever the agent supplied first.
type CheckSlotsRequest struct {
	SearchTerm string
}

type BookSlotRequest struct {
	DoctorName string
	Time       string
}

// Response DTOs

// ToolResponse is the body of every tool endpoint. Outcome feeds logs and
// metrics only.
type ToolResponse struct {
	Result  string `json:"result"`
	Message string `json:"message,omitempty"`
	Outcome string `json:"-"`
}
