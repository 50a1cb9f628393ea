package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Dates travel as plain calendar days; minute offsets are ints in [0,1440).
const DateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

type CreateSlotRequest struct {
	WorkCenterID uuid.UUID  `json:"work_center_id" binding:"required"`
	Date         string     `json:"date" binding:"required"`
	StartMin     int        `json:"start_min" binding:"min=0,max=1439"`
	LengthMin    int        `json:"length_min" binding:"required"`
	OrderID      *uuid.UUID `json:"order_id,omitempty"`
	Blocked      bool       `json:"blocked"`
	Note         *string    `json:"note,omitempty"`
}

func (r CreateSlotRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type MoveSlotRequest struct {
	Date     string `json:"date" binding:"required"`
	StartMin int    `json:"start_min" binding:"min=0,max=1439"`
	Version  *int64 `json:"version,omitempty"`
}

// LifecycleRequest is the optional body of start/pause/stop; version guards
// against acting on a stale view of the slot.
type LifecycleRequest struct {
	Version *int64 `json:"version,omitempty"`
}

const (
	ProblemKindMissingParts = "missing_parts"
	ProblemKindQuality      = "quality"
)

type ProblemReportRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=missing_parts quality"`
	Note     string `json:"note" binding:"required"`
	Escalate bool   `json:"escalate"`
	Version  *int64 `json:"version,omitempty"`
}

type DeleteSlotRequest struct {
	Version *int64 `json:"version,omitempty"`
}
