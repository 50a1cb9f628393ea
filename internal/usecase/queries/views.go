package queries

import (
	"time"

	"planboard/internal/domain/schedule"
	"planboard/internal/domain/workcenter"

	"github.com/google/uuid"
)

// Read models for the planning UI. Lane and TotalLanes are only meaningful
// on views produced by the day board composition; single-slot views carry
// zeroes there.
type SlotView struct {
	ID                uuid.UUID  `json:"id"`
	WorkCenterID      uuid.UUID  `json:"work_center_id"`
	Date              time.Time  `json:"date"`
	StartMin          int        `json:"start_min"`
	LengthMin         int        `json:"length_min"`
	OrderID           *uuid.UUID `json:"order_id,omitempty"`
	Blocked           bool       `json:"blocked"`
	Note              string     `json:"note,omitempty"`
	Status            string     `json:"status"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	StoppedAt         *time.Time `json:"stopped_at,omitempty"`
	ActualDurationMin *int       `json:"actual_duration_min,omitempty"`
	MissingPartsNote  *string    `json:"missing_parts_note,omitempty"`
	QualityNote       *string    `json:"quality_note,omitempty"`
	Lane              int        `json:"lane"`
	TotalLanes        int        `json:"total_lanes"`
	Version           int64      `json:"version"`
}

type WorkCenterView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Department         string    `json:"department"`
	DailyCapacityMin   int       `json:"daily_capacity_min"`
	ConcurrentCapacity int       `json:"concurrent_capacity"`
	Active             bool      `json:"active"`
}

type CapacityView struct {
	WorkCenterID    uuid.UUID `json:"work_center_id"`
	Date            time.Time `json:"date"`
	UsedMin         int       `json:"used_min"`
	CapacityMin     int       `json:"capacity_min"`
	OverflowRatio   float64   `json:"overflow_ratio"`
	PeakLanes       int       `json:"peak_lanes"`
	MinutesExceeded bool      `json:"minutes_exceeded"`
	LanesExceeded   bool      `json:"lanes_exceeded"`
}

type CenterDayView struct {
	WorkCenter *WorkCenterView `json:"work_center"`
	Slots      []*SlotView     `json:"slots"`
	Usage      *CapacityView   `json:"usage"`
}

type DayBoardView struct {
	Date    time.Time        `json:"date"`
	Centers []*CenterDayView `json:"centers"`
}

// TodaySlotView is the production-today projection: running time is derived
// from started_at on every read, never from a core-owned timer.
type TodaySlotView struct {
	SlotView
	ElapsedMin int `json:"elapsed_min"`
}

type OrderView struct {
	ID                uuid.UUID  `json:"id"`
	Department        string     `json:"department"`
	Workflow          string     `json:"workflow"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	HasRequiredAssets bool       `json:"has_required_assets"`
}

func SlotViewFromEntity(s *schedule.Slot) *SlotView {
	return &SlotView{
		ID:                s.ID(),
		WorkCenterID:      s.WorkCenterID(),
		Date:              s.Date(),
		StartMin:          s.Interval().StartMin,
		LengthMin:         s.Interval().LengthMin,
		OrderID:           s.OrderID(),
		Blocked:           s.Blocked(),
		Note:              s.Note(),
		Status:            s.Status().String(),
		StartedAt:         s.StartedAt(),
		StoppedAt:         s.StoppedAt(),
		ActualDurationMin: s.ActualDurationMin(),
		MissingPartsNote:  s.MissingPartsNote(),
		QualityNote:       s.QualityNote(),
		Version:           s.Version(),
	}
}

func WorkCenterViewFromEntity(wc *workcenter.WorkCenter) *WorkCenterView {
	return &WorkCenterView{
		ID:                 wc.ID(),
		Name:               wc.Name(),
		Department:         wc.Department().String(),
		DailyCapacityMin:   wc.DailyCapacityMin(),
		ConcurrentCapacity: wc.ConcurrentCapacity(),
		Active:             wc.IsActive(),
	}
}
