package response

import (
	"time"

	"planboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID                uuid.UUID  `json:"id"`
	WorkCenterID      uuid.UUID  `json:"workCenterId"`
	Date              string     `json:"date"`
	StartMin          int        `json:"startMin"`
	LengthMin         int        `json:"lengthMin"`
	OrderID           *uuid.UUID `json:"orderId,omitempty"`
	Blocked           bool       `json:"blocked"`
	Note              string     `json:"note,omitempty"`
	Status            string     `json:"status"`
	StartedAt         *time.Time `json:"startedAt,omitempty"`
	StoppedAt         *time.Time `json:"stoppedAt,omitempty"`
	ActualDurationMin *int       `json:"actualDurationMin,omitempty"`
	MissingPartsNote  *string    `json:"missingPartsNote,omitempty"`
	QualityNote       *string    `json:"qualityNote,omitempty"`
	Lane              int        `json:"lane"`
	TotalLanes        int        `json:"totalLanes"`
	Version           int64      `json:"version"`
}

type ProblemReportResponse struct {
	Slot             *SlotResponse `json:"slot"`
	EscalationFailed bool          `json:"escalationFailed"`
}

type CapacityResponse struct {
	WorkCenterID    uuid.UUID `json:"workCenterId"`
	Date            string    `json:"date"`
	UsedMin         int       `json:"usedMin"`
	CapacityMin     int       `json:"capacityMin"`
	OverflowRatio   float64   `json:"overflowRatio"`
	PeakLanes       int       `json:"peakLanes"`
	MinutesExceeded bool      `json:"minutesExceeded"`
	LanesExceeded   bool      `json:"lanesExceeded"`
}

type CenterDayResponse struct {
	WorkCenter *WorkCenterResponse `json:"workCenter"`
	Slots      []*SlotResponse     `json:"slots"`
	Usage      *CapacityResponse   `json:"usage"`
}

type DayBoardResponse struct {
	Date    string               `json:"date"`
	Centers []*CenterDayResponse `json:"centers"`
}

type TodaySlotResponse struct {
	SlotResponse
	ElapsedMin int `json:"elapsedMin"`
}

type OrderResponse struct {
	ID                uuid.UUID  `json:"id"`
	Department        string     `json:"department"`
	Workflow          string     `json:"workflow"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	HasRequiredAssets bool       `json:"hasRequiredAssets"`
}

const dateLayout = "2006-01-02"

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:                v.ID,
		WorkCenterID:      v.WorkCenterID,
		Date:              v.Date.Format(dateLayout),
		StartMin:          v.StartMin,
		LengthMin:         v.LengthMin,
		OrderID:           v.OrderID,
		Blocked:           v.Blocked,
		Note:              v.Note,
		Status:            v.Status,
		StartedAt:         v.StartedAt,
		StoppedAt:         v.StoppedAt,
		ActualDurationMin: v.ActualDurationMin,
		MissingPartsNote:  v.MissingPartsNote,
		QualityNote:       v.QualityNote,
		Lane:              v.Lane,
		TotalLanes:        v.TotalLanes,
		Version:           v.Version,
	}
}

func FromCapacityView(v *queries.CapacityView) *CapacityResponse {
	return &CapacityResponse{
		WorkCenterID:    v.WorkCenterID,
		Date:            v.Date.Format(dateLayout),
		UsedMin:         v.UsedMin,
		CapacityMin:     v.CapacityMin,
		OverflowRatio:   v.OverflowRatio,
		PeakLanes:       v.PeakLanes,
		MinutesExceeded: v.MinutesExceeded,
		LanesExceeded:   v.LanesExceeded,
	}
}

func FromDayBoardView(v *queries.DayBoardView) *DayBoardResponse {
	centers := make([]*CenterDayResponse, len(v.Centers))
	for i, center := range v.Centers {
		slots := make([]*SlotResponse, len(center.Slots))
		for j, s := range center.Slots {
			slots[j] = FromSlotView(s)
		}
		centers[i] = &CenterDayResponse{
			WorkCenter: FromWorkCenterView(center.WorkCenter),
			Slots:      slots,
			Usage:      FromCapacityView(center.Usage),
		}
	}
	return &DayBoardResponse{Date: v.Date.Format(dateLayout), Centers: centers}
}

func FromTodaySlotView(v *queries.TodaySlotView) *TodaySlotResponse {
	return &TodaySlotResponse{
		SlotResponse: *FromSlotView(&v.SlotView),
		ElapsedMin:   v.ElapsedMin,
	}
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:                v.ID,
		Department:        v.Department,
		Workflow:          v.Workflow,
		DueDate:           v.DueDate,
		HasRequiredAssets: v.HasRequiredAssets,
	}
}
