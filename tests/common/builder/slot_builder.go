//go:build unit

package builder

import (
	"time"

	domschedule "planboard/internal/domain/schedule"
	reqdto "planboard/internal/handler/dto/request"
	"planboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	WorkCenterID uuid.UUID
	Date         time.Time
	StartMin     int
	LengthMin    int
	OrderID      *uuid.UUID
	Blocked      bool
	Note         string
	Rules        domschedule.PlacementRules
}

func NewSlotBuilder() *SlotBuilder {
	orderID := uuid.New()
	return &SlotBuilder{
		WorkCenterID: uuid.New(),
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartMin:     480,
		LengthMin:    60,
		OrderID:      &orderID,
		Blocked:      false,
		Note:         "",
		Rules:        domschedule.DefaultPlacementRules(),
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

// AsBlocker turns the slot into a non-production blocker.
func (b *SlotBuilder) AsBlocker() *SlotBuilder {
	b.OrderID = nil
	b.Blocked = true
	return b
}

func (b *SlotBuilder) BuildDomain() (*domschedule.Slot, error) {
	return domschedule.NewSlot(
		b.Rules,
		b.WorkCenterID,
		b.Date,
		domschedule.NewInterval(b.StartMin, b.LengthMin),
		b.OrderID,
		b.Blocked,
		b.Note,
	)
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	var note *string
	if b.Note != "" {
		note = &b.Note
	}
	return reqdto.CreateSlotRequest{
		WorkCenterID: b.WorkCenterID,
		Date:         b.Date.Format(reqdto.DateLayout),
		StartMin:     b.StartMin,
		LengthMin:    b.LengthMin,
		OrderID:      b.OrderID,
		Blocked:      b.Blocked,
		Note:         note,
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:           uuid.New(),
		WorkCenterID: b.WorkCenterID,
		Date:         b.Date,
		StartMin:     b.StartMin,
		LengthMin:    b.LengthMin,
		OrderID:      b.OrderID,
		Blocked:      b.Blocked,
		Note:         b.Note,
		Status:       domschedule.StatusPlanned.String(),
		Version:      1,
	}
}
