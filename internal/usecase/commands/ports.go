package commands

import (
	"context"
	"time"

	"planboard/internal/domain/schedule"
	"planboard/internal/domain/workcenter"

	"github.com/google/uuid"
)

// OrderSnapshot is the thin projection of the externally owned Order
// aggregate. The scheduling core reads it and, apart from the missing-parts
// escalation, never writes it.
type OrderSnapshot struct {
	ID                uuid.UUID
	Department        string
	Workflow          string
	DueDate           *time.Time
	HasRequiredAssets bool
}

// WorkflowWaitingMissingParts is the order workflow state the escalation
// moves an order into.
const WorkflowWaitingMissingParts = "waiting_missing_parts"

type SlotRepository interface {
	Create(ctx context.Context, slot *schedule.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Slot, error)
	// Update persists the slot iff the stored version still equals
	// expectedVersion and returns the bumped version.
	Update(ctx context.Context, slot *schedule.Slot, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, id uuid.UUID, expectedVersion int64) error
}

type WorkCenterRepository interface {
	Create(ctx context.Context, wc *workcenter.WorkCenter) error
	FindByID(ctx context.Context, id uuid.UUID) (*workcenter.WorkCenter, error)
	Update(ctx context.Context, wc *workcenter.WorkCenter) error
}

type OrderReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
}

// OrderWorkflows is the write-only collaborator of the escalation protocol.
// Calls are best-effort from the state machine's point of view: a failure
// never rolls the slot transition back.
type OrderWorkflows interface {
	SetWorkflow(ctx context.Context, orderID uuid.UUID, state string) error
}
