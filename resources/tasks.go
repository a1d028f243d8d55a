package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type Task struct {
	ID                 string          `json:"id"`
	FarmID             string          `json:"farm_id"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	TaskType           string          `json:"task_type"`
	Priority           string          `json:"priority"`
	Status             string          `json:"status"`
	AssignedTo         string          `json:"assigned_to,omitempty"`
	ZoneID             string          `json:"zone_id,omitempty"`
	CropCycleID        string          `json:"crop_cycle_id,omitempty"`
	DueDate            *apiclient.Date `json:"due_date,omitempty"`
	CompletedAt        *apiclient.Time `json:"completed_at,omitempty"`
	PhotoProofRequired bool            `json:"photo_proof_required"`
	CreatedBy          string          `json:"created_by"`
	CreatedAt          apiclient.Time  `json:"created_at"`
}

type TaskInput struct {
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	TaskType           string          `json:"task_type"`
	Priority           string          `json:"priority,omitempty"`
	AssignedTo         string          `json:"assigned_to,omitempty"`
	ZoneID             string          `json:"zone_id,omitempty"`
	CropCycleID        string          `json:"crop_cycle_id,omitempty"`
	DueDate            *apiclient.Date `json:"due_date,omitempty"`
	PhotoProofRequired bool            `json:"photo_proof_required"`
}

type Tasks struct {
	client *apiclient.Client
}

// List pages through tasks; filter may carry status, assigned_to, skip and limit.
func (t *Tasks) List(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[Task], error) {
	return get[apiclient.Page[Task]](ctx, t.client, farmPath(farmID, "tasks", "/"), filter)
}

func (t *Tasks) Create(ctx context.Context, farmID string, in TaskInput) (Task, error) {
	return post[Task](ctx, t.client, farmPath(farmID, "tasks", "/"), in)
}

// UpdateStatus moves a task to status (pending, in_progress, completed, cancelled, blocked).
func (t *Tasks) UpdateStatus(ctx context.Context, farmID, taskID, status, notes string) (Task, error) {
	body := map[string]string{"status": status}
	if notes != "" {
		body["notes"] = notes
	}
	return post[Task](ctx, t.client, farmPath(farmID, "tasks", url.PathEscape(taskID), "status"), body)
}

func (t *Tasks) Overdue(ctx context.Context, farmID string) ([]Task, error) {
	return get[[]Task](ctx, t.client, farmPath(farmID, "tasks", "overdue"), nil)
}
