package dto

import "family-planner/domain/models"

type CreateTaskRequest struct {
	Title            string `json:"title" validate:"required,max=255"`
	Description      string `json:"description"`
	DueDay           string `json:"dueDay" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Priority         string `json:"priority" validate:"required,oneof=low medium high"`
	Status           string `json:"status" validate:"omitempty,oneof=todo doing done"`
	AssignedToUserID *uint  `json:"assignedToUserId"`
}

// UpdateTaskRequest carries a partial patch: only fields present in the body
// are applied, everything else on the task is left untouched. The assignee is
// a NullableID because an explicit null releases the task while an absent key
// keeps the current assignee.
type UpdateTaskRequest struct {
	Title            *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description      *string    `json:"description"`
	DueDay           *string    `json:"dueDay" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Priority         *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status           *string    `json:"status" validate:"omitempty,oneof=todo doing done"`
	AssignedToUserID NullableID `json:"assignedToUserId,omitzero"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=todo doing done"`
}

// UpdateAssigneeRequest sets or clears the assignee. A null
// assignedToUserId releases the task back to open.
type UpdateAssigneeRequest struct {
	AssignedToUserID *uint `json:"assignedToUserId"`
}

type TaskResponse struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	DueDay           string `json:"dueDay"`
	Priority         string `json:"priority"`
	Status           string `json:"status"`
	AssignedToUserID *uint  `json:"assignedToUserId"`
}

// NewTaskResponse maps a stored task to its external camelCase shape. This is
// the only place storage field names are translated to wire field names.
func NewTaskResponse(t *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		DueDay:           string(t.DueDay),
		Priority:         string(t.Priority),
		Status:           string(t.Status),
		AssignedToUserID: t.AssignedToUserID,
	}
}

// Open reports whether the task has no assignee.
func (t *TaskResponse) Open() bool {
	return t.AssignedToUserID == nil
}
