package entity

type TaskStatus string

const (
	TaskStatusCreated            TaskStatus = "created"
	TaskStatusProcessing         TaskStatus = "processing"
	TaskStatusCompletedNoResults TaskStatus = "completed_no_results"
)

type Credentials struct {
	APIToken string
}

// ItemParams are the per-item parameters supplied by the host. Which fields
// are read depends on the run's Operation.
type ItemParams struct {
	EngineID int    `json:"engine_id"`
	Keywords string `json:"keywords"`
	TaskID   string `json:"task_id"`
}

type Batch struct {
	Operation   Operation
	Mode        RunMode
	Credentials Credentials
	Items       []ItemParams
}

// CreateTaskRequest doubles as the wire body of POST /v1/serp/tasks.
type CreateTaskRequest struct {
	EngineID int      `json:"engine_id" validate:"required"`
	Keywords []string `json:"query" validate:"min=1,dive,required"`
}

type TaskStatusRequest struct {
	TaskID string `json:"task_id" validate:"required"`
}
