package output

import (
	"context"

	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
)

// SerpClientPort performs exactly one provider call per method and returns the
// raw 2xx body. Failures come back as *entity.TransportError or *entity.APIError.
type SerpClientPort interface {
	CreateTasks(ctx context.Context, creds entity.Credentials, req entity.CreateTaskRequest) ([]byte, error)
	TaskStatus(ctx context.Context, creds entity.Credentials, req entity.TaskStatusRequest) ([]byte, error)
}
