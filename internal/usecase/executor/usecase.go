package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/input"
	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/Eugene-WebDev/se-ranking-node/internal/application/service"
	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/google/uuid"
)

var _ input.BatchExecutor = (*UseCase)(nil)

type UseCase struct {
	operations output.OperationRegistry
	logger     output.LoggerPort
	progress   output.ProgressPort
	newRunID   func() string
}

func New(
	operations output.OperationRegistry,
	logger output.LoggerPort,
	progress output.ProgressPort,
) *UseCase {
	return &UseCase{
		operations: operations,
		logger:     logger,
		progress:   progress,
		newRunID:   uuid.NewString,
	}
}

// Execute processes the batch items in order, one provider call at a time.
//
// A failure before the item loop returns a *entity.RunError and no result.
// In strict mode a failed item stops the run with an *entity.ItemError; the
// returned result still holds every record emitted for earlier items.
func (uc *UseCase) Execute(ctx context.Context, batch entity.Batch) (*input.ExecuteResult, error) {
	runID := uc.newRunID()
	log := uc.logger.WithFields(map[string]any{
		"run_id":    runID,
		"operation": batch.Operation.String(),
		"mode":      batch.Mode.String(),
	})

	handler, err := uc.prepare(batch)
	if err != nil {
		log.Error("Run aborted before processing items", "error", err)
		return nil, err
	}

	log.Info("Run started", "items", len(batch.Items))
	uc.progress.ShowRunStart(ctx, runID, batch.Operation.String(), len(batch.Items))

	result := &input.ExecuteResult{
		RunID:   runID,
		Records: make([]entity.Record, 0, len(batch.Items)),
	}

	for i, params := range batch.Items {
		itemLog := log.WithField("item", i)

		records, err := handler.Handle(ctx, batch.Credentials, params)
		uc.progress.ShowItemResult(ctx, i, len(records), err)
		if err == nil {
			itemLog.Debug("Item succeeded", "records", len(records))
			result.Records = append(result.Records, records...)
			continue
		}

		c := service.Classify(err)
		if batch.Mode == entity.RunModeTolerant {
			itemLog.Warn("Item failed, continuing", "error", c.Message, "code", c.Code)
			result.Records = append(result.Records, entity.ErrorRecord{
				Error:        true,
				ErrorMessage: c.Message,
				ErrorCode:    c.Code,
				Item:         i,
			})
			continue
		}

		itemErr := &entity.ItemError{Index: i, Message: c.Message, Code: c.Code, Err: err}
		itemLog.Error("Item failed, aborting run", "error", c.Message, "code", c.Code)
		uc.progress.ShowRunDone(ctx, len(result.Records), itemErr)
		return result, itemErr
	}

	log.Info("Run completed", "records", len(result.Records))
	uc.progress.ShowRunDone(ctx, len(result.Records), nil)
	return result, nil
}

func (uc *UseCase) prepare(batch entity.Batch) (output.OperationHandler, error) {
	handler, ok := uc.operations.Get(batch.Operation)
	if !ok {
		return nil, &entity.RunError{Err: fmt.Errorf("unknown operation %q", batch.Operation)}
	}
	if strings.TrimSpace(batch.Credentials.APIToken) == "" {
		return nil, &entity.RunError{Err: fmt.Errorf("credentials: %w", entity.ErrMissingAPIToken)}
	}
	return handler, nil
}
