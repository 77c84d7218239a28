package service

import (
	"context"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
)

var (
	_ output.OperationHandler = (*CreateSerpTaskHandler)(nil)
	_ output.OperationHandler = (*GetTaskStatusHandler)(nil)
)

type CreateSerpTaskHandler struct {
	client     output.SerpClientPort
	resolver   *Resolver
	normalizer *Normalizer
	logger     output.LoggerPort
}

func NewCreateSerpTaskHandler(client output.SerpClientPort, resolver *Resolver, normalizer *Normalizer, logger output.LoggerPort) *CreateSerpTaskHandler {
	return &CreateSerpTaskHandler{client: client, resolver: resolver, normalizer: normalizer, logger: logger}
}

func (h *CreateSerpTaskHandler) Operation() entity.Operation {
	return entity.OperationCreateSerpTask
}

func (h *CreateSerpTaskHandler) Handle(ctx context.Context, creds entity.Credentials, params entity.ItemParams) ([]entity.Record, error) {
	req, err := h.resolver.ResolveCreateTask(params)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Creating SERP tasks", "engine_id", req.EngineID, "keywords", len(req.Keywords))

	body, err := h.client.CreateTasks(ctx, creds, req)
	if err != nil {
		return nil, err
	}

	records := h.normalizer.CreatedTasks(body, req)
	if len(records) == 1 && records[0].Kind() == entity.RecordKindUnexpectedResponse {
		h.logger.Warn("Unexpected create response format", "engine_id", req.EngineID)
	}
	return records, nil
}

type GetTaskStatusHandler struct {
	client     output.SerpClientPort
	resolver   *Resolver
	normalizer *Normalizer
	logger     output.LoggerPort
}

func NewGetTaskStatusHandler(client output.SerpClientPort, resolver *Resolver, normalizer *Normalizer, logger output.LoggerPort) *GetTaskStatusHandler {
	return &GetTaskStatusHandler{client: client, resolver: resolver, normalizer: normalizer, logger: logger}
}

func (h *GetTaskStatusHandler) Operation() entity.Operation {
	return entity.OperationGetTaskStatus
}

func (h *GetTaskStatusHandler) Handle(ctx context.Context, creds entity.Credentials, params entity.ItemParams) ([]entity.Record, error) {
	req, err := h.resolver.ResolveTaskStatus(params)
	if err != nil {
		return nil, err
	}

	body, err := h.client.TaskStatus(ctx, creds, req)
	if err != nil {
		return nil, err
	}

	records := h.normalizer.TaskStatus(body, req)
	h.logger.Debug("Task status normalized", "task_id", req.TaskID, "records", len(records))
	return records, nil
}
