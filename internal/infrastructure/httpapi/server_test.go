package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/input"
	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/Eugene-WebDev/se-ranking-node/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	result *input.ExecuteResult
	err    error
	got    entity.Batch
}

func (f *fakeExecutor) Execute(_ context.Context, batch entity.Batch) (*input.ExecuteResult, error) {
	f.got = batch
	return f.result, f.err
}

func post(t *testing.T, s *Server, body, auth string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/executions", strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHandleExecute_Success(t *testing.T) {
	exec := &fakeExecutor{result: &input.ExecuteResult{
		RunID:   "run-1",
		Records: []entity.Record{entity.ProcessingRecord{TaskID: "t1", Status: entity.TaskStatusProcessing}},
	}}
	s := NewServer(exec, Config{DefaultToken: "default", Logger: logger.NewNop()})

	rec, resp := post(t, s, `{"operation":"getTaskStatus","continue_on_fail":true,"items":[{"task_id":"t1"}]}`, "Token from-header")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "run-1", resp["run_id"])
	assert.Len(t, resp["records"], 1)
	assert.Nil(t, resp["error"])

	assert.Equal(t, entity.OperationGetTaskStatus, exec.got.Operation)
	assert.Equal(t, entity.RunModeTolerant, exec.got.Mode)
	assert.Equal(t, "from-header", exec.got.Credentials.APIToken)
	assert.Equal(t, []entity.ItemParams{{TaskID: "t1"}}, exec.got.Items)
}

func TestHandleExecute_DefaultToken(t *testing.T) {
	exec := &fakeExecutor{result: &input.ExecuteResult{RunID: "r"}}
	s := NewServer(exec, Config{DefaultToken: "default", Logger: logger.NewNop()})

	rec, resp := post(t, s, `{"operation":"createSerpTask","items":[{"engine_id":200,"keywords":"a,b"}]}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, resp["records"])
	assert.Equal(t, "default", exec.got.Credentials.APIToken)
	assert.Equal(t, entity.RunModeStrict, exec.got.Mode)
}

func TestHandleExecute_ItemErrorKeepsPartialRecords(t *testing.T) {
	exec := &fakeExecutor{
		result: &input.ExecuteResult{
			RunID:   "run-2",
			Records: []entity.Record{entity.ProcessingRecord{TaskID: "t1", Status: entity.TaskStatusProcessing}},
		},
		err: &entity.ItemError{Index: 1, Message: "Task not found", Code: "404"},
	}
	s := NewServer(exec, Config{Logger: logger.NewNop()})

	rec, resp := post(t, s, `{"operation":"getTaskStatus","items":[{"task_id":"t1"},{"task_id":"t2"}]}`, "Token x")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Len(t, resp["records"], 1)
	errBody := resp["error"].(map[string]any)
	assert.Equal(t, float64(1), errBody["item"])
	assert.Equal(t, "404", errBody["code"])
	assert.Contains(t, errBody["message"], "Task not found")
}

func TestHandleExecute_RunError(t *testing.T) {
	exec := &fakeExecutor{err: &entity.RunError{Err: entity.ErrMissingAPIToken}}
	s := NewServer(exec, Config{Logger: logger.NewNop()})

	rec, resp := post(t, s, `{"operation":"getTaskStatus","items":[]}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{}, resp["records"])
	assert.Contains(t, resp["error"].(map[string]any)["message"], "api token is required")
}

func TestHandleExecute_UnexpectedError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("boom")}
	s := NewServer(exec, Config{Logger: logger.NewNop()})

	rec, _ := post(t, s, `{"operation":"getTaskStatus","items":[]}`, "Token x")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleExecute_BadBody(t *testing.T) {
	exec := &fakeExecutor{}
	s := NewServer(exec, Config{Logger: logger.NewNop()})

	rec, resp := post(t, s, `{"operation":"getTaskStatus","unknown":1}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"].(map[string]any)["message"], "invalid request body")
}

func TestHealthz(t *testing.T) {
	s := NewServer(&fakeExecutor{}, Config{Logger: logger.NewNop()})
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
