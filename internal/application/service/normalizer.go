package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/tidwall/gjson"
)

// Normalizer maps successful provider bodies to output records. It never
// fails; only an empty provider array yields no records.
type Normalizer struct {
	now func() time.Time
}

func NewNormalizer(now func() time.Time) *Normalizer {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Normalizer{now: now}
}

func (n *Normalizer) CreatedTasks(body []byte, req entity.CreateTaskRequest) []entity.Record {
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsArray() {
		return []entity.Record{entity.UnexpectedResponseRecord{
			Error:    entity.UnexpectedResponseMessage,
			Response: rawPayload(body),
		}}
	}

	tasks := gjson.ParseBytes(body).Array()
	createdAt := n.now()
	records := make([]entity.Record, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, entity.CreatedTaskRecord{
			Query:     textField(task.Get("query")),
			TaskID:    textField(task.Get("task_id")),
			EngineID:  req.EngineID,
			Status:    entity.TaskStatusCreated,
			CreatedAt: createdAt,
		})
	}
	return records
}

// TaskStatus picks exactly one of three shapes. The processing check runs
// before results are looked at.
func (n *Normalizer) TaskStatus(body []byte, req entity.TaskStatusRequest) []entity.Record {
	var data gjson.Result
	if gjson.ValidBytes(body) {
		data = gjson.ParseBytes(body)
	}

	if data.IsObject() {
		status := data.Get("status")
		if status.Type == gjson.String && status.Str == string(entity.TaskStatusProcessing) {
			return []entity.Record{entity.ProcessingRecord{
				TaskID:    req.TaskID,
				Status:    entity.TaskStatusProcessing,
				CheckedAt: n.now(),
			}}
		}

		if results := data.Get("results"); results.IsArray() {
			items := results.Array()
			retrievedAt := n.now()
			records := make([]entity.Record, 0, len(items))
			for i, item := range items {
				records = append(records, entity.RankResultRecord{
					TaskID:      req.TaskID,
					Position:    parsePosition(item.Get("position")),
					URL:         textField(item.Get("url")),
					Title:       textField(item.Get("title")),
					Snippet:     textField(item.Get("snippet")),
					CacheURL:    textField(item.Get("cache_url")),
					ResultIndex: i + 1,
					RetrievedAt: retrievedAt,
				})
			}
			return records
		}
	}

	return []entity.Record{entity.NoResultsRecord{
		TaskID:    req.TaskID,
		Status:    entity.TaskStatusCompletedNoResults,
		Data:      rawPayload(body),
		CheckedAt: n.now(),
	}}
}

// rawPayload keeps valid JSON as-is and wraps anything else as a JSON string.
func rawPayload(body []byte) json.RawMessage {
	if len(bytes.TrimSpace(body)) > 0 && gjson.ValidBytes(body) {
		return append(json.RawMessage(nil), body...)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(string(body))
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n"))
}

// textField renders a scalar as text. Missing, null, false, zero and empty
// values become "".
func textField(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		if r.Num == 0 {
			return ""
		}
		return r.Raw
	case gjson.True:
		return "true"
	case gjson.JSON:
		return r.Raw
	default:
		return ""
	}
}

// parsePosition reads a leading base-10 integer ("3", " 7th", 4.9). Anything
// unparseable or negative is 0; values past math.MaxInt are clamped.
func parsePosition(r gjson.Result) int {
	switch r.Type {
	case gjson.Number:
		if math.IsNaN(r.Num) || r.Num < 0 {
			return 0
		}
		if r.Num >= float64(math.MaxInt) {
			return math.MaxInt
		}
		return int(r.Num)
	case gjson.String:
		return leadingInt(r.Str)
	default:
		return 0
	}
}

func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return v
}
