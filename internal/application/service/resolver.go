package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/go-playground/validator/v10"
)

const keywordSeparator = ","

// Resolver turns raw item parameters into validated provider requests.
// It never touches the network.
type Resolver struct {
	validate *validator.Validate
}

func NewResolver() *Resolver {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Resolver{validate: v}
}

// ParseKeywords splits a comma separated list, trimming each piece and
// dropping blanks. Order and duplicates are kept.
func ParseKeywords(raw string) []string {
	parts := strings.Split(raw, keywordSeparator)
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

func (r *Resolver) ResolveCreateTask(params entity.ItemParams) (entity.CreateTaskRequest, error) {
	req := entity.CreateTaskRequest{
		EngineID: params.EngineID,
		Keywords: ParseKeywords(params.Keywords),
	}
	if len(req.Keywords) == 0 {
		return entity.CreateTaskRequest{}, entity.NewValidationError("at least one keyword required")
	}
	if err := r.check(req); err != nil {
		return entity.CreateTaskRequest{}, err
	}
	return req, nil
}

func (r *Resolver) ResolveTaskStatus(params entity.ItemParams) (entity.TaskStatusRequest, error) {
	req := entity.TaskStatusRequest{TaskID: params.TaskID}
	if strings.TrimSpace(req.TaskID) == "" {
		return entity.TaskStatusRequest{}, entity.NewValidationError("task_id is required")
	}
	if err := r.check(req); err != nil {
		return entity.TaskStatusRequest{}, err
	}
	return req, nil
}

func (r *Resolver) check(req any) error {
	err := r.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return entity.NewValidationError(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return entity.NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
	case "min":
		return entity.NewValidationError(fmt.Sprintf("%s must have at least %s entries", fe.Field(), fe.Param()))
	default:
		return entity.NewValidationError(fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()))
	}
}
