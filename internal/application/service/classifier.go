package service

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/tidwall/gjson"
)

type Classification struct {
	Message string
	Code    string
}

// Classify extracts a human readable message and an error code from a
// failed item.
func Classify(err error) Classification {
	if err == nil {
		return Classification{Message: entity.UnknownErrorMessage, Code: entity.ErrorCodeUnknown}
	}

	var apiErr *entity.APIError
	if errors.As(err, &apiErr) && hasBody(apiErr) {
		return Classification{
			Message: apiErrorMessage(apiErr),
			Code:    apiErrorCode(apiErr),
		}
	}

	var transportErr *entity.TransportError
	if errors.As(err, &transportErr) && transportErr.Code != "" {
		return withMessage(err.Error(), transportErr.Code)
	}

	return withMessage(err.Error(), entity.ErrorCodeRequest)
}

// hasBody reports whether the provider sent anything besides whitespace or
// a bare JSON null.
func hasBody(e *entity.APIError) bool {
	body := bytes.TrimSpace(e.Body)
	return len(body) > 0 && !bytes.Equal(body, []byte("null"))
}

func withMessage(msg, code string) Classification {
	if msg == "" {
		return Classification{Message: entity.UnknownErrorMessage, Code: entity.ErrorCodeUnknown}
	}
	return Classification{Message: msg, Code: code}
}

func apiErrorMessage(e *entity.APIError) string {
	if gjson.ValidBytes(e.Body) {
		body := gjson.ParseBytes(e.Body)
		for _, field := range []string{"error_description", "message"} {
			if v := body.Get(field); v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
	}
	return e.Error()
}

func apiErrorCode(e *entity.APIError) string {
	if e.StatusCode == 0 {
		return entity.ErrorCodeAPI
	}
	return strconv.Itoa(e.StatusCode)
}
