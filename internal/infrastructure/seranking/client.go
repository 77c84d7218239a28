package seranking

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.seranking.com"

	// RequestTimeout applies to every provider call.
	RequestTimeout = 30 * time.Second

	createTasksPath = "/v1/serp/tasks"
	taskStatusPath  = "/v1/serp/tasks/status"
)

var _ output.SerpClientPort = (*Client)(nil)

type Client struct {
	http *resty.Client
}

type Config struct {
	BaseURL    string
	HTTPSProxy string
	NoProxy    string
	Logger     output.LoggerPort
}

func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
	}
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	transport := &loggingTransport{
		base:   newBaseTransport(cfg),
		logger: cfg.Logger,
	}

	client := resty.NewWithClient(&http.Client{Transport: transport}).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(RequestTimeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &Client{http: client}
}

func (c *Client) CreateTasks(ctx context.Context, creds entity.Credentials, req entity.CreateTaskRequest) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization(creds)).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(createTasksPath)
	return responseBody(resp, err)
}

func (c *Client) TaskStatus(ctx context.Context, creds entity.Credentials, req entity.TaskStatusRequest) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization(creds)).
		SetQueryParam("task_id", req.TaskID).
		Get(taskStatusPath)
	return responseBody(resp, err)
}

func authorization(creds entity.Credentials) string {
	return "Token " + creds.APIToken
}

func responseBody(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, &entity.TransportError{Code: transportCode(err), Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &entity.APIError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}
	return resp.Body(), nil
}

// transportCode maps low level failures onto errno-style codes. Unknown
// failures return "".
func transportCode(err error) string {
	var netErr net.Error
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.Canceled):
		return "ERR_CANCELED"
	case errors.Is(err, context.DeadlineExceeded):
		return "ETIMEDOUT"
	case errors.As(err, &dnsErr):
		return "ENOTFOUND"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "ECONNREFUSED"
	case errors.Is(err, syscall.ECONNRESET):
		return "ECONNRESET"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "ETIMEDOUT"
	default:
		return ""
	}
}
