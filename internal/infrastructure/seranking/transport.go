package seranking

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"golang.org/x/net/http/httpproxy"
)

// loggingTransport logs each outbound call. Headers and bodies are never
// logged since they carry the API token.
type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if t.logger == nil {
		return resp, err
	}

	fields := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"durationMs", time.Since(start).Milliseconds(),
	}
	if err != nil {
		t.logger.Warn("HTTP request failed", append(fields, "error", err)...)
		return resp, err
	}
	t.logger.Debug("HTTP response", append(fields, "statusCode", resp.StatusCode)...)
	return resp, err
}

func newBaseTransport(cfg Config) *http.Transport {
	proxy := httpproxy.FromEnvironment()
	if cfg.HTTPSProxy != "" {
		proxy.HTTPSProxy = cfg.HTTPSProxy
		proxy.HTTPProxy = cfg.HTTPSProxy
	}
	if cfg.NoProxy != "" {
		proxy.NoProxy = cfg.NoProxy
	}
	proxyFunc := proxy.ProxyFunc()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return proxyFunc(req.URL)
	}
	return transport
}
