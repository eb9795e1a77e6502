package netmon

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// HTTPProbe polls the server health endpoint and emits connectivity
// transitions. The first sample is always delivered so subscribers
// learn the initial state.
type HTTPProbe struct {
	httpClient *http.Client
	url        string
	interval   time.Duration
}

// NewHTTPProbe creates a probe against baseURL's health endpoint.
func NewHTTPProbe(baseURL string, interval time.Duration) *HTTPProbe {
	return &HTTPProbe{
		url:      baseURL + "/api/v1/health",
		interval: interval,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Subscribe starts polling and calls handler on every transition.
func (p *HTTPProbe) Subscribe(ctx context.Context, handler func(online bool)) (func(), error) {
	stopCh := make(chan struct{})

	go func() {
		online := p.check(ctx)
		handler(online)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-stopCh:
				return
			case <-ticker.C:
				current := p.check(ctx)
				if current != online {
					online = current
					handler(online)
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stopCh) })
	}, nil
}

func (p *HTTPProbe) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.StatusCode == http.StatusOK
}
