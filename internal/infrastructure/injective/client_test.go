package injective

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ninja-api-forge/internal/config"
	marketdata "ninja-api-forge/internal/domain/entity/marketdata"
	"ninja-api-forge/internal/logger"
)

// recordingUpstream serves canned responses and remembers requested paths.
type recordingUpstream struct {
	mu     sync.Mutex
	paths  []string
	agents []string
	status int
	body   string
	delay  time.Duration
}

func (u *recordingUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.paths = append(u.paths, r.URL.EscapedPath())
	u.agents = append(u.agents, r.UserAgent())
	u.mu.Unlock()

	if u.delay > 0 {
		select {
		case <-time.After(u.delay):
		case <-r.Context().Done():
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if u.status != 0 {
		w.WriteHeader(u.status)
	}
	_, _ = w.Write([]byte(u.body))
}

func newTestClient(t *testing.T, upstream *recordingUpstream) *Client {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	return NewClient(config.UpstreamConfig{
		LCDURL:        srv.URL + "/",
		IndexerURL:    srv.URL,
		HealthTimeout: time.Second,
		DataTimeout:   time.Second,
		UserAgent:     "gateway-test",
	}, logger.Discard())
}

func TestLatestBlock(t *testing.T) {
	up := &recordingUpstream{body: `{"block":{"header":{"height":"77"}}}`}
	c := newTestClient(t, up)

	payload, err := c.LatestBlock(context.Background())
	if err != nil {
		t.Fatalf("LatestBlock: %v", err)
	}
	if h := payload.GetPath("block", "header", "height").MustString(); h != "77" {
		t.Fatalf("unexpected height %q", h)
	}
	if up.paths[0] != latestBlockPath {
		t.Fatalf("unexpected path %q", up.paths[0])
	}
	if up.agents[0] != "gateway-test" {
		t.Fatalf("user agent not sent: %q", up.agents[0])
	}
}

func TestSpotMarketsPath(t *testing.T) {
	up := &recordingUpstream{body: `{"markets":[]}`}
	c := newTestClient(t, up)

	if _, err := c.SpotMarkets(context.Background()); err != nil {
		t.Fatalf("SpotMarkets: %v", err)
	}
	if up.paths[0] != spotMarketsPath {
		t.Fatalf("unexpected path %q", up.paths[0])
	}
}

func TestSpotOrderBookEscapesMarketID(t *testing.T) {
	up := &recordingUpstream{body: `{"orderbook":{}}`}
	c := newTestClient(t, up)

	if _, err := c.SpotOrderBook(context.Background(), "0xabc"); err != nil {
		t.Fatalf("SpotOrderBook: %v", err)
	}
	if _, err := c.SpotOrderBook(context.Background(), "a/b?c"); err != nil {
		t.Fatalf("SpotOrderBook: %v", err)
	}
	if up.paths[0] != "/api/exchange/spot/v2/orderbook/0xabc" {
		t.Fatalf("unexpected path %q", up.paths[0])
	}
	if up.paths[1] != "/api/exchange/spot/v2/orderbook/a%2Fb%3Fc" {
		t.Fatalf("market id not escaped: %q", up.paths[1])
	}
}

func TestFetchNumbersKeepText(t *testing.T) {
	up := &recordingUpstream{body: `{"orderbook":{"sells":[{"price":0.1000000000000000055511151231257827}]}}`}
	c := newTestClient(t, up)

	payload, err := c.SpotOrderBook(context.Background(), "m")
	if err != nil {
		t.Fatalf("SpotOrderBook: %v", err)
	}
	price := payload.GetPath("orderbook", "sells").GetIndex(0).Get("price").Interface()
	if s, ok := price.(interface{ String() string }); !ok || s.String() != "0.1000000000000000055511151231257827" {
		t.Fatalf("number should be kept as json.Number, got %#v", price)
	}
}

func TestFetchFailures(t *testing.T) {
	cases := []struct {
		name     string
		upstream *recordingUpstream
		contains string
	}{
		{"not found", &recordingUpstream{status: http.StatusNotFound, body: `{"message":"nope"}`}, "404 Not Found"},
		{"server error", &recordingUpstream{status: http.StatusInternalServerError, body: `oops`}, "500 Internal Server Error"},
		{"malformed body", &recordingUpstream{body: `{"markets":`}, "decode response"},
		{"non object body", &recordingUpstream{body: `[1,2,3]`}, "not a JSON object"},
		{"trailing garbage", &recordingUpstream{body: `{"markets":[]}garbage`}, "unexpected data after"},
		{"two objects", &recordingUpstream{body: `{"a":1} {"b":2}`}, "unexpected data after"},
		{"empty body", &recordingUpstream{body: ``}, "decode response"},
		{"timeout", &recordingUpstream{body: `{}`, delay: 2 * time.Second}, "deadline exceeded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, tc.upstream)
			c.dataTimeout = 100 * time.Millisecond

			_, err := c.SpotMarkets(context.Background())
			var upstreamErr *marketdata.UpstreamError
			if !errors.As(err, &upstreamErr) {
				t.Fatalf("expected UpstreamError, got %v", err)
			}
			if upstreamErr.Upstream != marketdata.SourceIndexer {
				t.Errorf("unexpected upstream %q", upstreamErr.Upstream)
			}
			if !strings.Contains(err.Error(), tc.contains) {
				t.Errorf("error %q does not mention %q", err, tc.contains)
			}
		})
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := NewClient(config.UpstreamConfig{
		LCDURL:        addr,
		IndexerURL:    addr,
		HealthTimeout: time.Second,
		DataTimeout:   time.Second,
	}, logger.Discard())

	_, err := c.LatestBlock(context.Background())
	var upstreamErr *marketdata.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstreamErr.Upstream != marketdata.UpstreamLCD || !strings.HasPrefix(upstreamErr.URL, addr) {
		t.Fatalf("unexpected error details: %+v", upstreamErr)
	}
}

func TestFetchHonoursCallerCancellation(t *testing.T) {
	up := &recordingUpstream{body: `{}`, delay: 2 * time.Second}
	c := newTestClient(t, up)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.SpotMarkets(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}


func TestFetchAcceptsTrailingWhitespace(t *testing.T) {
	up := &recordingUpstream{body: "{\"markets\":[{\"marketId\":\"0x1\"}]}\n  \n"}
	c := newTestClient(t, up)

	payload, err := c.SpotMarkets(context.Background())
	if err != nil {
		t.Fatalf("SpotMarkets: %v", err)
	}
	if id := payload.Get("markets").GetIndex(0).Get("marketId").MustString(); id != "0x1" {
		t.Fatalf("unexpected market id %q", id)
	}
}
