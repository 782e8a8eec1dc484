package injective

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/go-resty/resty/v2"

	"ninja-api-forge/internal/config"
	marketdata "ninja-api-forge/internal/domain/entity/marketdata"
	interfaces "ninja-api-forge/internal/domain/interfaces"
	"ninja-api-forge/internal/logger"
)

const (
	latestBlockPath   = "/cosmos/base/tendermint/v1beta1/blocks/latest"
	spotMarketsPath   = "/api/exchange/spot/v1/markets"
	spotOrderBookPath = "/api/exchange/spot/v2/orderbook/{marketId}"
)

var (
	errNotObject     = errors.New("response body is not a JSON object")
	errTrailingBytes = errors.New("unexpected data after top-level JSON value")
)

// Client talks to the Injective LCD and indexer REST endpoints.
type Client struct {
	http          *resty.Client
	lcdURL        string
	indexerURL    string
	healthTimeout time.Duration
	dataTimeout   time.Duration
	log           *logger.Log
}

var _ interfaces.MarketDataSource = (*Client)(nil)

func NewClient(cfg config.UpstreamConfig, log *logger.Log) *Client {
	httpClient := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{
		http:          httpClient,
		lcdURL:        strings.TrimRight(cfg.LCDURL, "/"),
		indexerURL:    strings.TrimRight(cfg.IndexerURL, "/"),
		healthTimeout: cfg.HealthTimeout,
		dataTimeout:   cfg.DataTimeout,
		log:           log,
	}
}

func (c *Client) LatestBlock(ctx context.Context) (*simplejson.Json, error) {
	return c.fetch(ctx, marketdata.UpstreamLCD, c.lcdURL+latestBlockPath, c.healthTimeout, nil)
}

func (c *Client) SpotMarkets(ctx context.Context) (*simplejson.Json, error) {
	return c.fetch(ctx, marketdata.SourceIndexer, c.indexerURL+spotMarketsPath, c.dataTimeout, nil)
}

// SpotOrderBook fetches one market's book; marketID is path-escaped, not validated.
func (c *Client) SpotOrderBook(ctx context.Context, marketID string) (*simplejson.Json, error) {
	params := map[string]string{"marketId": marketID}
	return c.fetch(ctx, marketdata.SourceIndexer, c.indexerURL+spotOrderBookPath, c.dataTimeout, params)
}

// fetch performs a single GET bounded by timeout. Every failure comes back
// as *marketdata.UpstreamError carrying the original error text.
func (c *Client) fetch(ctx context.Context, upstream, endpoint string, timeout time.Duration, pathParams map[string]string) (*simplejson.Json, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	req := c.http.R().SetContext(ctx)
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}
	resp, err := req.Get(endpoint)

	reqURL := endpoint
	if resp != nil && resp.Request != nil && resp.Request.RawRequest != nil {
		reqURL = resp.Request.RawRequest.URL.String()
	}
	fail := func(err error) (*simplejson.Json, error) {
		return nil, &marketdata.UpstreamError{Upstream: upstream, URL: reqURL, Err: err}
	}

	if err != nil {
		return fail(err)
	}
	if !resp.IsSuccess() {
		return fail(fmt.Errorf("%s for url '%s'", resp.Status(), reqURL))
	}

	payload, err := decodeObject(resp.Body())
	if err != nil {
		return fail(fmt.Errorf("decode response from '%s': %w", reqURL, err))
	}

	c.log.WithComponent("injective_client").WithFields(logger.Fields{
		"upstream":    upstream,
		"url":         reqURL,
		"status":      resp.StatusCode(),
		"duration_ms": float64(time.Since(start).Nanoseconds()) / 1e6,
	}).Debug("upstream request finished")

	return payload, nil
}

// decodeObject parses body as exactly one JSON object, keeping numbers as json.Number.
func decodeObject(body []byte) (*simplejson.Json, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errTrailingBytes
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, errNotObject
	}

	payload := simplejson.New()
	payload.SetPath(nil, v)
	return payload, nil
}
