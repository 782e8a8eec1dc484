package interfaces

import (
	"context"

	simplejson "github.com/bitly/go-simplejson"
)

// MarketDataSource fetches raw upstream payloads. Implementations return
// *marketdata.UpstreamError for every failure and never a nil payload on success.
type MarketDataSource interface {
	LatestBlock(ctx context.Context) (*simplejson.Json, error)
	SpotMarkets(ctx context.Context) (*simplejson.Json, error)
	SpotOrderBook(ctx context.Context, marketID string) (*simplejson.Json, error)
}
