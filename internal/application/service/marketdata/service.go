package marketdata

import (
	"context"
	"errors"
	"fmt"

	marketdata "ninja-api-forge/internal/domain/entity/marketdata"
	interfaces "ninja-api-forge/internal/domain/interfaces"
)

// Bounds for limit and depth. The query binding tags in the HTTP layer mirror them.
const (
	MinCount = 1
	MaxCount = 200
)

var (
	ErrInvalidLimit = fmt.Errorf("limit must be between %d and %d", MinCount, MaxCount)
	ErrInvalidDepth = fmt.Errorf("depth must be between %d and %d", MinCount, MaxCount)
)

type Service struct {
	source interfaces.MarketDataSource
}

func NewService(source interfaces.MarketDataSource) *Service {
	return &Service{source: source}
}

// Upstream health

func (s *Service) UpstreamStatus(ctx context.Context) (*marketdata.UpstreamStatus, error) {
	payload, err := s.source.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}
	return &marketdata.UpstreamStatus{
		Upstream:     marketdata.UpstreamLCD,
		OK:           true,
		LatestHeight: payload.GetPath("block", "header", "height").Interface(),
	}, nil
}

// Spot markets

func (s *Service) ListSpotMarkets(ctx context.Context, limit int) (*marketdata.MarketList, error) {
	if !inRange(limit) {
		return nil, ErrInvalidLimit
	}
	payload, err := s.source.SpotMarkets(ctx)
	if err != nil {
		return nil, err
	}

	items := projectMarkets(payload.Get("markets"), limit)
	return &marketdata.MarketList{
		Source: marketdata.SourceIndexer,
		Count:  len(items),
		Items:  items,
	}, nil
}

// Order book snapshots

// GetOrderBook forwards marketID as given; blank ids are the upstream's call to reject.

func (s *Service) GetOrderBook(ctx context.Context, marketID string, depth int) (*marketdata.OrderBookSnapshot, error) {
	if !inRange(depth) {
		return nil, ErrInvalidDepth
	}
	payload, err := s.source.SpotOrderBook(ctx, marketID)
	if err != nil {
		return nil, err
	}

	book := payload.Get("orderbook")
	return &marketdata.OrderBookSnapshot{
		Source:   marketdata.SourceIndexer,
		MarketID: marketID,
		Depth:    depth,
		Bids:     projectLevels(book.Get("buys"), depth),
		Asks:     projectLevels(book.Get("sells"), depth),
		Meta: marketdata.OrderBookMeta{
			Sequence:  book.Get("sequence").Interface(),
			Timestamp: book.Get("timestamp").Interface(),
			Height:    book.Get("height").Interface(),
		},
	}, nil
}

// IsValidationError reports whether err came from argument checks rather than the upstream.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidLimit) || errors.Is(err, ErrInvalidDepth)
}

func inRange(n int) bool {
	return n >= MinCount && n <= MaxCount
}
