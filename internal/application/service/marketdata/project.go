package marketdata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/shopspring/decimal"

	marketdata "ninja-api-forge/internal/domain/entity/marketdata"
)

// projectMarkets maps the first limit entries of the indexer markets array.
// A missing or non-array node yields an empty, non-nil slice.
func projectMarkets(markets *simplejson.Json, limit int) []marketdata.MarketSummary {
	n := min(len(markets.MustArray()), limit)
	out := make([]marketdata.MarketSummary, 0, n)
	for i := 0; i < n; i++ {
		m := markets.GetIndex(i)
		out = append(out, marketdata.MarketSummary{
			MarketID:            m.Get("marketId").Interface(),
			Ticker:              m.Get("ticker").Interface(),
			Status:              m.Get("marketStatus").Interface(),
			BaseDenom:           m.Get("baseDenom").Interface(),
			QuoteDenom:          m.Get("quoteDenom").Interface(),
			MinPriceTickSize:    m.Get("minPriceTickSize").Interface(),
			MinQuantityTickSize: m.Get("minQuantityTickSize").Interface(),
		})
	}
	return out
}

// projectLevels maps the first depth entries of one orderbook side.
func projectLevels(levels *simplejson.Json, depth int) []marketdata.OrderBookLevel {
	n := min(len(levels.MustArray()), depth)
	out := make([]marketdata.OrderBookLevel, 0, n)
	for i := 0; i < n; i++ {
		lvl := levels.GetIndex(i)
		out = append(out, marketdata.OrderBookLevel{
			Price:     levelText(lvl.Get("price").Interface()),
			Quantity:  levelText(lvl.Get("quantity").Interface()),
			Timestamp: lvl.Get("timestamp").Interface(),
		})
	}
	return out
}

// levelText renders a loosely typed JSON value as text.
// Numbers keep their upstream text (1.0 stays "1.0"); only exponent forms
// are expanded through decimal, so 1e3 becomes "1000".
func levelText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		text := t.String()
		if !strings.ContainsAny(text, "eE") {
			return text
		}
		d, err := decimal.NewFromString(text)
		if err != nil {
			return text
		}
		return d.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	}
}
