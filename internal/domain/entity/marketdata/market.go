package marketdata

const (
	// SourceIndexer tags every payload derived from the exchange indexer.
	SourceIndexer = "injective_indexer"
	// UpstreamLCD names the ledger query endpoint in health reports.
	UpstreamLCD = "injective_lcd"
)

// MarketSummary is the trimmed view of an indexer spot market.
// Values are passed through untouched; absent upstream keys stay nil and encode as null.
type MarketSummary struct {
	MarketID            any `json:"market_id"`
	Ticker              any `json:"ticker"`
	Status              any `json:"status"`
	BaseDenom           any `json:"base_denom"`
	QuoteDenom          any `json:"quote_denom"`
	MinPriceTickSize    any `json:"min_price_tick_size"`
	MinQuantityTickSize any `json:"min_quantity_tick_size"`
}

// MarketList is the envelope returned by the spot markets listing.
// Count always equals len(Items).
type MarketList struct {
	Source string          `json:"source"`
	Count  int             `json:"count"`
	Items  []MarketSummary `json:"items"`
}

// UpstreamStatus reports reachability of the ledger endpoint.
type UpstreamStatus struct {
	Upstream     string `json:"upstream"`
	OK           bool   `json:"ok"`
	LatestHeight any    `json:"latest_height"`
}
