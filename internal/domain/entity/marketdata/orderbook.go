package marketdata

// OrderBookLevel holds one price level of a snapshot.
// Price and Quantity are kept as text so no precision is lost on the way through.
type OrderBookLevel struct {
	Price     string `json:"price"`
	Quantity  string `json:"quantity"`
	Timestamp any    `json:"timestamp"`
}

// OrderBookMeta carries the indexer bookkeeping fields of a snapshot as-is.
type OrderBookMeta struct {
	Sequence  any `json:"sequence"`
	Timestamp any `json:"timestamp"`
	Height    any `json:"height"`
}

// OrderBookSnapshot is the normalized view of an indexer spot orderbook.
// Bids and Asks keep the upstream ordering, truncated to Depth.
type OrderBookSnapshot struct {
	Source   string           `json:"source"`
	MarketID string           `json:"market_id"`
	Depth    int              `json:"depth"`
	Bids     []OrderBookLevel `json:"bids"`
	Asks     []OrderBookLevel `json:"asks"`
	Meta     OrderBookMeta    `json:"meta"`
}
