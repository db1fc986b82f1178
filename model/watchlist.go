package model

// WatchGroup is one named bucket of preset tickers.
type WatchGroup struct {
	Name    string   `json:"name" yaml:"name" bson:"_id"`
	Symbols []string `json:"symbols" yaml:"symbols" bson:"symbols"`
}

// WatchGroupQuotes is a group expanded with live quotes for rendering.
type WatchGroupQuotes struct {
	Name   string  `json:"name"`
	Quotes []Quote `json:"quotes"`
}

// WatchItemRequest is the payload for adding or removing a watchlist symbol.
type WatchItemRequest struct {
	Group  string `json:"group"`
	Symbol string `json:"symbol"`
}
