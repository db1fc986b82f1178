package customerrors

import "errors"

var (
	ErrNoData             = errors.New("no price data returned")
	ErrTickerNotFound     = errors.New("ticker not found")
	ErrWatchGroupNotFound = errors.New("watchlist group not found")
)
