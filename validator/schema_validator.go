package validator

import (
	"github.com/Oudwins/zog"
)

// WatchItemShape validates watchlist mutations. Symbols cap at Yahoo's
// longest suffixed tickers.
var WatchItemShape = zog.Shape{
	"Group":  zog.String().Min(1).Max(40).Required(),
	"Symbol": zog.String().Min(1).Max(12).Required(),
}
