package guild

// Log messages
const (
	LogMsgSellCalled      = "Sell called"
	LogMsgItemSold        = "Item sold to guild"
	LogMsgSellNotInBag    = "Sell rejected, item not in bag"
	LogMsgSellUnknownName = "Sell rejected, unknown recipe name"
	LogMsgPublishFailed   = "Failed to publish event"
)
