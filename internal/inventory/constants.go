package inventory

// Log messages
const (
	LogMsgItemAdded          = "Item added to bag"
	LogMsgItemRemoved        = "Item removed from bag"
	LogMsgRemoveMissing      = "Remove failed, no matching stack"
	LogMsgRemoveInsufficient = "Remove failed, insufficient quantity"
	LogMsgBagSorted          = "Bag sorted"
	LogMsgGoldAdded          = "Gold added"
	LogMsgGoldRemoved        = "Gold removed"
	LogMsgGoldInsufficient   = "Gold removal rejected, insufficient funds"
	LogMsgAddGoldIgnored     = "AddGold ignored non-positive amount"
	LogMsgPublishFailed      = "Failed to publish event"
)
