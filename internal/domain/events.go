package domain

import (
	"time"

	"cosmossdk.io/math"
)

// Event bus topics published by the bridge.
const (
	// TopicTransaction fires whenever a queue entry is created or changes status.
	TopicTransaction = "bridge:transaction"

	// TopicSync fires after a balance reconciliation with the resolved balance.
	TopicSync = "bridge:sync"
)

// SyncEvent is the payload published on TopicSync.
type SyncEvent struct {
	Address   string
	Balance   math.LegacyDec
	Timestamp time.Time
}
