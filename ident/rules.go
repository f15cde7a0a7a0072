package ident

import (
	"idwire/wire"
)

// Typed rules for callers that convert a known kind without going through a
// Table.
var (
	PeerIDs         = wire.MustNewtype[PeerID, uint64](PeerIDRule)
	Lamports        = wire.MustNewtype[Lamport, uint32](LamportRule)
	Counters        = wire.MustNewtype[Counter, int32](CounterRule)
	SubscriptionIDs = wire.MustNewtype[SubscriptionID, uint32](SubscriptionIDRule)
)
