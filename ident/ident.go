// Package ident holds the identifier types the collaborative-editing engine
// exposes in its public signatures, and the wire rules that carry them across
// the foreign call boundary.
//
// Every type is a distinct defined type: a Lamport and a SubscriptionID share
// a uint32 representation but are not interchangeable without an explicit
// conversion.
package ident

import (
	"idwire/wire"
)

// PeerID identifies a participant (replica) of a document.
type PeerID uint64

// Lamport is a logical timestamp used to order operations causally.
type Lamport uint32

// Counter is a peer's operation sequence number. It is signed; negative values
// must survive the boundary unchanged.
type Counter int32

// SubscriptionID is the handle returned when an event subscription is
// registered, used later to cancel it.
type SubscriptionID uint32

// Rule names as they appear in manifests and generated code.
const (
	PeerIDRule         = "PeerID"
	LamportRule        = "Lamport"
	CounterRule        = "Counter"
	SubscriptionIDRule = "SubscriptionID"
)

// Register declares one rule per identifier kind on b.
func Register(b *wire.Builder) *wire.Builder {
	return b.
		Add(wire.Newtype[PeerID, uint64](PeerIDRule)).
		Add(wire.Newtype[Lamport, uint32](LamportRule)).
		Add(wire.Newtype[Counter, int32](CounterRule)).
		Add(wire.Newtype[SubscriptionID, uint32](SubscriptionIDRule))
}

// NewTable builds the conversion table for the engine's identifier kinds.
func NewTable() (*wire.Table, error) {
	return Register(wire.NewBuilder()).Build()
}
