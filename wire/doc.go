// Package wire converts domain identifier types to and from the fixed-width
// integer primitives used at a foreign call boundary.
//
// A rule is written once, generically, and instantiated per identifier kind:
//
//	peers := wire.MustNewtype[ident.PeerID, uint64]("PeerID")
//	p := peers.Wrap(42)    // ident.PeerID
//	raw := peers.Unwrap(p) // uint64(42)
//
// Construction refuses any domain/wire pair that is not a bijection (different
// width or signedness), so a registered rule can never truncate or
// sign-extend.
//
// Rules are collected by a Builder into an immutable Table. The table routes
// type-erased values to the rule declared for their exact Go type and never
// inspects the values themselves; a value of the wrong type fails with
// ErrTypeMismatch before any conversion runs.
//
// Domain types whose primitive space contains invalid bit patterns use
// CheckedRule instead; their Wrap reports ErrInvalidWireValue.
package wire
