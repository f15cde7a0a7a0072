// Package decl provides the declaration file that describes, per identifier
// kind, which domain type crosses the boundary as which wire primitive.
//
// The declaration is what a foreign-language binding generator consumes. It
// can be produced from a registered wire.Table (FromTable), checked against
// the engine's Go package (Validate) and compared with the table for drift
// (Compare).
//
// # Schema Overview
//
//	version: "1"
//	package: idwire/ident
//	# shorthand: type -> wire primitive
//	kinds:
//	  PeerID: uint64
//	  Lamport: uint32
//	# full rules with all options
//	rules:
//	  - type: Counter
//	    wire: int32
//	    doc: per-peer operation counter
//	  - type: idwire/examples/engine.ContainerType
//	    name: ContainerType
//	    wire: uint8
//	    checked: true
//	  - type: SubscriptionID
//	    wire: uint32
//	    disabled: true
//
// The same structure can be written in HCL (files ending in .hcl):
//
//	version = "1"
//	package = "idwire/ident"
//	kinds = { PeerID = "uint64" }
//
//	rule "Counter" {
//	  wire = "int32"
//	}
//
// Types are resolved relative to package unless they carry their own
// import path. Checked rules are required for types implementing
// IsValid() bool and refused for every other type.
package decl
