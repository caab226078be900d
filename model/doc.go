// Package model defines stable boundary types for API layers.
//
// Address identity (key byte, UUIDs and bech32 text) is unaffected by any
// projection. These structs are the only types intended for direct JSON/YAML
// serialization by consumers.
package model
