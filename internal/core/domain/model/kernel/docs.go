// Package kernel provides shared value objects used across the order
// fulfillment domain.
//
// The package includes:
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - Money: fixed-point monetary amounts in whole currency units
//   - GeoPoint: validated WGS84 delivery destination coordinates
//
// All kernel types are immutable value objects. Types whose zero value would
// be meaningless embed a constructor guard so that improperly constructed
// instances are rejected during validation.
package kernel
