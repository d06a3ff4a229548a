// Package types provides request and response types for the Slotbook API.
//
// All types in this package are designed to be serialized to/from JSON with
// snake_case field names as expected by the Slotbook API. Response types are
// plain snapshots: the SDK keeps no reference to them once returned.
//
// # Optional Fields
//
// Optional request fields are pointers. Helper functions are provided to
// create pointers to values:
//
//	params := &types.ListVenuesParams{
//		City:       types.String("Berlin"),
//		IsFeatured: types.Bool(true),
//	}
//
// # Enums
//
// Enums are string types with constants for known values. Unknown values
// returned by the API are preserved and can be compared as strings.
package types
