// Package property defines the extra properties layered over a source value.
//
// A Property pairs a non-empty name with a non-nil payload. The payload is
// either a plain value, returned as is on every read, or a derivation that
// computes the value from the original source on every read:
//
//	property.MustNew("age", 50)
//	property.MustNew("crazy", func(p Person) string { return "crazy's " + p.Name })
//	property.MustNew("total", func(o *Order) (int, error) { return o.Sum() })
//	property.Expr("greeting", `"hello " + Name`)
//
// Accepted derivation shapes:
//   - func(S) V
//   - func(S) (V, error)
//   - any Deriver implementation, DeriverFunc and *Expression included
//
// A Set normalizes a list of properties into an ordered name table: a later
// definition of a name overwrites an earlier one in place.
//
// # Property files
//
// Sets can be loaded from YAML:
//
//	version: "1"
//	properties:
//	  - name: age
//	    value: 50
//	  - name: greeting
//	    expr: '"hello " + Name'
//
// Each entry carries exactly one of value or expr.
package property
