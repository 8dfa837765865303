// Package view exposes a source value and extra properties as a read-only
// map.
//
// Keys are the source's property names followed by the extra names the
// source does not expose. A key present in both resolves to the extra.
// Values are computed on every read, so a view over a pointer follows later
// changes of the pointee. Put and Delete are accepted and ignored.
//
//	m, err := view.Map(&Person{Name: "moe"}, property.MustNew("age", 50))
//	m.Get("name") // "moe"
//	m.Get("age")  // 50
package view
