// Package extend layers extra named properties over an existing value.
//
// An extended value behaves like its source: every property the source
// exposes can be read by name, and every extra property is readable too.
// Extras take priority over source properties of the same name, which lets
// a derivation decorate the source's own value:
//
//	moe, err := extend.Extend(&Person{Name: "moe"},
//	    property.MustNew("age", 50),
//	    property.MustNew("name", func(p *Person) string { return "super " + p.Name }),
//	)
//
//	moe.Get("name") // "super moe"
//	moe.Get("age")  // 50
//
// Extended values are frozen. Set accepts any write and ignores it, the
// source is never modified, and the extras cannot change. Equal and Hash
// delegate to the source, so an extended value is indistinguishable from its
// source in comparisons.
//
// # Source surface
//
// What a source exposes is chosen with options.SurfaceEnum. The default
// surface is made of exported struct fields (renamed by json tags) and
// GetX()/IsX() methods, named in lower camel case: field Name and method
// GetName both expose "name".
//
// # Synthesized type
//
// Each extended value also has a synthesized struct type holding the merged
// properties as typed fields (see Extended.Type and Extended.Struct). The
// type depends on the source type and the set of extra names only, so
// extensions with the same names share it and different names never do.
package extend
