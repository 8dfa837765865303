package options

// SurfaceEnum selects which parts of a source type are exposed as properties.
type SurfaceEnum int

const (
	SurfaceFields   SurfaceEnum = 1 << iota // exported struct fields, promoted fields included
	SurfaceGetters                          // GetX() and IsX() bool methods
	SurfaceMethods                          // any other exported zero-argument method returning a value
	SurfaceJSONTags                         // `json` tags rename fields, "-" hides them

	SurfaceAll     SurfaceEnum = (1 << iota) - 1 // all surfaces combined
	SurfaceNone    SurfaceEnum = 0               // nothing but extras is exposed
	SurfaceDefault             = SurfaceFields | SurfaceGetters | SurfaceJSONTags
)

// Has reports whether every flag of other is set in s.
func (s SurfaceEnum) Has(other SurfaceEnum) bool {
	return s&other == other
}
