package accessor

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind tells how an accessor reads its value from a source.
type Kind int

const (
	KindField  Kind = iota // exported struct field
	KindGetter             // GetX() or IsX() method
	KindMethod             // other zero-argument method
)
