package domain

// PackageType distinguishes document shipments from everything else.
// The numeric values are the wire values accepted in quote requests.
type PackageType int

const (
	PackageTypeDocument    PackageType = 1
	PackageTypeNonDocument PackageType = 2
)

// IsValid reports whether the value is one of the two known package types.
func (p PackageType) IsValid() bool {
	return p == PackageTypeDocument || p == PackageTypeNonDocument
}

func (p PackageType) String() string {
	switch p {
	case PackageTypeDocument:
		return "DOCUMENT"
	case PackageTypeNonDocument:
		return "NON_DOCUMENT"
	default:
		return "UNKNOWN"
	}
}
