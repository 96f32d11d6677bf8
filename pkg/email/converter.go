package email

import (
	"mailcheck/pkg/convert"
)

// addressConverter adapts the Address parse/format contract to the generic
// converter interface. It is stateless; the package holds one shared
// instance.
type addressConverter struct{}

var converterInstance = &addressConverter{}

func init() {
	convert.Register[Address](converterInstance)
}

// AddressConverter returns the shared Address converter. Repeated calls
// return the same instance; it is also discoverable through
// convert.For[Address].
func AddressConverter() convert.Converter[Address] {
	return converterInstance
}

func (*addressConverter) FromString(s string) (Address, error) {
	return Parse(s)
}

func (*addressConverter) ToString(a Address) string {
	return a.String()
}
