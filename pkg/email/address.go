// Package email provides an immutable email address value type with a
// parse/format contract backed by net/mail. Parsing accepts anything
// mail.ParseAddress accepts ("user@example.com", "User <user@example.com>");
// formatting always renders the canonical RFC 5322 form, so a formatted
// address re-parses to an identical value.
package email

import (
	"database/sql/driver"
	"fmt"
	"net/mail"
	"strings"
)

// Address is a parsed email address: an addr-spec plus an optional display
// name. The zero Address is the absent address; Parse never returns it
// together with a nil error.
type Address struct {
	name string
	addr string
}

// Parse converts a textual email address into an Address.
//
// Blank or whitespace-only input fails with a *ParseError carrying the
// original input verbatim. Structurally invalid input fails with the same
// error shape, with the parser's rejection preserved as the cause.
func Parse(s string) (Address, error) {
	if strings.TrimSpace(s) == "" {
		return Address{}, &ParseError{Input: s}
	}
	parsed, err := mail.ParseAddress(s)
	if err != nil {
		return Address{}, &ParseError{Input: s, cause: err}
	}
	return Address{name: parsed.Name, addr: parsed.Address}, nil
}

// MustParse is Parse for static inputs; it panics on error.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseOptional propagates absence: a nil input yields a nil Address and no
// error. Present input follows the Parse contract.
func ParseOptional(s *string) (*Address, error) {
	if s == nil {
		return nil, nil
	}
	a, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FormatOptional propagates absence: a nil Address yields nil.
func FormatOptional(a *Address) *string {
	if a == nil {
		return nil
	}
	s := a.String()
	return &s
}

// String renders the canonical RFC 5322 form of the address, quoting the
// display name where required. The zero Address renders as "".
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	return (&mail.Address{Name: a.name, Address: a.addr}).String()
}

// Addr returns the bare addr-spec ("user@example.com").
func (a Address) Addr() string { return a.addr }

// Name returns the display name, or "" when the address has none.
func (a Address) Name() string { return a.name }

// Local returns the part of the addr-spec before the final "@".
func (a Address) Local() string {
	if at := strings.LastIndex(a.addr, "@"); at >= 0 {
		return a.addr[:at]
	}
	return a.addr
}

// Domain returns the part of the addr-spec after the final "@", lowercased.
// Domains are case-insensitive; local parts are not.
func (a Address) Domain() string {
	if at := strings.LastIndex(a.addr, "@"); at >= 0 {
		return strings.ToLower(a.addr[at+1:])
	}
	return ""
}

// IsZero reports whether the address is absent.
func (a Address) IsZero() bool { return a.name == "" && a.addr == "" }

// Equal reports whether two addresses have the same display name and
// addr-spec.
func (a Address) Equal(other Address) bool { return a == other }

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer. The zero Address stores as NULL.
func (a Address) Value() (driver.Value, error) {
	if a.IsZero() {
		return nil, nil
	}
	return a.String(), nil
}

// Scan implements sql.Scanner. NULL scans to the zero Address.
func (a *Address) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Address{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("scan email address: unsupported type %T", src)
	}
}
