package convert

import (
	"strconv"
	"time"
)

// Converters for the scalar types the config layer reads from the
// environment. Each is a stateless shared instance, registered at init so
// they are discoverable through For like any other converter.

var (
	stringInstance   = &stringConverter{}
	intInstance      = &intConverter{}
	boolInstance     = &boolConverter{}
	durationInstance = &durationConverter{}
)

func init() {
	Register[string](stringInstance)
	Register[int](intInstance)
	Register[bool](boolInstance)
	Register[time.Duration](durationInstance)
}

// String returns the shared identity converter for strings.
func String() Converter[string] { return stringInstance }

// Int returns the shared base-10 integer converter.
func Int() Converter[int] { return intInstance }

// Bool returns the shared boolean converter (strconv.ParseBool syntax).
func Bool() Converter[bool] { return boolInstance }

// Duration returns the shared time.Duration converter ("250ms", "2h45m").
func Duration() Converter[time.Duration] { return durationInstance }

type stringConverter struct{}

func (*stringConverter) FromString(s string) (string, error) { return s, nil }
func (*stringConverter) ToString(v string) string            { return v }

type intConverter struct{}

func (*intConverter) FromString(s string) (int, error) { return strconv.Atoi(s) }
func (*intConverter) ToString(v int) string            { return strconv.Itoa(v) }

type boolConverter struct{}

func (*boolConverter) FromString(s string) (bool, error) { return strconv.ParseBool(s) }
func (*boolConverter) ToString(v bool) string            { return strconv.FormatBool(v) }

type durationConverter struct{}

func (*durationConverter) FromString(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
func (*durationConverter) ToString(v time.Duration) string { return v.String() }
