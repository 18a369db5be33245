package ain

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// ainJSON is the wire shape. The expected field is optional on input
// and defaults to the midpoint.
type ainJSON struct {
	Lower    float64  `json:"lower"`
	Upper    float64  `json:"upper"`
	Expected *float64 `json:"expected,omitempty"`
}

// MarshalJSON encodes the three defining fields as an object.
func (a AIN) MarshalJSON() ([]byte, error) {
	e := a.expected
	return sonic.Marshal(ainJSON{Lower: a.lower, Upper: a.upper, Expected: &e})
}

// UnmarshalJSON decodes an object and validates it like New. A missing
// expected field picks the midpoint.
func (a *AIN) UnmarshalJSON(data []byte) error {
	var w ainJSON
	if err := sonic.Unmarshal(data, &w); err != nil {
		return err
	}
	var (
		v   AIN
		err error
	)
	if w.Expected == nil {
		v, err = NewMidpoint(w.Lower, w.Upper)
	} else {
		v, err = New(w.Lower, w.Upper, *w.Expected)
	}
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Slice returns [lower, upper, expected].
func (a AIN) Slice() [3]float64 {
	return [3]float64{a.lower, a.upper, a.expected}
}

// FromSlice builds an AIN from [lower, upper] or
// [lower, upper, expected].
func FromSlice(vals []float64) (AIN, error) {
	switch len(vals) {
	case 2:
		return NewMidpoint(vals[0], vals[1])
	case 3:
		return New(vals[0], vals[1], vals[2])
	default:
		return AIN{}, fmt.Errorf("%w: need 2 or 3 values, got %d", ErrValidation, len(vals))
	}
}
