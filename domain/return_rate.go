package domain

import (
	"encoding/json"
	"fmt"
)

type ReturnKind string

const (
	ReturnFinite   ReturnKind = "finite"
	ReturnInfinite ReturnKind = "infinite"
)

// ReturnRate is a percentage return that can also be "infinite", which is
// what a deal reports once every invested dollar has been pulled back out.
// Infinite rates carry no Percent and encode as {"kind":"infinite"}.
type ReturnRate struct {
	Kind    ReturnKind
	Percent float64
}

func FiniteReturn(percent float64) ReturnRate {
	return ReturnRate{Kind: ReturnFinite, Percent: percent}
}

func InfiniteReturn() ReturnRate {
	return ReturnRate{Kind: ReturnInfinite}
}

func (r ReturnRate) IsInfinite() bool {
	return r.Kind == ReturnInfinite
}

// Value returns the percentage and false when the rate is infinite.
func (r ReturnRate) Value() (float64, bool) {
	if r.IsInfinite() {
		return 0, false
	}
	return r.Percent, true
}

func (r ReturnRate) String() string {
	if r.IsInfinite() {
		return "infinite"
	}
	return fmt.Sprintf("%.2f%%", r.Percent)
}

type returnRateJSON struct {
	Kind    ReturnKind `json:"kind"`
	Percent *float64   `json:"percent,omitempty"`
}

func (r ReturnRate) MarshalJSON() ([]byte, error) {
	if r.IsInfinite() {
		return json.Marshal(returnRateJSON{Kind: ReturnInfinite})
	}
	p := r.Percent
	return json.Marshal(returnRateJSON{Kind: ReturnFinite, Percent: &p})
}

func (r *ReturnRate) UnmarshalJSON(data []byte) error {
	var raw returnRateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case ReturnInfinite:
		*r = InfiniteReturn()
	case ReturnFinite, "":
		if raw.Percent == nil {
			return fmt.Errorf("finite return rate without percent")
		}
		*r = FiniteReturn(*raw.Percent)
	default:
		return fmt.Errorf("unknown return kind %q", raw.Kind)
	}
	return nil
}
