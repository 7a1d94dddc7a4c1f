package repository

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToBasisPoints converts a plain percentage (6.5 means 6.5%) into integer
// basis points, rounding half away from zero.
func ToBasisPoints(percent float64) int64 {
	return decimal.NewFromFloat(percent).Mul(hundred).Round(0).IntPart()
}

// FromBasisPoints converts basis points back into a plain percentage.
func FromBasisPoints(bp int64) float64 {
	f, _ := decimal.New(bp, -2).Float64()
	return f
}

func toBasisPointsPtr(percent *float64) *int64 {
	if percent == nil {
		return nil
	}
	bp := ToBasisPoints(*percent)
	return &bp
}

func fromBasisPointsPtr(bp *int64) *float64 {
	if bp == nil {
		return nil
	}
	p := FromBasisPoints(*bp)
	return &p
}
