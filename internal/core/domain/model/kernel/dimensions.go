package kernel

import (
	"errors"

	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// DimensionMin and DimensionMax bound every package side, in centimetres.
	DimensionMin = decimal.NewFromInt(1)
	DimensionMax = decimal.NewFromInt(120)

	// WeightMax bounds the actual (dead) weight, in kilograms. Weight must be > 0.
	WeightMax = decimal.NewFromInt(300)
)

var (
	ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")
	ErrWeightIsNotConstructed     = errs.NewValueIsRequiredError("weight must be created via NewWeight")
)

// Dimensions is a validated length × breadth × height box in centimetres.
type Dimensions struct { //nolint:recvcheck //using for validation
	length  decimal.Decimal
	breadth decimal.Decimal
	height  decimal.Decimal
	guard   guard.ConstructorGuard
}

// NewDimensions checks every side against [DimensionMin, DimensionMax] and
// reports all failing sides at once.
func NewDimensions(length, breadth, height decimal.Decimal) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setSide(&d.length, "length", length),
		d.setSide(&d.breadth, "breadth", breadth),
		d.setSide(&d.height, "height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

func (d Dimensions) Length() decimal.Decimal  { return d.length }
func (d Dimensions) Breadth() decimal.Decimal { return d.breadth }
func (d Dimensions) Height() decimal.Decimal  { return d.height }

// Volume returns length × breadth × height in cubic centimetres.
func (d Dimensions) Volume() decimal.Decimal {
	return d.length.Mul(d.breadth).Mul(d.height)
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d *Dimensions) setSide(side *decimal.Decimal, name string, value decimal.Decimal) error {
	if value.LessThan(DimensionMin) || value.GreaterThan(DimensionMax) {
		return errs.NewValueIsOutOfRangeError(name, value, DimensionMin, DimensionMax)
	}
	*side = value
	return nil
}

// Weight is a validated actual package weight in kilograms.
type Weight struct { //nolint:recvcheck //using for validation
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

func NewWeight(kg decimal.Decimal) (Weight, error) {
	if !kg.IsPositive() || kg.GreaterThan(WeightMax) {
		return Weight{}, errs.NewValueIsOutOfRangeError("actualWeight", kg, "0 (exclusive)", WeightMax)
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
