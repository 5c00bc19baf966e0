package model

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	MaxDecimalScale = 28

	decimalSignMask   = 0x80000000
	decimalScaleMask  = 0x00FF0000
	decimalScaleShift = 16
)

// Decimal is a 128-bit exact decimal: a 96-bit unsigned coefficient split
// into three 32-bit words, plus a flags word holding the scale (bits 16-23)
// and the sign (bit 31). The value is (-1)^sign * coefficient / 10^scale.
type Decimal struct {
	Lo, Mid, Hi uint32
	Flags       uint32
}

// NewDecimal builds a decimal from an unsigned coefficient and a scale
func NewDecimal(coef *big.Int, scale uint8, neg bool) (Decimal, error) {
	if coef.Sign() < 0 {
		return Decimal{}, fmt.Errorf("%w: negative coefficient", ErrInvalidDecimal)
	}
	if coef.BitLen() > 96 {
		return Decimal{}, fmt.Errorf("%w: coefficient exceeds 96 bits", ErrInvalidDecimal)
	}
	if scale > MaxDecimalScale {
		return Decimal{}, fmt.Errorf("%w: scale %d", ErrInvalidDecimal, scale)
	}

	var words [3]uint32
	c := new(big.Int).Set(coef)
	mask := big.NewInt(0xFFFFFFFF)
	for i := range words {
		words[i] = uint32(new(big.Int).And(c, mask).Uint64())
		c.Rsh(c, 32)
	}

	d := Decimal{Lo: words[0], Mid: words[1], Hi: words[2], Flags: uint32(scale) << decimalScaleShift}
	if neg {
		d.Flags |= decimalSignMask
	}
	return d, nil
}

// FromDecimal converts an arbitrary precision decimal, rounding it to
// MaxDecimalScale fractional digits when needed.
func FromDecimal(v decimal.Decimal) (Decimal, error) {
	if -v.Exponent() > MaxDecimalScale {
		v = v.Round(MaxDecimalScale)
	}
	coef := v.Coefficient()
	exp := v.Exponent()
	if exp > 0 {
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
		exp = 0
	}
	neg := coef.Sign() < 0
	return NewDecimal(coef.Abs(coef), uint8(-exp), neg)
}

func ParseDecimal(s string) (Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %v", ErrInvalidDecimal, err)
	}
	return FromDecimal(v)
}

// Valid reports whether the flags word is well formed
func (d Decimal) Valid() error {
	if d.Flags&^(decimalSignMask|decimalScaleMask) != 0 {
		return fmt.Errorf("%w: reserved flag bits set (%#08x)", ErrInvalidDecimal, d.Flags)
	}
	if d.Scale() > MaxDecimalScale {
		return fmt.Errorf("%w: scale %d", ErrInvalidDecimal, d.Scale())
	}
	return nil
}

func (d Decimal) Scale() uint8 {
	return uint8((d.Flags & decimalScaleMask) >> decimalScaleShift)
}

func (d Decimal) Neg() bool {
	return d.Flags&decimalSignMask != 0
}

// Coefficient returns the unsigned 96-bit coefficient
func (d Decimal) Coefficient() *big.Int {
	c := new(big.Int).SetUint64(uint64(d.Hi))
	c.Lsh(c, 32).Or(c, new(big.Int).SetUint64(uint64(d.Mid)))
	c.Lsh(c, 32).Or(c, new(big.Int).SetUint64(uint64(d.Lo)))
	return c
}

func (d Decimal) Decimal() decimal.Decimal {
	c := d.Coefficient()
	if d.Neg() {
		c.Neg(c)
	}
	return decimal.NewFromBigInt(c, -int32(d.Scale()))
}

func (d Decimal) String() string {
	return d.Decimal().StringFixed(int32(d.Scale()))
}
