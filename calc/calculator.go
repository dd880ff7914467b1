package calc

import "errors"

// ErrDivideByZero 除数为零。
var ErrDivideByZero = errors.New("cannot divide by zero")

// Calculator 基础四则运算。
type Calculator struct{}

func (Calculator) Add(a, b float64) float64 {
	return a + b
}

func (Calculator) Subtract(a, b float64) float64 {
	return a - b
}

func (Calculator) Multiply(a, b float64) float64 {
	return a * b
}

// Divide 除数为零时返回 ErrDivideByZero。
func (Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
