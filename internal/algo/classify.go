package algo

import "github.com/san-kum/algoviz/internal/step"

// Parity tags each value odd (green) or even (red), left to right.
type Parity struct{}

func NewParity() *Parity {
	return &Parity{}
}

func (a *Parity) Name() string {
	return "odd"
}

func (a *Parity) Run(input []int, tr *step.Tracer) []int {
	nums := clone(input)
	for i, v := range nums {
		c := step.ColorEven
		if IsOdd(v) {
			c = step.ColorOdd
		}
		if !tr.EmitColor(nums, i, c) {
			return nums
		}
	}
	return nums
}

// Primes tags each value prime (blue) or composite (orange), left to right.
type Primes struct{}

func NewPrimes() *Primes {
	return &Primes{}
}

func (a *Primes) Name() string {
	return "prime"
}

func (a *Primes) Run(input []int, tr *step.Tracer) []int {
	nums := clone(input)
	for i, v := range nums {
		c := step.ColorComposite
		if IsPrime(v) {
			c = step.ColorPrime
		}
		if !tr.EmitColor(nums, i, c) {
			return nums
		}
	}
	return nums
}

// IsOdd holds for negative odd values too.
func IsOdd(v int) bool {
	return v%2 != 0
}

// IsPrime is trial division up to floor(sqrt(v)). Values below 2 are never
// prime.
func IsPrime(v int) bool {
	if v < 2 {
		return false
	}
	for d := 2; d <= v/d; d++ {
		if v%d == 0 {
			return false
		}
	}
	return true
}

func clone(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}
