package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Max(lo, Min(v, hi))
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// FullScale returns the largest code of an unsigned converter with the given
// resolution, bits clamped to 1..16.
func FullScale(bits int) uint16 {
	bits = Clamp(bits, 1, 16)
	return uint16(uint32(1)<<bits - 1)
}
