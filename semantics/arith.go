package semantics

import "math"

// Checked int64 arithmetic for constant folding. Each function reports false
// if the exact result is not representable.

func addInt(m, n int64) (int64, bool) {
	r := m + n
	if (n > 0 && r < m) || (n < 0 && r > m) {
		return 0, false
	}
	return r, true
}

func subInt(m, n int64) (int64, bool) {
	r := m - n
	if (n > 0 && r > m) || (n < 0 && r < m) {
		return 0, false
	}
	return r, true
}

func mulInt(m, n int64) (int64, bool) {
	if m == 0 || n == 0 {
		return 0, true
	}
	if (m == -1 && n == math.MinInt64) || (n == -1 && m == math.MinInt64) {
		return 0, false
	}
	r := m * n
	if r/n != m {
		return 0, false
	}
	return r, true
}

func negInt(m int64) (int64, bool) {
	if m == math.MinInt64 {
		return 0, false
	}
	return -m, true
}

// powInt computes m^n for n ≥ 0 by repeated squaring.
func powInt(m, n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	result := int64(1)
	base := m
	ok := true
	for n > 0 {
		if n&1 == 1 {
			if result, ok = mulInt(result, base); !ok {
				return 0, false
			}
		}
		n >>= 1
		if n > 0 {
			if base, ok = mulInt(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}
