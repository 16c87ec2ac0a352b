package parser

import "math"

// Checked int64 arithmetic. Each helper reports false instead of wrapping.

func add(l, r int64) (int64, bool) {
	s := l + r
	if (s^l)&(s^r) < 0 {
		return 0, false
	}
	return s, true
}

func sub(l, r int64) (int64, bool) {
	d := l - r
	if (l^r)&(d^l) < 0 {
		return 0, false
	}
	return d, true
}

func mul(l, r int64) (int64, bool) {
	if l == 0 || r == 0 {
		return 0, true
	}
	if (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) {
		return 0, false
	}
	p := l * r
	if p/r != l {
		return 0, false
	}
	return p, true
}

// pow raises base to a non-negative exponent by repeated squaring.
func pow(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = mul(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mul(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// parseNumber converts a run of decimal digits without allocating.
func parseNumber(digits []byte) (int64, bool) {
	var n int64
	for _, ch := range digits {
		d := int64(ch - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}
