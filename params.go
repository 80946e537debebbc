package bloomer

import "math"

// ln2Squared is ln(2)^2, the denominator of the optimal sizing formula.
const ln2Squared = math.Ln2 * math.Ln2

// OptimalParams derives the bit array size m and hash probe count k for a
// filter holding n items at target false positive rate p:
//
//	m = ceil(-n * ln(p) / ln(2)²), minimum 1
//	k = round((m / n) * ln(2)), minimum 1
//
// The caller is responsible for validating n > 0 and 0 < p < 1; Build does
// this before calling.
func OptimalParams(n uint64, p float64) (m uint64, k uint32) {
	mf := math.Ceil(-(float64(n) * math.Log(p)) / ln2Squared)
	m = uint64(mf)
	if m == 0 {
		m = 1
	}

	kf := math.Round(float64(m) / float64(n) * math.Ln2)
	k = uint32(kf)
	if k == 0 {
		k = 1
	}
	return m, k
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter
// with m bits and k probes after n items have been added.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m uint64, k uint32, n uint64) float64 {
	if m == 0 || n == 0 {
		return 0
	}
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(n)/float64(m)), kf)
}
