package service

import "math"

const (
	minProdYear = 2800
	maxProdYear = 3019
)

// round2 rounds half up to two decimals.
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// Rating - рейтинг корабля: 80*v*k / (3019 - год + 1), k = 0.5 для б/у
func Rating(isUsed bool, speed float64, year int) float64 {
	k := 1.0
	if isUsed {
		k = 0.5
	}
	return round2(80 * speed * k / float64(maxProdYear-year+1))
}
