package domain

import "math"

// Stripe передает денежные суммы в минимальных единицах валюты (центах),
// фронтенд работает в основных единицах. Конвертация происходит строго
// на границе и только в этих двух функциях.

// ToMinorUnits преобразует сумму из основных единиц в центы
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToMajorUnits преобразует сумму из центов в основные единицы
func ToMajorUnits(amount int64) float64 {
	return float64(amount) / 100
}
