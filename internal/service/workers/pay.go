package workers

// Пороговые значения рейтинга для расчета выплаты
const (
	bonusRatingThreshold     = 4.5
	standardRatingThreshold  = 3.5
	reducedRatingThreshold   = 3.0
	bonusPayMultiplier       = 1.2
	reducedPayMultiplier     = 0.8
)

// ComputePay вычисляет выплату исполнителю по базовой ставке и рейтингу.
// Правило ступенчатое:
//
//	нет рейтинга      -> baseRate
//	rating >= 4.5     -> baseRate * 1.2
//	3.5 <= rating < 4.5 -> baseRate
//	3.0 <= rating < 3.5 -> baseRate * 0.8
//	rating < 3.0      -> 0
//
// Ноль означает отстранение: исполнитель не получает выплату и не
// допускается к работам, это не скидка. Правило самостоятельное и
// не вызывается из кода жизненного цикла бронирований.
func ComputePay(baseRate float64, rating *float64) float64 {
	if rating == nil {
		return baseRate
	}
	switch {
	case *rating >= bonusRatingThreshold:
		return baseRate * bonusPayMultiplier
	case *rating >= standardRatingThreshold:
		return baseRate
	case *rating >= reducedRatingThreshold:
		return baseRate * reducedPayMultiplier
	default:
		return 0
	}
}
