package services

import (
	"math"

	"github.com/automatamexico/Restaurante/internal/models"
)

// Round2 rounds an amount to 2 decimal places (currency precision).
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// OrderTotal sums quantity times captured unit price over the given lines,
// rounded to currency precision. Pure; lines with non-positive quantity are
// rejected at entry and never reach this function.
func OrderTotal(lines []models.OrderLine) float64 {
	var total float64
	for _, line := range lines {
		total += float64(line.Quantity) * line.Price
	}
	return Round2(total)
}

// Change returns the change owed on a cash payment.
func Change(tendered, amount float64) float64 {
	return Round2(math.Max(0, tendered-amount))
}
