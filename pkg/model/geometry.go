package model

import "math"

// WidthBudget is the maximum combined width of a row, in percent.
const WidthBudget = 100.0

// SizeToPercent maps a size category to its share of the row. Unknown or
// empty sizes fall back to the sm share.
func SizeToPercent(size Size) float64 {
	switch size {
	case SizeXL:
		return 100
	case SizeLarge:
		return 66.66
	case SizeMedium:
		return 50
	default:
		return 33.33
	}
}

// RowWidth sums the shares of every field in the row, rounded to two
// decimals so float drift never produces a spurious overflow.
func RowWidth(row Row) float64 {
	var total float64
	for _, field := range row {
		total += SizeToPercent(field.Size)
	}
	return round2(total)
}

// FitsBudget reports whether a width stays within WidthBudget once rounded.
func FitsBudget(width float64) bool {
	return round2(width) <= WidthBudget
}

// RowWidthAfter is the width of a row currently width wide once a field of
// the given size is added to it.
func RowWidthAfter(width float64, size Size) float64 {
	return round2(width + SizeToPercent(size))
}

// CanAppend reports whether a field of the given size fits next to a row that
// is currently width wide.
func CanAppend(width float64, size Size) bool {
	return RowWidthAfter(width, size) <= WidthBudget
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
