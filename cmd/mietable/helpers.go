package main

import "strconv"

const (
	defaultIndexRe = 1.5
	csvColumns     = 5
	valuePrecision = 9
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', valuePrecision, 64)
}
