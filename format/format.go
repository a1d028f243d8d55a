package format

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DateLayout     = "Jan 2, 2006"
	DateTimeLayout = "Jan 2, 2006, 03:04 PM"
)

var printer = message.NewPrinter(language.AmericanEnglish)

var sensorUnits = map[string]string{
	"ph":                "",
	"ec":                "mS/cm",
	"temperature":       "°C",
	"humidity":          "%",
	"co2":               "ppm",
	"light":             "lux",
	"water_level":       "cm",
	"dissolved_oxygen":  "mg/L",
	"water_temperature": "°C",
}

// FormatDate renders t as "Jan 2, 2006" in t's location. The zero time renders as "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateTimeLayout)
}

// FormatNumber renders n with a fixed number of decimals and no grouping.
func FormatNumber(n float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(n, 'f', decimals, 64)
}

// FormatCurrency renders amount in US dollars: "$1,234.56", "-$5.00".
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-" + printer.Sprintf("$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// SensorUnit returns the display unit for a sensor type, or "" when unknown.
func SensorUnit(sensorType string) string {
	return sensorUnits[sensorType]
}

// SensorValue joins a reading with its unit, e.g. "21.5 °C" or "6.10" for pH.
func SensorValue(sensorType string, value float64) string {
	unit := SensorUnit(sensorType)
	if unit == "" {
		return FormatNumber(value, 2)
	}
	if unit == "%" {
		return FormatNumber(value, 1) + unit
	}
	return FormatNumber(value, 1) + " " + unit
}
