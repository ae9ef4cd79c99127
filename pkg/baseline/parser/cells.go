// Package parser reads and converts cell values from xlsx workbooks.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ValueType names the semantic type a cell value is converted to.
type ValueType string

const (
	// TypeCurrency is a monetary amount rounded to cents.
	TypeCurrency ValueType = "currency"
	// TypeNumber is a plain decimal number.
	TypeNumber ValueType = "number"
	// TypePercentage is a decimal fraction (4.5% -> 0.045).
	TypePercentage ValueType = "percentage"
	// TypeDate is an ISO-8601 calendar date (YYYY-MM-DD).
	TypeDate ValueType = "date"
	// TypeBoolean is true or false.
	TypeBoolean ValueType = "boolean"
)

// ParseValueType validates a type name from a mapping file.
func ParseValueType(s string) (ValueType, error) {
	switch t := ValueType(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeCurrency, TypeNumber, TypePercentage, TypeDate, TypeBoolean:
		return t, nil
	default:
		return "", fmt.Errorf("unknown value type %q (must be currency, number, percentage, date, or boolean)", s)
	}
}

// isoDate is the output layout for dates.
const isoDate = "2006-01-02"

// textDateLayouts are accepted when a date cell holds text instead of a serial.
var textDateLayouts = []string{
	isoDate,
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ReadCell returns the cached value of a cell without number formatting.
// Formula cells yield their last computed result; formulas are never evaluated.
func ReadCell(f *excelize.File, sheetName, axis string) (string, error) {
	v, err := f.GetCellValue(sheetName, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// ConvertValue converts a raw cell string to the semantic type t.
// An empty string converts to nil.
func ConvertValue(raw string, t ValueType, date1904 bool) (any, error) {
	if raw == "" {
		return nil, nil
	}

	switch t {
	case TypeCurrency:
		n, err := parseNumber(raw)
		if err != nil {
			return nil, err
		}
		return math.Round(n*100) / 100, nil
	case TypeNumber:
		return parseNumber(raw)
	case TypePercentage:
		if strings.HasSuffix(raw, "%") {
			n, err := parseNumber(strings.TrimSuffix(raw, "%"))
			if err != nil {
				return nil, err
			}
			return n / 100, nil
		}
		return parseNumber(raw)
	case TypeDate:
		return parseDate(raw, date1904)
	case TypeBoolean:
		return parseBool(raw)
	default:
		return nil, fmt.Errorf("unknown value type %q", t)
	}
}

// parseNumber parses a numeric cell, tolerating currency symbols and
// thousands separators left by text-formatted cells.
func parseNumber(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	negative := strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")")
	if negative {
		clean = strings.Trim(clean, "()")
	}
	clean = strings.NewReplacer("$", "", ",", "", " ", "").Replace(clean)

	n, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if negative {
		n = -n
	}
	return n, nil
}

func parseDate(s string, date1904 bool) (string, error) {
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return "", fmt.Errorf("invalid date serial %q: %w", s, err)
		}
		return t.Format(isoDate), nil
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoDate), nil
		}
	}
	return "", fmt.Errorf("not a date: %q", s)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true, nil
	case "0", "false", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
