// Package parser holds the reference implementation of the order-text
// parser contract. Real deployments swap in a supplier-specific parser; the
// restock service only depends on the port declared in its own package.
package parser

import (
	"strconv"
	"strings"

	"kiosk/internal/dto"
)

// LineParser extracts restock items from tab-separated order text, one item
// per line: barcode, product name, unit price, quantity. Lines that do not
// fit are skipped rather than failing the whole text; an empty result means
// nothing was extracted.
type LineParser struct{}

func NewLineParser() *LineParser {
	return &LineParser{}
}

func (p *LineParser) Parse(text string) []dto.RestockItem {
	var items []dto.RestockItem

	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) < 4 {
			continue
		}

		barcode := strings.TrimSpace(fields[0])
		name := strings.TrimSpace(fields[1])
		if barcode == "" || name == "" {
			continue
		}

		unitPrice, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(fields[3]))
		if err != nil || quantity <= 0 {
			continue
		}

		items = append(items, dto.RestockItem{
			Barcode:     barcode,
			ProductName: name,
			Price:       unitPrice,
			UnitPrice:   unitPrice,
			Quantity:    quantity,
			Subtotal:    unitPrice * quantity,
		})
	}

	return items
}
