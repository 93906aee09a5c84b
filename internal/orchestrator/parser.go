// Package orchestrator coordinates the order workflow: it parses customer
// requests, delegates stock checks, pricing, and finalization to the
// collaborator agents, and interprets their replies.
package orchestrator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/munderdifflin/paperflow/pkg/models"
)

const dateAnnotation = "(Date of request:"

var (
	dateRe = regexp.MustCompile(`\(Date of request:\s*(\d{4}-\d{2}-\d{2})\)`)

	// Item lines look like "- 200 sheets of A4 paper". The unit vocabulary
	// is fixed; the description runs to the end of the line.
	itemRe = regexp.MustCompile(`- (\d+) (?:sheets|packets|reams|table napkins|poster boards|cards|rolls) of ([^\n]+)`)
)

// Parse extracts a structured order and a request date from free text.
// It never fails: an unrecognized request yields zero lines, and a missing
// date annotation yields an empty date. Pure function of its input.
func Parse(request string) models.ParsedOrder {
	var order models.ParsedOrder

	if m := dateRe.FindStringSubmatch(request); m != nil {
		order.RequestDate = m[1]
	}

	text := stripDate(request)

	for _, m := range itemRe.FindAllStringSubmatch(text, -1) {
		quantity, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		name := strings.TrimSpace(m[2])
		order.Lines = append(order.Lines, models.OrderLine{
			Quantity: quantity,
			Name:     name,
			Type:     classify(name),
		})
	}

	return order
}

// stripDate removes the trailing date annotation from a request.
func stripDate(request string) string {
	if i := strings.Index(request, dateAnnotation); i >= 0 {
		return request[:i]
	}
	return request
}

// classify infers the item type from its description.
func classify(name string) models.ItemType {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "paper") || strings.Contains(lower, "cardstock") {
		return models.ItemTypePaper
	}
	return models.ItemTypeProduct
}
