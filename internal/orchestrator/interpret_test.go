package orchestrator

import (
	"reflect"
	"testing"

	"github.com/munderdifflin/paperflow/pkg/models"
)

func TestHasShortage(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{"not enough", "We do not have it: not enough A4 paper on hand.", true},
		{"insufficient", "Stock is INSUFFICIENT for this order.", true},
		{"low", "Inventory is running low on cardstock.", true},
		{"out of", "We are out of poster boards.", true},
		{"don't have", "We don't have that many napkins.", true},
		{"positive reply", "The stock level for A4 paper is 1000. Plenty available.", false},
		{"empty reply", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasShortage(tt.reply); got != tt.want {
				t.Errorf("HasShortage(%q) = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestMissingItems(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			"two items",
			"Checked everything.\nMISSING ITEMS: glitter glue, unicorn paper",
			[]string{"glitter glue", "unicorn paper"},
		},
		{
			"trailing comma and spaces",
			"MISSING ITEMS: a , b ,",
			[]string{"a", "b"},
		},
		{
			"list ends at line break",
			"MISSING ITEMS: a, b\nAll other items are in stock.",
			[]string{"a", "b"},
		},
		{
			"bare none is dropped",
			"MISSING ITEMS: None",
			nil,
		},
		{
			"no marker",
			"All items are available.",
			nil,
		},
		{
			"empty reply",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingItems(tt.reply)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingItems(%q) = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestParseQuoteReply_JSONString(t *testing.T) {
	reply := models.Reply{Text: `{"final_total_price": 42.5, "bulk_discount_applied": true}`}

	got, err := ParseQuoteReply(reply)
	if err != nil {
		t.Fatalf("ParseQuoteReply failed: %v", err)
	}
	if got.TotalPrice != 42.5 || !got.BulkDiscountApplied {
		t.Errorf("got %+v, want {42.5 true}", got)
	}
}

func TestParseQuoteReply_EmbeddedJSON(t *testing.T) {
	reply := models.Reply{Text: `Here is your quote:
{"final_total_price": 10, "bulk_discount_applied": false}
Thank you for your order!`}

	got, err := ParseQuoteReply(reply)
	if err != nil {
		t.Fatalf("ParseQuoteReply failed: %v", err)
	}
	if got.TotalPrice != 10 || got.BulkDiscountApplied {
		t.Errorf("got %+v, want {10 false}", got)
	}
}

func TestParseQuoteReply_Defaults(t *testing.T) {
	got, err := ParseQuoteReply(models.Reply{Text: `{}`})
	if err != nil {
		t.Fatalf("ParseQuoteReply failed: %v", err)
	}
	if got.TotalPrice != 0 || got.BulkDiscountApplied {
		t.Errorf("got %+v, want zero values", got)
	}
}

func TestParseQuoteReply_Structured(t *testing.T) {
	reply := models.Reply{Structured: map[string]any{
		"final_total_price":     99.9,
		"bulk_discount_applied": true,
	}}

	got, err := ParseQuoteReply(reply)
	if err != nil {
		t.Fatalf("ParseQuoteReply failed: %v", err)
	}
	if got.TotalPrice != 99.9 || !got.BulkDiscountApplied {
		t.Errorf("got %+v, want {99.9 true}", got)
	}
}

func TestParseQuoteReply_StructuredDefaults(t *testing.T) {
	got, err := ParseQuoteReply(models.Reply{Structured: map[string]any{}})
	if err != nil {
		t.Fatalf("ParseQuoteReply failed: %v", err)
	}
	if got.TotalPrice != 0 || got.BulkDiscountApplied {
		t.Errorf("got %+v, want zero values", got)
	}
}

func TestParseQuoteReply_Malformed(t *testing.T) {
	malformed := []string{
		"I cannot provide a quote at this time.",
		"final_total_price is 42",
		"",
		"[1, 2, 3]",
	}

	for _, text := range malformed {
		if _, err := ParseQuoteReply(models.Reply{Text: text}); err == nil {
			t.Errorf("ParseQuoteReply(%q) should fail", text)
		}
	}
}
