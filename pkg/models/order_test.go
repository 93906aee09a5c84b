package models

import "testing"

func TestItemTypeUnitLabel(t *testing.T) {
	tests := []struct {
		itemType ItemType
		want     string
	}{
		{ItemTypePaper, "sheets"},
		{ItemTypeProduct, "product"},
	}

	for _, tt := range tests {
		if got := tt.itemType.UnitLabel(); got != tt.want {
			t.Errorf("UnitLabel(%s) = %q, want %q", tt.itemType, got, tt.want)
		}
	}
}
