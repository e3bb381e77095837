package models

import (
	"encoding/json"
	"testing"
)

func TestGenerateTablesTiers(t *testing.T) {
	tables := GenerateTables(25)

	if len(tables) != 25 {
		t.Fatalf("expected 25 tables, got %d", len(tables))
	}

	wantCapacity := func(id int) int {
		switch {
		case id <= 8:
			return 2
		case id <= 14:
			return 4
		case id <= 18:
			return 6
		default:
			return 8
		}
	}

	for _, tbl := range tables {
		if tbl.Capacity != wantCapacity(tbl.ID) {
			t.Errorf("table %d capacity = %d, want %d", tbl.ID, tbl.Capacity, wantCapacity(tbl.ID))
		}
		if tbl.Number != tbl.ID {
			t.Errorf("table %d display number = %d", tbl.ID, tbl.Number)
		}
		if tbl.Status != "available" {
			t.Errorf("table %d status = %q, want available", tbl.ID, tbl.Status)
		}
	}
}

func TestGuestsUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Guests
	}{
		{`"4"`, "4"},
		{`6`, "6"},
		{`"10+"`, "10+"},
	}
	for _, tt := range tests {
		var g Guests
		if err := json.Unmarshal([]byte(tt.in), &g); err != nil {
			t.Errorf("unmarshal %s: %v", tt.in, err)
			continue
		}
		if g != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.in, g, tt.want)
		}
	}

	var g Guests
	if err := json.Unmarshal([]byte(`true`), &g); err == nil {
		t.Error("expected error unmarshalling a bool guest count")
	}
}

func TestGuestsCount(t *testing.T) {
	if Guests("10+").Count() != 10 {
		t.Error("the 10+ sentinel should aggregate as 10")
	}
	if !Guests("10+").IsLargeGroup() {
		t.Error("10+ should be a large group")
	}
	if Guests("7").Count() != 7 {
		t.Error("numeric guests should parse as-is")
	}
	if Guests("7").IsLargeGroup() {
		t.Error("7 is not a large group")
	}
}

func TestIntListScanValue(t *testing.T) {
	v, err := IntList{3, 5}.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "[3,5]" {
		t.Errorf("Value() = %v, want [3,5]", v)
	}

	var l IntList
	if err := l.Scan("[1,2,3]"); err != nil {
		t.Fatal(err)
	}
	if len(l) != 3 || l[0] != 1 || l[2] != 3 {
		t.Errorf("Scan result = %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("Scan(nil) should give an empty list, got %v", l)
	}
}
