package cli

import (
	"slices"
	"testing"
)

func TestParseIntList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "1,3,5", want: []int{1, 3, 5}},
		{in: " 2 , 4 ", want: []int{2, 4}},
		{in: "7", want: []int{7}},
		{in: "1,x", wantErr: true},
		{in: "1,,3", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseIntList(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseIntList(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !slices.Equal(got, tt.want) {
			t.Errorf("parseIntList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePool(t *testing.T) {
	pool, err := parsePool("")
	if err != nil {
		t.Fatalf("parsePool(\"\"): %v", err)
	}
	if len(pool) != 2 {
		t.Errorf("default pool size = %d, want 2", len(pool))
	}

	pool, err = parsePool("browne, mixed, browne")
	if err != nil {
		t.Fatalf("parsePool: %v", err)
	}
	if len(pool) != 3 {
		t.Errorf("pool size = %d, want 3", len(pool))
	}

	if _, err := parsePool("nope"); err == nil {
		t.Error("parsePool should reject unknown block names")
	}
}

func TestParseBlock(t *testing.T) {
	block, err := parseBlock("")
	if err != nil {
		t.Fatalf("parseBlock(\"\"): %v", err)
	}
	if block.Order() != 10 {
		t.Errorf("default block order = %d, want 10", block.Order())
	}

	if _, err := parseBlock("nope"); err == nil {
		t.Error("parseBlock should reject unknown block names")
	}
}
