package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"12000", "12000", false},
		{"12000,50", "12000.5", false},
		{"12000.50", "12000.5", false},
		{"$ 12.000", "12000", false},
		{"1.234.567", "1234567", false},
		{"1.234,5", "1234.5", false},
		{"1.5", "1.5", false},
		{"", "", true},
		{"abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseMoney(%q) = %s, want %s", tt.in, got.String(), tt.want)
			}
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	var v struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 1500.25, "b": "300"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.A.String() != "1500.25" || v.B.String() != "300" {
		t.Fatalf("decoded %s and %s", v.A, v.B)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"a":1500.25,"b":300}` {
		t.Errorf("got %s", out)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	total := NewMoney(1000).Add(NewMoney(250)).Sub(NewMoney(50))
	if total.String() != "1200" {
		t.Errorf("got %s", total)
	}
	if total.Float() != 1200 {
		t.Errorf("Float() = %v", total.Float())
	}
}
