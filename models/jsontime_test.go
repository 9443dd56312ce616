package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJSONTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2026-08-30T10:15:00Z"`, time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)},
		{"with millis", `"2026-08-30T10:15:00.250Z"`, time.Date(2026, 8, 30, 10, 15, 0, 250000000, time.UTC)},
		{"no zone", `"2026-08-30T10:15:00"`, time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)},
		{"date only", `"2026-08-30"`, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty string", `""`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jt JSONTime
			if err := json.Unmarshal([]byte(tt.in), &jt); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if !jt.Time().Equal(tt.want) {
				t.Errorf("got %v, want %v", jt.Time(), tt.want)
			}
		})
	}

	var jt JSONTime
	if err := json.Unmarshal([]byte(`"30/08/2026"`), &jt); err == nil {
		t.Error("slash date: expected error")
	}
}

func TestJSONTimeMarshal(t *testing.T) {
	jt := JSONTime(time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC))
	b, err := json.Marshal(jt)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2026-08-30T10:15:00Z"` {
		t.Errorf("got %s", b)
	}
}
