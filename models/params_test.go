package models

import (
	"net/http/httptest"
	"testing"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    ListParams
		wantErr bool
	}{
		{"defaults", "/records", ListParams{Limit: 1000}, false},
		{"record status", "/records?status=approved", ListParams{Status: "approved", Limit: 1000}, false},
		{"vehicle status", "/vehicles?status=rented", ListParams{Status: "rented", Limit: 1000}, false},
		{"search and limit", "/records?search=LGS&limit=50", ListParams{Search: "LGS", Limit: 50}, false},
		{"limit capped", "/records?limit=99999", ListParams{Limit: 1000}, false},
		{"zero limit", "/records?limit=0", ListParams{}, true},
		{"garbage limit", "/records?limit=ten", ListParams{}, true},
		{"unknown status", "/records?status=archived", ListParams{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got, err := ParseListParams(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("params = %+v, want %+v", got, tt.want)
			}
		})
	}
}
