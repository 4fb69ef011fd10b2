package utils

import (
	"net/http/httptest"
	"testing"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"Active":   "active",
		"On Hold":  "onhold",
		"on-hold":  "onhold",
		"ON-HOLD":  "onhold",
		"On Leave": "onleave",
		"":         "",
	}

	for in, want := range cases {
		if got := NormalizeStatus(in); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseYearParam(t *testing.T) {
	cases := map[string]int{
		"/api/dashboard/stats":            0,
		"/api/dashboard/stats?year=2024":  2024,
		"/api/dashboard/stats?year=abc":   0,
		"/api/dashboard/stats?year=12":    0,
		"/api/dashboard/stats?year=-2024": 0,
		"/api/dashboard/stats?year=10000": 0,
	}

	for url, want := range cases {
		req := httptest.NewRequest("GET", url, nil)
		if got := ParseYearParam(req); got != want {
			t.Errorf("ParseYearParam(%q) = %d, want %d", url, got, want)
		}
	}
}
