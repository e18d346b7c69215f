package calc

import (
	"testing"
	"time"
)

func TestLoadDates_Sequence(t *testing.T) {
	start, ok := ParseDate("2024-01-01")
	if !ok {
		t.Fatal("ParseDate failed on valid date")
	}

	dates := LoadDates(start, 5)
	if len(dates) != 5 {
		t.Fatalf("LoadDates produced %d dates, want 5", len(dates))
	}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i, w := range want {
		if got := FormatDate(dates[i]); got != w {
			t.Errorf("dates[%d] = %s, want %s", i, got, w)
		}
	}
}

func TestLoadDate_CrossesMonthAndYear(t *testing.T) {
	cases := []struct {
		start string
		i     int
		want  string
	}{
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2023-12-31", 1, "2024-01-01"},
		{"2024-03-01", 30, "2024-03-31"},
	}
	for _, tc := range cases {
		start, _ := ParseDate(tc.start)
		if got := FormatDate(LoadDate(start, tc.i)); got != tc.want {
			t.Errorf("LoadDate(%s, %d) = %s, want %s", tc.start, tc.i, got, tc.want)
		}
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		freight string
		settle  string
		want    string
	}{
		{"100", "2", "200.00"},
		{"10.5", "3", "31.50"},
		{"0.335", "10", "3.35"},
		// half-up assumption: 1.005 × 10 = 10.05, 0.125 × 1 rounds up
		{"0.125", "1", "0.13"},
		{"33.333", "3", "100.00"},
		{"", "5", "0.00"},
		{"5", "", "0.00"},
		{"", "", "0.00"},
		{"abc", "5", "0.00"},
		{"5", "1,2", "0.00"},
		{" 2.5 ", " 4 ", "10.00"},
	}
	for _, tc := range cases {
		if got := Format2(Amount(tc.freight, tc.settle)); got != tc.want {
			t.Errorf("Amount(%q, %q) = %s, want %s", tc.freight, tc.settle, got, tc.want)
		}
	}
}

func TestParseDecimal_BlankAndGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "x", "1.2.3"} {
		if _, ok := ParseDecimal(s); ok {
			t.Errorf("ParseDecimal(%q) ok = true, want false", s)
		}
	}
	d, ok := ParseDecimal("12.34")
	if !ok || d.String() != "12.34" {
		t.Errorf("ParseDecimal(12.34) = %s, %v", d, ok)
	}
}

func TestAmount_RepeatedEditsNoDrift(t *testing.T) {
	// 0.1 × 0.2 style products must not pick up binary float error.
	if got := Format2(Amount("0.1", "0.2")); got != "0.02" {
		t.Errorf("Amount(0.1, 0.2) = %s, want 0.02", got)
	}
	for i := 0; i < 1000; i++ {
		if got := Format2(Amount("19.99", "3.3")); got != "65.97" {
			t.Fatalf("iteration %d: Amount(19.99, 3.3) = %s, want 65.97", i, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("2024-13-01"); ok {
		t.Error("ParseDate accepted invalid month")
	}
	if _, ok := ParseDate(""); ok {
		t.Error("ParseDate accepted blank")
	}
	d, ok := ParseDate("2024-03-06")
	if !ok || !d.Equal(time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate(2024-03-06) = %v, %v", d, ok)
	}
}
