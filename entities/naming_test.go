package entities

import "testing"

func TestClassifyName(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  NameState
	}{
		{"2024-01-01-", "2024-01-01", "2024-01-05", NameOpen},
		{"2024-01-01-2024-01-05", "2024-01-01", "2024-01-05", NameFinalized},
		{"2024-01-01-2024-01-04", "2024-01-01", "2024-01-05", NameCustom},
		{"一月运输明细", "2024-01-01", "2024-01-05", NameCustom},
		{"2024-01-01-", "2024-01-02", "2024-01-05", NameCustom},
		{"2024-01-01-2024-01-05", "2024-01-01", "", NameCustom},
	}
	for _, tc := range cases {
		if got := ClassifyName(tc.name, tc.start, tc.end); got != tc.want {
			t.Errorf("ClassifyName(%q, %q, %q) = %v, want %v", tc.name, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestOpenAndFinalizedName(t *testing.T) {
	if got := OpenName("2024-03-01"); got != "2024-03-01-" {
		t.Errorf("OpenName = %q", got)
	}
	if got := FinalizedName("2024-03-01", "2024-03-05"); got != "2024-03-01-2024-03-05" {
		t.Errorf("FinalizedName = %q", got)
	}
}
