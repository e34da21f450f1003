package handlers

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"9.99", 9.99, false},
		{"0", 0, false},
		{"1500", 1500, false},
		{"12,50", 12.50, false},
		{"-5", 0, true},
		{"free", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := parsePrice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parsePrice(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePrice(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
