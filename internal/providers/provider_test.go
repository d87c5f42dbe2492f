package providers

import "testing"

func TestDataProviderInterfaceImplemented(t *testing.T) {
	var _ DataProvider = (*scriptedProvider)(nil)
	var _ ScheduleProvider = (*scriptedProvider)(nil)
	var _ TeamProvider = (*scriptedProvider)(nil)
	var _ SummaryProvider = (*scriptedProvider)(nil)
}

func TestWindowDays(t *testing.T) {
	cases := []struct {
		name   string
		window Window
		want   int
	}{
		{"scores window", Window{DaysBack: 1, DaysAhead: 3}, 5},
		{"details window", Window{DaysBack: 2, DaysAhead: 2}, 5},
		{"today only", Window{}, 1},
		{"negative clamps", Window{DaysBack: -4, DaysAhead: -1}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.window.Days(); got != tc.want {
				t.Fatalf("Days() = %d, want %d", got, tc.want)
			}
		})
	}
}
