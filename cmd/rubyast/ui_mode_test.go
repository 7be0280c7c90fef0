package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input   string
		want    uiMode
		wantErr bool
	}{
		{input: "", want: uiModeAuto},
		{input: "auto", want: uiModeAuto},
		{input: "ON", want: uiModeOn},
		{input: " off ", want: uiModeOff},
		{input: "tui", wantErr: true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("readUIMode(%q) must fail", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("readUIMode(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
