package ui

import "testing"

func TestCardWidth(t *testing.T) {
	tests := []struct {
		termWidth int
		want      int
	}{
		{termWidth: 200, want: MaxCardWidth},
		{termWidth: 60, want: 58},
		{termWidth: 20, want: MinCardWidth},
	}

	for _, tt := range tests {
		got := NewDisplayContextWithWidth(tt.termWidth).CardWidth()
		if got != tt.want {
			t.Errorf("CardWidth() for %d columns = %d, want %d", tt.termWidth, got, tt.want)
		}
	}
}
