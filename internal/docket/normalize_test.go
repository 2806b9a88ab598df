package docket

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "drops near-empty fragments",
			in:   []string{"", " ", "x", "VS."},
			want: []string{"VS."},
		},
		{
			name: "rewrites commas",
			in:   []string{"Smith, John ATTY: Doe, Jane"},
			want: []string{"Smith| John ATTY: Doe| Jane"},
		},
		{
			name: "keeps order",
			in:   []string{"4 Debt Collection Case", "a", "John Smith ATTY:"},
			want: []string{"4 Debt Collection Case", "John Smith ATTY:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
