package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain",
			in:   "LeBron James",
			want: "lebron james",
		},
		{
			name: "diacritics",
			in:   "Luka Dončić",
			want: "luka doncic",
		},
		{
			name: "extra spaces",
			in:   "  Nikola   Jokić ",
			want: "nikola jokic",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "already folded",
			in:   "jayson tatum",
			want: "jayson tatum",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
