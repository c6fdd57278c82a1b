package fields

import "testing"

func TestProduct(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "canonicalized phrase",
			text: "Goods: Agility™  EC 2021   low density polyethylene LDPE in bags",
			want: "AGILITY EC 2021 LOW DENSITY POLYETHYLENE LDPE",
		},
		{
			name: "already uppercase",
			text: "AGILITY 1021 LDPE",
			want: "AGILITY 1021 LDPE",
		},
		{
			name: "no phrase",
			text: "POLYPROPYLENE HOMOPOLYMER",
			want: "",
		},
		{
			name: "terminator too far",
			text: "AGILITY " + longFiller(150) + " LDPE",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Product(tt.text); got != tt.want {
				t.Errorf("Product() = %q, want %q", got, tt.want)
			}
		})
	}
}

func longFiller(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
