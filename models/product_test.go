package models

import "testing"

func TestFinalPrice(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 10.00, 0, 10.00},
		{"quarter off", 100.00, 25, 75.00},
		{"rounds to cents", 9.99, 33, 6.69},
		{"full discount", 5.00, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Price: tc.price, Discount: tc.discount}
			if got := p.FinalPrice(); got != tc.want {
				t.Errorf("FinalPrice() = %.2f, want %.2f", got, tc.want)
			}
		})
	}
}
