package region

import (
	"testing"

	"github.com/gyeh/billaudit/internal/model"
)

func f(v float64) *float64 { return &v }

func TestDetect(t *testing.T) {
	cases := []struct {
		name     string
		bill     model.ParsedBill
		override model.Region
		want     model.Region
	}{
		{
			name:     "override beats explicit bill region",
			bill:     model.ParsedBill{Region: "IN"},
			override: model.RegionUS,
			want:     model.RegionUS,
		},
		{
			name: "explicit region spelled out",
			bill: model.ParsedBill{Region: "India"},
			want: model.RegionIN,
		},
		{
			name: "currency INR",
			bill: model.ParsedBill{Currency: "inr"},
			want: model.RegionIN,
		},
		{
			name: "currency USD beats indian city",
			bill: model.ParsedBill{Currency: "USD", City: "Mumbai"},
			want: model.RegionUS,
		},
		{
			name: "indian city",
			bill: model.ParsedBill{City: "Bengaluru"},
			want: model.RegionIN,
		},
		{
			name: "hospital type contains cghs",
			bill: model.ParsedBill{HospitalType: "CGHS Empaneled"},
			want: model.RegionIN,
		},
		{
			name: "hospital type contains ayushman",
			bill: model.ParsedBill{HospitalType: "Ayushman Bharat hospital"},
			want: model.RegionIN,
		},
		{
			name: "gst shaped tax rate",
			bill: model.ParsedBill{TaxRate: f(0.18)},
			want: model.RegionIN,
		},
		{
			name: "non gst tax rate falls through to default",
			bill: model.ParsedBill{TaxRate: f(0.07)},
			want: model.RegionUS,
		},
		{
			name: "cpt shaped line code",
			bill: model.ParsedBill{LineItems: []model.LineItem{{Code: "99213"}}},
			want: model.RegionUS,
		},
		{
			name: "cpt code beats large total",
			bill: model.ParsedBill{
				LineItems:   []model.LineItem{{Code: "27447"}},
				TotalAmount: f(60000),
			},
			want: model.RegionUS,
		},
		{
			name: "large total leans india",
			bill: model.ParsedBill{TotalAmount: f(60000)},
			want: model.RegionIN,
		},
		{
			name: "empty bill defaults to US",
			bill: model.ParsedBill{},
			want: model.RegionUS,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			override := tc.override
			if override == "" {
				override = model.RegionAuto
			}
			if got := Detect(&tc.bill, override); got != tc.want {
				t.Errorf("Detect = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDetectDeterministic(t *testing.T) {
	bill := model.ParsedBill{
		City:         "Pune",
		HospitalType: "private",
		TaxRate:      f(0.12),
		TotalAmount:  f(75000),
	}
	first := Detect(&bill, model.RegionAuto)
	for i := 0; i < 10; i++ {
		if got := Detect(&bill, model.RegionAuto); got != first {
			t.Fatalf("detection not stable: %s then %s", first, got)
		}
	}
	if first != model.RegionIN {
		t.Errorf("Detect = %s, want IN", first)
	}
}
