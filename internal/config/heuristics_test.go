package config

import "testing"

func TestNullWidthHeuristics(t *testing.T) {
	h := NullWidthHeuristics()
	if h.FnCallWidth != UnlimitedWidth || h.StructLitWidth != UnlimitedWidth ||
		h.SingleLineLetElseMaxWidth != UnlimitedWidth {
		t.Errorf("null heuristics not unlimited: %+v", h)
	}
}

func TestSetWidthHeuristics(t *testing.T) {
	h := SetWidthHeuristics(90)
	want := WidthHeuristics{
		FnCallWidth:               90,
		AttrFnLikeWidth:           90,
		StructLitWidth:            90,
		StructVariantWidth:        90,
		ArrayWidth:                90,
		ChainWidth:                90,
		SingleLineIfElseMaxWidth:  90,
		SingleLineLetElseMaxWidth: 90,
	}
	if h != want {
		t.Errorf("SetWidthHeuristics(90) = %+v", h)
	}
}

func TestScaledWidthHeuristics(t *testing.T) {
	tests := []struct {
		maxWidth int
		want     WidthHeuristics
	}{
		// At or below the calibration width the constants apply unscaled.
		{
			maxWidth: 100,
			want: WidthHeuristics{
				FnCallWidth:               60,
				AttrFnLikeWidth:           70,
				StructLitWidth:            18,
				StructVariantWidth:        35,
				ArrayWidth:                60,
				ChainWidth:                60,
				SingleLineIfElseMaxWidth:  50,
				SingleLineLetElseMaxWidth: 50,
			},
		},
		{
			maxWidth: 80,
			want: WidthHeuristics{
				FnCallWidth:               60,
				AttrFnLikeWidth:           70,
				StructLitWidth:            18,
				StructVariantWidth:        35,
				ArrayWidth:                60,
				ChainWidth:                60,
				SingleLineIfElseMaxWidth:  50,
				SingleLineLetElseMaxWidth: 50,
			},
		},
		// Above it, each constant scales by the ratio rounded to one decimal.
		{
			maxWidth: 120,
			want: WidthHeuristics{
				FnCallWidth:               72,
				AttrFnLikeWidth:           84,
				StructLitWidth:            22,
				StructVariantWidth:        42,
				ArrayWidth:                72,
				ChainWidth:                72,
				SingleLineIfElseMaxWidth:  60,
				SingleLineLetElseMaxWidth: 60,
			},
		},
		{
			maxWidth: 150,
			want: WidthHeuristics{
				FnCallWidth:               90,
				AttrFnLikeWidth:           105,
				StructLitWidth:            27,
				StructVariantWidth:        53,
				ArrayWidth:                90,
				ChainWidth:                90,
				SingleLineIfElseMaxWidth:  75,
				SingleLineLetElseMaxWidth: 75,
			},
		},
	}
	for _, tt := range tests {
		if got := ScaledWidthHeuristics(tt.maxWidth); got != tt.want {
			t.Errorf("ScaledWidthHeuristics(%d) = %+v, want %+v", tt.maxWidth, got, tt.want)
		}
	}
}
