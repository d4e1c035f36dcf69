package filelines

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	fl, err := Parse(`[{"file":"src/lib.rs","range":[7,13]},{"file":"src/main.rs","range":[1,4]}]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fl.IsAll() {
		t.Fatal("restricted spec reports IsAll")
	}

	files := fl.Files()
	if len(files) != 2 || files[0] != "src/lib.rs" || files[1] != "src/main.rs" {
		t.Errorf("Files = %v", files)
	}
	rs, ok := fl.Ranges("src/lib.rs")
	if !ok || len(rs) != 1 || rs[0] != (Range{Lo: 7, Hi: 13}) {
		t.Errorf("Ranges(src/lib.rs) = %v, %v", rs, ok)
	}
}

func TestParseUnrestricted(t *testing.T) {
	for _, in := range []string{"", "  ", "null"} {
		fl, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
		}
		if !fl.IsAll() {
			t.Errorf("Parse(%q) should cover everything", in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `[{`},
		{"not an array", `{"file":"a.rs"}`},
		{"missing file", `[{"range":[1,2]}]`},
		{"short range", `[{"file":"a.rs","range":[1]}]`},
		{"inverted range", `[{"file":"a.rs","range":[5,2]}]`},
		{"zero line", `[{"file":"a.rs","range":[0,2]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); err == nil {
				t.Errorf("Parse(%q) accepted invalid input", tt.in)
			}
		})
	}
}

func TestNormalizeMergesRanges(t *testing.T) {
	fl := New(map[string][]Range{
		"a.rs": {{Lo: 4, Hi: 10}, {Lo: 1, Hi: 5}, {Lo: 11, Hi: 12}, {Lo: 20, Hi: 25}},
	})

	rs, _ := fl.Ranges("a.rs")
	want := []Range{{Lo: 1, Hi: 12}, {Lo: 20, Hi: 25}}
	if len(rs) != len(want) {
		t.Fatalf("Ranges = %v, want %v", rs, want)
	}
	for i := range want {
		if rs[i] != want[i] {
			t.Errorf("Ranges[%d] = %v, want %v", i, rs[i], want[i])
		}
	}
}

func TestCovers(t *testing.T) {
	fl, err := Parse(`[{"file":"a.rs","range":[5,9]}]`)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		file string
		line int
		want bool
	}{
		{"a.rs", 5, true},
		{"a.rs", 9, true},
		{"a.rs", 4, false},
		{"a.rs", 10, false},
		{"b.rs", 1, false},
	}
	for _, tt := range tests {
		if got := fl.Covers(tt.file, tt.line); got != tt.want {
			t.Errorf("Covers(%q, %d) = %v, want %v", tt.file, tt.line, got, tt.want)
		}
	}

	if !All().Covers("anything.rs", 99) {
		t.Error("unrestricted spec should cover every line")
	}
}

func TestStringRoundTrip(t *testing.T) {
	in := `[{"file":"a.rs","range":[1,5]},{"file":"b.rs","range":[3,7]}]`
	fl, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}

	again, err := Parse(fl.String())
	if err != nil {
		t.Fatalf("reparsing %q: %v", fl.String(), err)
	}
	if !fl.Equal(again) {
		t.Errorf("round trip changed coverage: %s vs %s", fl, again)
	}
	if !strings.Contains(fl.String(), `"a.rs"`) {
		t.Errorf("String = %q", fl.String())
	}

	if got := All().String(); got != "null" {
		t.Errorf("unrestricted String = %q, want null", got)
	}
}

func TestEqual(t *testing.T) {
	a, _ := Parse(`[{"file":"a.rs","range":[1,5]},{"file":"a.rs","range":[6,9]}]`)
	b, _ := Parse(`[{"file":"a.rs","range":[1,9]}]`)
	if !a.Equal(b) {
		t.Error("adjacent ranges should normalize to the same coverage")
	}

	c, _ := Parse(`[{"file":"a.rs","range":[1,8]}]`)
	if a.Equal(c) {
		t.Error("different coverage compared equal")
	}
}
