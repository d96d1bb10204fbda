package propfilter

import (
	"math"
	"testing"
	"time"
)

func TestLooseEqual(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    any
		b    any
		want bool
	}{
		{name: "nil equals nil", a: nil, b: nil, want: true},
		{name: "nil vs empty string", a: nil, b: "", want: false},
		{name: "nil vs zero", a: nil, b: 0, want: false},
		{name: "same strings", a: "web-01", b: "web-01", want: true},
		{name: "different case strings", a: "Web", b: "web", want: false},
		{name: "int vs float", a: 5, b: 5.0, want: true},
		{name: "int vs int64", a: int64(100), b: 100, want: true},
		{name: "number vs numeric string", a: 5, b: "5", want: true},
		{name: "numeric string vs number", a: "5", b: 5, want: true},
		{name: "number vs padded numeric string", a: 5, b: "05", want: true},
		{name: "numeric strings spelled differently", a: "5", b: "05", want: false},
		{name: "number vs whitespace numeric string", a: 5, b: " 5 ", want: true},
		{name: "number vs empty string", a: 0, b: "", want: true},
		{name: "number vs non-numeric string", a: 5, b: "5px", want: false},
		{name: "bool vs one", a: true, b: 1, want: true},
		{name: "bool vs zero", a: false, b: 0, want: true},
		{name: "bool vs numeric string", a: true, b: "1", want: true},
		{name: "bool vs textual form", a: true, b: "true", want: false},
		{name: "NaN vs NaN", a: math.NaN(), b: math.NaN(), want: false},
		{name: "NaN vs NaN string", a: math.NaN(), b: "NaN", want: false},
		{name: "times equal", a: ts, b: ts.In(time.FixedZone("CET", 3600)), want: true},
		{name: "times differ", a: ts, b: ts.Add(time.Millisecond), want: false},
		{name: "slices render equal", a: []int{1, 2}, b: []int{1, 2}, want: true},
		{name: "slice vs its rendering", a: []int{1, 2}, b: "[1 2]", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looseEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("looseEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRelationalCompare(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		a      any
		b      any
		cmp    int
		wantOK bool
	}{
		{name: "numbers", a: 5, b: 10, cmp: -1, wantOK: true},
		{name: "equal numbers", a: 10.0, b: 10, cmp: 0, wantOK: true},
		{name: "numeric strings are lexicographic", a: "10", b: "9", cmp: -1, wantOK: true},
		{name: "number vs numeric string", a: 10, b: "9", cmp: 1, wantOK: true},
		{name: "empty string vs zero", a: "", b: 0, cmp: 0, wantOK: true},
		{name: "bool coerces to one", a: true, b: 0, cmp: 1, wantOK: true},
		{name: "nil coerces to zero", a: nil, b: 1, cmp: -1, wantOK: true},
		{name: "times by millisecond", a: ts, b: ts.Add(time.Second), cmp: -1, wantOK: true},
		{name: "time vs epoch millis", a: ts, b: ts.UnixMilli(), cmp: 0, wantOK: true},
		{name: "non-numeric string incomparable", a: "abc", b: 5, wantOK: false},
		{name: "NaN incomparable", a: math.NaN(), b: 5, wantOK: false},
		{name: "struct incomparable", a: struct{}{}, b: 5, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, ok := relationalCompare(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("relationalCompare(%v, %v) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && cmp != tt.cmp {
				t.Errorf("relationalCompare(%v, %v) = %d, want %d", tt.a, tt.b, cmp, tt.cmp)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string passthrough", in: "web-01", want: "web-01"},
		{name: "bool", in: true, want: "true"},
		{name: "int", in: 42, want: "42"},
		{name: "negative int64", in: int64(-7), want: "-7"},
		{name: "uint8", in: uint8(7), want: "7"},
		{name: "float decimal form", in: 42.5, want: "42.5"},
		{name: "float integral", in: 42.0, want: "42"},
		{name: "small float stays decimal", in: 0.0000001, want: "0.0000001"},
		{name: "huge float switches to exponent", in: 1e21, want: "1e+21"},
		{name: "nil", in: nil, want: ""},
		{name: "time RFC3339", in: ts, want: "2024-03-01T10:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringify(tt.in); got != tt.want {
				t.Errorf("stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   float64
		wantOK bool
	}{
		{name: "plain", in: "42", want: 42, wantOK: true},
		{name: "decimal", in: "42.5", want: 42.5, wantOK: true},
		{name: "exponent", in: "1e3", want: 1000, wantOK: true},
		{name: "surrounding whitespace", in: "  42 ", want: 42, wantOK: true},
		{name: "empty parses to zero", in: "", want: 0, wantOK: true},
		{name: "whitespace parses to zero", in: "   ", want: 0, wantOK: true},
		{name: "words fail", in: "abc", wantOK: false},
		{name: "trailing unit fails", in: "12px", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseNumeric(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("parseNumeric(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseNumeric(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFixupFalsy(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "nil collapses", in: nil, want: ""},
		{name: "empty string stays empty", in: "", want: ""},
		{name: "NaN collapses", in: math.NaN(), want: ""},
		{name: "float32 NaN collapses", in: float32(math.NaN()), want: ""},
		{name: "false renders", in: false, want: "false"},
		{name: "true renders", in: true, want: "true"},
		{name: "zero passes through", in: 0, want: 0},
		{name: "zero float passes through", in: 0.0, want: 0.0},
		{name: "string passes through", in: "x", want: "x"},
		{name: "number passes through", in: 42, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fixupFalsy(tt.in); got != tt.want {
				t.Errorf("fixupFalsy(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatchText(t *testing.T) {
	tests := []struct {
		name  string
		item  any
		token any
		want  bool
	}{
		{name: "substring", item: "production-web-01", token: "web", want: true},
		{name: "case insensitive", item: "Production", token: "PROD", want: true},
		{name: "absent", item: "staging", token: "prod", want: false},
		{name: "numeric fragment", item: 10.5, token: "0.5", want: true},
		{name: "empty token matches anything", item: "x", token: "", want: true},
		{name: "nil item only matches empty", item: nil, token: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchText(tt.item, tt.token); got != tt.want {
				t.Errorf("matchText(%v, %v) = %v, want %v", tt.item, tt.token, got, tt.want)
			}
		})
	}
}

func TestMatchPrefix(t *testing.T) {
	tests := []struct {
		name  string
		item  any
		token any
		want  bool
	}{
		{name: "prefix", item: "web-01", token: "web", want: true},
		{name: "case insensitive", item: "Web-01", token: "wEB", want: true},
		{name: "mid-string is not a prefix", item: "prod-web", token: "web", want: false},
		{name: "numeric prefix", item: 1024, token: "10", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchPrefix(tt.item, tt.token); got != tt.want {
				t.Errorf("matchPrefix(%v, %v) = %v, want %v", tt.item, tt.token, got, tt.want)
			}
		})
	}
}
