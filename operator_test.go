package propfilter

import "testing"

func TestOperatorValid(t *testing.T) {
	valid := []Operator{
		OpLessThan, OpLessThanEqual, OpGreaterThan, OpGreaterThanEqual,
		OpEqual, OpNotEqual, OpContains, OpNotContains,
		OpStartsWith, OpNotStartsWith,
	}
	for _, op := range valid {
		if !op.Valid() {
			t.Errorf("Valid(%q) = false, want true", op)
		}
	}

	invalid := []Operator{"", "==", "~", "in", "<>", "! :"}
	for _, op := range invalid {
		if op.Valid() {
			t.Errorf("Valid(%q) = true, want false", op)
		}
	}
}

func TestMatchKindString(t *testing.T) {
	tests := []struct {
		kind MatchKind
		want string
	}{
		{MatchKindNone, "none"},
		{MatchKindDate, "date"},
		{MatchKindDatetime, "datetime"},
		{MatchKindFunc, "func"},
		{MatchKind(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("MatchKind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}

func TestExtendedOperatorConstructors(t *testing.T) {
	fn := func(itemValue, tokenValue any) bool { return true }

	tests := []struct {
		name     string
		ext      ExtendedOperator
		op       Operator
		kind     MatchKind
		wantFunc bool
	}{
		{name: "plain", ext: Plain(OpEqual), op: OpEqual, kind: MatchKindNone},
		{name: "date", ext: DateMatch(OpLessThan), op: OpLessThan, kind: MatchKindDate},
		{name: "datetime", ext: DatetimeMatch(OpGreaterThan), op: OpGreaterThan, kind: MatchKindDatetime},
		{name: "custom", ext: CustomMatch(OpContains, fn), op: OpContains, kind: MatchKindFunc, wantFunc: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ext.Operator != tt.op {
				t.Errorf("Operator = %q, want %q", tt.ext.Operator, tt.op)
			}
			if tt.ext.Match != tt.kind {
				t.Errorf("Match = %v, want %v", tt.ext.Match, tt.kind)
			}
			if (tt.ext.MatchFunc != nil) != tt.wantFunc {
				t.Errorf("MatchFunc set = %v, want %v", tt.ext.MatchFunc != nil, tt.wantFunc)
			}
		})
	}
}
