// internal/repositories/mysql/util_test.go

package mysql

import "testing"

func TestInClause(t *testing.T) {
	if s, args := inClause(nil); s != "" || args != nil {
		t.Fatalf("empty ids must give empty clause, got %q %v", s, args)
	}
	s, args := inClause([]string{"W-01", "W-02", "W-03"})
	if s != "(?,?,?)" {
		t.Fatalf("clause = %q", s)
	}
	if len(args) != 3 || args[2] != "W-03" {
		t.Fatalf("args = %v", args)
	}
}

func TestWellFilterNormalize(t *testing.T) {
	cases := []struct {
		in, want WellFilter
	}{
		{WellFilter{}, WellFilter{Limit: DefaultListLimit}},
		{WellFilter{Limit: 50, Offset: -3}, WellFilter{Limit: 50}},
		{WellFilter{Limit: 5000, Offset: 10}, WellFilter{Limit: MaxListLimit, Offset: 10}},
		{WellFilter{Limit: MaxListLimit}, WellFilter{Limit: MaxListLimit}},
	}
	for _, c := range cases {
		if got := c.in.normalize(); got != c.want {
			t.Fatalf("normalize(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
