package runtime

import "testing"

func TestToStringCanonicalForms(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{NilValue{}, "nil"},
		{BoolValue{Val: true}, "true"},
		{BoolValue{Val: false}, "false"},
		{StringValue{Val: "hello"}, "hello"},
		{StringValue{Val: ""}, ""},
		{NumberValue{Val: 15}, "15"},
		{NumberValue{Val: -0.5}, "-0.5"},
		{NumberValue{Val: 2.5}, "2.5"},
		{NumberValue{Val: 1000000}, "1000000"},
	}
	for _, tc := range cases {
		if got := ToString(tc.val); got != tc.want {
			t.Fatalf("ToString(%#v) = %q, want %q", tc.val, got, tc.want)
		}
	}
}
