package elemental

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestTestConditions(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		conds  Conditions
		expect bool
	}{
		{"empty set", Row{}, nil, true},
		{"bool equal", Row{"active": true}, Conditions{{"active", "true"}}, true},
		{"bool not equal", Row{"active": true}, Conditions{{"active", "!= true"}}, false},
		{"false literal", Row{"active": false}, Conditions{{"active", "false"}}, true},
		{"false literal on true", Row{"active": true}, Conditions{{"active", "false"}}, false},
		{"truthy string", Row{"active": "1"}, Conditions{{"active", "true"}}, true},
		{"int from string", Row{"age": "20"}, Conditions{{"age", ">=18"}}, true},
		{"int below", Row{"age": 17}, Conditions{{"age", ">= 18"}}, false},
		{"less or equal", Row{"age": 5}, Conditions{{"age", "<=5"}}, true},
		{"less than", Row{"age": 5}, Conditions{{"age", "<5"}}, false},
		{"greater than", Row{"age": 6}, Conditions{{"age", ">5"}}, true},
		{"float", Row{"price": 9.99}, Conditions{{"price", "< 10.5"}}, true},
		{"string equal", Row{"role": "admin"}, Conditions{{"role", "admin"}}, true},
		{"string explicit", Row{"role": "admin"}, Conditions{{"role", "== admin"}}, true},
		{"string not equal", Row{"role": "user"}, Conditions{{"role", "!=admin"}}, true},
		{"missing field is nil", Row{}, Conditions{{"deleted", "false"}}, true},
		{"missing field not true", Row{}, Conditions{{"deleted", "true"}}, false},
		{"all must hold", Row{"a": 1, "b": 2}, Conditions{{"a", "1"}, {"b", "3"}}, false},
		{"nil record", nil, Conditions{{"a", "false"}}, true},
		{"nan is a string", Row{"name": "Ada"}, Conditions{{"name", "nan"}}, false},
		{"not nan", Row{"name": "Ada"}, Conditions{{"name", "!= NaN"}}, true},
		{"infinity is a string", Row{"title": "Infinity"}, Conditions{{"title", "Infinity"}}, true},
		{"hex float is a string", Row{"code": "0x1p-2"}, Conditions{{"code", "0x1p-2"}}, true},
		{"exponent float", Row{"n": 1500}, Conditions{{"n", "> 1.2e3"}}, true},
		{"large id", Row{"id": int64(9007199254740993)}, Conditions{{"id", "9007199254740993"}}, true},
		{"large id not rounded", Row{"id": int64(9007199254740993)}, Conditions{{"id", "9007199254740992"}}, false},
		{"large id from string", Row{"id": "9007199254740993"}, Conditions{{"id", "9007199254740993"}}, true},
		{"large unsigned id", Row{"id": uint64(9007199254740993)}, Conditions{{"id", "> 9007199254740992"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TestConditions(tt.record, tt.conds); got != tt.expect {
				t.Errorf("TestConditions() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestLegacyFalseLiteral(t *testing.T) {
	b := New(WithLegacyFalseLiteral())
	conds := Conditions{{"active", "false"}}

	if !b.TestConditions(Row{"active": true}, conds) {
		t.Error("legacy: \"false\" should match a true field")
	}
	if b.TestConditions(Row{"active": false}, conds) {
		t.Error("legacy: \"false\" should not match a false field")
	}
}

type user struct {
	Row
	admin bool
}

func (u user) Call(name string) (any, bool) {
	if name == "isAdmin" {
		return u.admin, true
	}
	return nil, false
}

func TestConditionAccessors(t *testing.T) {
	b := New(WithAccessor("isAdult", func(r Record) any {
		age, _ := r.Field("age")
		return toInt(age) >= 18
	}))

	tests := []struct {
		name   string
		record Record
		conds  Conditions
		expect bool
	}{
		{"registered accessor", Row{"age": 30}, Conditions{{"isAdult()", "true"}}, true},
		{"registered accessor false", Row{"age": 3}, Conditions{{"isAdult()", "true"}}, false},
		{"record caller", user{admin: true}, Conditions{{"isAdmin()", "true"}}, true},
		{"record caller false", user{}, Conditions{{"isAdmin()", "true"}}, false},
		{"unknown accessor is nil", Row{}, Conditions{{"nope()", "false"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.TestConditions(tt.record, tt.conds); got != tt.expect {
				t.Errorf("TestConditions() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestMatchClasses(t *testing.T) {
	mods := ClassModifiers{
		{Class: "inactive", When: Conditions{{"active", "false"}}},
		{Class: "admin", When: Conditions{{"role", "admin"}}},
		{Class: "always"},
	}

	tests := []struct {
		name   string
		base   string
		record Record
		want   string
	}{
		{"base and matches", "btn", Row{"active": false, "role": "admin"}, "btn inactive admin always"},
		{"no base", "", Row{"active": true}, "always"},
		{"declaration order", "", Row{"active": 0, "role": "admin"}, "inactive admin always"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultBuilder.MatchClasses(tt.record, tt.base, mods); got != tt.want {
				t.Errorf("MatchClasses() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassModifiersYAMLOrder(t *testing.T) {
	src := `
zebra:
  active: "false"
apple:
  role: admin
  age: ">= 18"
`
	var mods ClassModifiers
	if err := yaml.Unmarshal([]byte(src), &mods); err != nil {
		t.Fatal(err)
	}

	want := ClassModifiers{
		{Class: "zebra", When: Conditions{{"active", "false"}}},
		{Class: "apple", When: Conditions{{"role", "admin"}, {"age", ">= 18"}}},
	}
	if diff := cmp.Diff(want, mods); diff != "" {
		t.Errorf("ClassModifiers mismatch (-want +got):\n%s", diff)
	}
}
