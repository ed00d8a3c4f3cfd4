package datadriven

import (
	"fmt"
	"strings"
)

// Runner is any test context that can start a named subtest of its own type,
// such as *framework.Context.
type Runner[T any] interface {
	Run(name string, action func(T))
}

type Param struct {
	Key   string
	Value interface{}
}

// P is shorthand for building a Param.
func P(key string, value interface{}) Param {
	return Param{Key: key, Value: value}
}

// Case is one row of an inline parameter table.
type Case interface {
	Params() []Param
}

// Describe names a parametrized subtest by its inputs, as in
// "user type [username=octocat, expected_type=User]". With no params it is
// just the name.
func Describe(name string, params []Param) string {
	if len(params) == 0 {
		return name
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s=%v", p.Key, p.Value)
	}
	desc := "[" + strings.Join(parts, ", ") + "]"
	if name == "" {
		return desc
	}
	return name + " " + desc
}

// Parametrize runs action once per case, each as a separate subtest of t
// named after the case's params.
func Parametrize[T Runner[T], C Case](t T, cases []C, action func(T, C)) {
	for _, c := range cases {
		c := c
		t.Run(Describe("", c.Params()), func(t T) {
			action(t, c)
		})
	}
}

// ForEachRecord runs action once per record, each as a separate subtest of t.
// Subtests are named by the values of labelKeys; if that leaves a name empty,
// the record's position is used instead.
func ForEachRecord[T Runner[T]](t T, records []Record, labelKeys []string, action func(T, Record)) {
	for i, r := range records {
		r := r
		params := make([]Param, 0, len(labelKeys))
		for _, key := range labelKeys {
			params = append(params, P(key, r.String(key)))
		}
		name := Describe("", params)
		if name == "" {
			name = fmt.Sprintf("record %d", i+1)
		}
		t.Run(name, func(t T) {
			action(t, r)
		})
	}
}
