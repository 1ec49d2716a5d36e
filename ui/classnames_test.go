package ui_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/uikit/ui"
)

func TestClassNames_Strings(t *testing.T) {
	tests := []struct {
		name string
		args []ui.ClassArg
		want string
	}{
		{"separate arguments", []ui.ClassArg{ui.Str("test"), ui.Str("class"), ui.Str("name")}, "test class name"},
		{"each class once", []ui.ClassArg{ui.Str("test"), ui.Str("class name"), ui.Str("class")}, "test class name"},
		{"trim and split whitespace", []ui.ClassArg{ui.Str(" test "), ui.Str("class \t name\n"), ui.Str("css")}, "test class name css"},
		{"skip nil", []ui.ClassArg{ui.Str("test"), nil, nil, ui.Str("css")}, "test css"},
		{"blank string", []ui.ClassArg{ui.Str("a"), ui.Str("   "), ui.Str("b")}, "a b"},
		{"no arguments", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ui.ClassNames(tt.args...))
		})
	}
}

func TestClassNames_Lists(t *testing.T) {
	tests := []struct {
		name string
		args []ui.ClassArg
		want string
	}{
		{"separate arguments", []ui.ClassArg{ui.StrList{"test"}, ui.StrList{"class", "name"}}, "test class name"},
		{"each class once", []ui.ClassArg{ui.StrList{"test", "class name"}, ui.StrList{"class"}}, "test class name"},
		{"trim and split whitespace", []ui.ClassArg{ui.StrList{" test ", "class \t name\n", "css"}}, "test class name css"},
		{"skip empty entries", []ui.ClassArg{ui.StrList{"test", "", "", "css"}}, "test css"},
		{"empty list", []ui.ClassArg{ui.StrList{}, ui.Str("a")}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ui.ClassNames(tt.args...))
		})
	}
}

func TestClassNames_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []ui.ClassArg
		want string
	}{
		{
			name: "separate arguments",
			args: []ui.ClassArg{ui.Flags{"test": true}, ui.Flags{"class": 1}, ui.Flags{"name": "name"}},
			want: "test class name",
		},
		{
			name: "each class once",
			args: []ui.ClassArg{ui.FlagList{{Name: "test", Value: true}, {Name: "class name", Value: true}, {Name: "class", Value: true}}},
			want: "test class name",
		},
		{
			name: "trim and split compound names",
			args: []ui.ClassArg{ui.Flags{" test class \n \t name ": true}},
			want: "test class name",
		},
		{
			name: "ignore falsy values and empty names",
			args: []ui.ClassArg{ui.FlagList{
				{Name: "test", Value: true},
				{Name: "css", Value: math.NaN()},
				{Name: "class", Value: true},
				{Name: "name", Value: 0},
				{Name: "active", Value: ""},
				{Name: "valid", Value: false},
				{Name: " ", Value: true},
			}},
			want: "test class",
		},
		{
			name: "map keys in sorted order",
			args: []ui.ClassArg{ui.Flags{"zeta": true, "alpha": true, "mid": false}},
			want: "alpha zeta",
		},
		{
			name: "when",
			args: []ui.ClassArg{ui.Str("btn"), ui.When(true, "active"), ui.When(false, "disabled")},
			want: "btn active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ui.ClassNames(tt.args...))
		})
	}
}

func TestClassNames_Mixed(t *testing.T) {
	got := ui.ClassNames(
		ui.Str("btn btn-primary"),
		ui.StrList{"btn", "rounded"},
		ui.Flags{"btn-primary": true, "shadow": true},
		nil,
	)

	assert.Equal(t, "btn btn-primary rounded shadow", got)
}

func TestCN(t *testing.T) {
	assert.Equal(t, "flex p-4 bg-muted", ui.CN("flex p-4", "", " p-4  bg-muted "))
	assert.Equal(t, "", ui.CN())
}

func TestTruthy(t *testing.T) {
	var nilPtr *int
	one := 1

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero", 0, false},
		{"int", 3, true},
		{"uint zero", uint8(0), false},
		{"negative", -1, true},
		{"float zero", 0.0, false},
		{"nan", math.NaN(), false},
		{"float", 0.5, true},
		{"empty string", "", false},
		{"string", "x", true},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
		{"nil map", map[string]int(nil), false},
		{"empty map", map[string]int{}, true},
		{"struct", struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ui.Truthy(tt.value))
		})
	}
}
