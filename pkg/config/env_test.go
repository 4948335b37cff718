package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		expected string
	}{
		{name: "unset", expected: "default"},
		{name: "set", value: "catalog.yaml", set: true, expected: "catalog.yaml"},
		{name: "trimmed", value: "  catalog.yaml ", set: true, expected: "catalog.yaml"},
		{name: "blank", value: "   ", set: true, expected: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_STRING", tt.value)
			}
			assert.Equal(t, tt.expected, GetEnvString("TEST_STRING", "default"))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value        string
		defaultValue bool
		expected     bool
	}{
		{"", true, true},
		{"1", false, true},
		{"True", false, true},
		{"f", true, false},
		{"FALSE", true, false},
		{"yes", true, true},
		{"nope", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, GetEnvBool("TEST_BOOL", tt.defaultValue))
		})
	}
}

func TestGetEnvChoice(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"", "json"},
		{"text", "text"},
		{" TEXT ", "text"},
		{"xml", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_CHOICE", tt.value)
			assert.Equal(t, tt.expected, GetEnvChoice("TEST_CHOICE", "json", "json", "text"))
		})
	}
}
