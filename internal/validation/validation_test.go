package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"alyxshang", true},
		{"abcd", true},
		{"user2024", true},
		{"ab1", false},
		{"Alyxshang", false},
		{"alyxshangHH", false},
		{strings.Repeat("a", 16), true},
		{strings.Repeat("a", 17), false},
		{"alyx_shang", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Username(tt.in), "username %q", tt.in)
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"WrongCodeIsEvil", true},
		{"a@b:c", true},
		{"semi;colon.", true},
		{"abcd", false},
		{strings.Repeat("x", 16), true},
		{strings.Repeat("x", 17), false},
		{"with space", false},
		{"hash#tag1", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Password(tt.in), "password %q", tt.in)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#DF0045", true},
		{"#000000", true},
		{"#df0045", false},
		{"#DF00450", false},
		{"DF0045", false},
		{"#DF004", false},
		{"#DG0045", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Color(tt.in), "color %q", tt.in)
	}
}

func TestMessage(t *testing.T) {
	assert.True(t, Message(""))
	assert.True(t, Message(strings.Repeat("a", MaxMessageBytes)))
	assert.False(t, Message(strings.Repeat("a", MaxMessageBytes+1)))
}
