package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesCommand(t *testing.T) {
	testCases := []struct {
		msg     string
		command string
		matches bool
	}{
		{msg: "/profile", command: "/profile", matches: true},
		{msg: "/Profile flavored", command: "/profile", matches: true},
		{msg: "  /back ", command: "/back", matches: true},
		{msg: "/profiles", command: "/profile", matches: false},
		{msg: "profile", command: "/profile", matches: false},
		{msg: "", command: "/profile", matches: false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.matches, MatchesCommand(tc.msg, tc.command), tc.msg)
	}
}

func TestMatchesCommands(t *testing.T) {
	assert.True(t, MatchesCommands("/quiz", []string{"/start", "/quiz"}))
	assert.False(t, MatchesCommands("/stats", []string{"/start", "/quiz"}))
}

func TestExtractCommandValue(t *testing.T) {
	assert.Equal(t, "flavored", ExtractCommandValue("/profile flavored", "/profile"))
	assert.Equal(t, "", ExtractCommandValue("/profile", "/profile"))
	assert.Equal(t, "", ExtractCommandValue("/p", "/profile"))
	assert.Equal(t, "a b", ExtractCommandValue("/PROFILE  a b ", "/profile"))
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, MatchesAny("/Start now", "/", []string{"start"}))
	assert.False(t, MatchesAny("/stop", "/", []string{"start"}))
}
