package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN", "production"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("", "development"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("", "production"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("loud", "staging"))
}

func TestNewRespectsLevel(t *testing.T) {
	log := New(Options{Environment: "production", Level: "error"})

	assert.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}
