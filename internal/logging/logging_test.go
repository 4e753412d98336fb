package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriterJSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	require.NoError(t, InitWriter(&buf, "debug", "json"))

	log.Debug().Str("model", "gemini-1.5-flash").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "gemini-1.5-flash", line["model"])
	assert.Equal(t, "hello", line["message"])
}

func TestInitWriterSetsContextFallback(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	require.NoError(t, InitWriter(&buf, "info", "json"))

	zerolog.Ctx(context.Background()).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}

func TestInitWriterRejectsUnknownLevel(t *testing.T) {
	err := InitWriter(&bytes.Buffer{}, "loud", "json")
	assert.Error(t, err)
}
