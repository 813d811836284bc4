package logging

import (
	"bytes"
	"testing"

	gologging "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(&buf, "WARNING"))

	log := gologging.MustGetLogger("test")
	log.Info("hidden")
	log.Warning("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARNI")
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, InitWithWriter(&buf, "LOUD"))
}
