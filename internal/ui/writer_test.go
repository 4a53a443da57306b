package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_Status_PrintsIconAndMessage(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf, false)

	// When: printing a status message
	w.Status("🔑", "Minting keys...")

	// Then: output contains icon and message
	output := buf.String()
	assert.Contains(t, output, "🔑")
	assert.Contains(t, output, "Minting keys...")
}

func TestWriter_Status_EmptyIconIndents(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf, false)

	// When: printing a status message without an icon
	w.Status("", "checked 3 files")

	// Then: message is indented to line up under iconed lines
	assert.Equal(t, "   checked 3 files\n", buf.String())
}

func TestWriter_Success_PrintsCheckmark(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf, false)

	// When: printing a success message
	w.Success("sequence is ordered")

	// Then: output contains checkmark and message
	output := buf.String()
	assert.Contains(t, output, "✅")
	assert.Contains(t, output, "sequence is ordered")
}

func TestWriter_Warning_PrintsWarningIcon(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf, false)

	// When: printing a warning message
	w.Warning("keys are getting long, consider rebalancing")

	// Then: output contains warning icon and message
	output := buf.String()
	assert.Contains(t, output, "⚠️")
	assert.Contains(t, output, "keys are getting long")
}

func TestWriter_Error_PrintsErrorIcon(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf, false)

	// When: printing an error message
	w.Error("key file not found")

	// Then: output contains error icon and message
	output := buf.String()
	assert.Contains(t, output, "❌")
	assert.Contains(t, output, "key file not found")
}

func TestWriter_Statusf_FormatsMessage(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf, false)

	// When: printing a formatted status message
	w.Statusf("📂", "Found %d keys in %s", 42, "order.keys")

	// Then: output contains formatted message
	output := buf.String()
	assert.Contains(t, output, "📂")
	assert.Contains(t, output, "Found 42 keys in order.keys")
}

func TestWriter_Newline_PrintsEmptyLine(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf, false)

	// When: printing a newline
	w.Newline()

	// Then: output is just a newline
	assert.Equal(t, "\n", buf.String())
}

func TestWriter_Quiet_SuppressesStatus(t *testing.T) {
	// Given: a quiet writer
	buf := &bytes.Buffer{}
	w := New(buf, true)

	// When: printing status, success, and newline
	w.Status("🔑", "Minting keys...")
	w.Success("done")
	w.Newline()

	// Then: nothing was written
	assert.Empty(t, buf.String())
}

func TestWriter_Quiet_KeepsWarningsAndErrors(t *testing.T) {
	// Given: a quiet writer
	buf := &bytes.Buffer{}
	w := New(buf, true)

	// When: printing a warning and an error
	w.Warning("keys are getting long")
	w.Errorf("%d findings", 3)

	// Then: both still come through
	output := buf.String()
	assert.Contains(t, output, "⚠️")
	assert.Contains(t, output, "keys are getting long")
	assert.Contains(t, output, "❌")
	assert.Contains(t, output, "3 findings")
}

func TestNew_ReturnsWriter(t *testing.T) {
	// Given/When: creating a new writer
	buf := &bytes.Buffer{}
	w := New(buf, false)

	// Then: writer is created
	assert.NotNil(t, w)
}
