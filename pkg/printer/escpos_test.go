package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// initLen is the length of the ESC @ preamble every document starts with.
const initLen = 2

func TestNewDocument_StartsWithInit(t *testing.T) {
	d := NewDocument(32)

	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}

func TestNewDocument_DefaultsWidth(t *testing.T) {
	d := NewDocument(0)
	d.Separator('-')

	assert.Contains(t, string(d.Bytes()), "--------------------------------")
}

func TestKeyValue_PadsToWidth(t *testing.T) {
	d := NewDocument(32)
	d.KeyValue("TOTAL:", "R$ 50,00")

	line := string(d.Bytes()[initLen:])
	assert.Equal(t, "TOTAL:                  R$ 50,00\n", line)
}

func TestKeyValue_NeverCollapses(t *testing.T) {
	d := NewDocument(10)
	d.KeyValue("a very long key", "a long value")

	assert.Contains(t, string(d.Bytes()), "a very long key a long value")
}

func TestItemLine_FormatsQuantity(t *testing.T) {
	d := NewDocument(32)
	d.ItemLine(2, "USB cable", "R$ 30,00")

	line := string(d.Bytes()[initLen:])
	assert.Contains(t, line, "USB cable x2")
	assert.Contains(t, line, "R$ 30,00")
}

func TestQRCode_SkipsEmptyPayload(t *testing.T) {
	d := NewDocument(32)
	before := len(d.Bytes())

	d.QRCode("", 4)

	assert.Equal(t, before, len(d.Bytes()))
}

func TestQRCode_EmitsStoreAndPrintCommands(t *testing.T) {
	d := NewDocument(32)
	d.QRCode("00020101", 4)

	out := d.Bytes()
	assert.Contains(t, string(out), "00020101")
	// GS ( k function 181: print stored symbol
	assert.True(t, bytes.Contains(out, []byte{GS, '(', 'k', 3, 0, 49, 81, 48}))
}

func TestPartialCut_AppendsCutCommand(t *testing.T) {
	d := NewDocument(32)
	d.Text("end")
	d.PartialCut()

	assert.True(t, bytes.HasSuffix(d.Bytes(), []byte{GS, 'V', 0x01}))
}

func TestReset_ClearsAndReinitializes(t *testing.T) {
	d := NewDocument(32)
	d.Text("old content")

	d.Reset()

	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}
