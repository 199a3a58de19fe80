package codec_test

import (
	"testing"

	"github.com/badu/charfilter/codec"
	"gotest.tools/v3/assert"
)

func TestUTF8RoundTrip(t *testing.T) {
	c, ok := codec.New("UTF-8")
	assert.Assert(t, ok)

	for _, r := range []rune{'A', 'é', '中', 0x1F600} {
		encoded, ok := c.Reverse(r)
		assert.Assert(t, ok)

		var got rune
		var status codec.Status
		for _, b := range encoded {
			got, status = c.PushByte(b)
		}
		assert.Equal(t, status, codec.Emit)
		assert.Equal(t, got, r)
	}
}

func TestUTF8RejectsSurrogate(t *testing.T) {
	c, _ := codec.New("UTF-8")
	_, ok := c.Reverse(0xD800)
	assert.Assert(t, !ok)
}

func TestGBKASCIIPassthrough(t *testing.T) {
	c, ok := codec.New("GBK")
	assert.Assert(t, ok)

	r, status := c.PushByte('A')
	assert.Equal(t, status, codec.Emit)
	assert.Equal(t, r, rune('A'))
}

func TestGBKTwoByte(t *testing.T) {
	c, ok := codec.New("GBK")
	assert.Assert(t, ok)

	encoded, ok := c.Reverse('中')
	assert.Assert(t, ok)
	assert.Equal(t, len(encoded), 2)

	_, status := c.PushByte(encoded[0])
	assert.Equal(t, status, codec.NeedMore)
	r, status := c.PushByte(encoded[1])
	assert.Equal(t, status, codec.Emit)
	assert.Equal(t, r, rune('中'))
}

func TestGB18030FourByteLinear(t *testing.T) {
	c, ok := codec.New("GB18030")
	assert.Assert(t, ok)

	// U+20000 is outside the BMP and requires the four-byte form.
	encoded, ok := c.Reverse(0x20000)
	assert.Assert(t, ok)
	assert.Equal(t, len(encoded), 4)

	var r rune
	var status codec.Status
	for _, b := range encoded {
		r, status = c.PushByte(b)
	}
	assert.Equal(t, status, codec.Emit)
	assert.Equal(t, r, rune(0x20000))
}

func TestSJISHalfWidthKatakana(t *testing.T) {
	c, ok := codec.New("SJIS")
	assert.Assert(t, ok)

	encoded, ok := c.Reverse(0xFF71) // half-width katakana "a"
	assert.Assert(t, ok)
	assert.Equal(t, len(encoded), 1)

	r, status := c.PushByte(encoded[0])
	assert.Equal(t, status, codec.Emit)
	assert.Equal(t, r, rune(0xFF71))
}

func TestInvalidSequenceResetsState(t *testing.T) {
	c, _ := codec.New("GBK")
	_, status := c.PushByte(0x81) // lead byte, needs more
	assert.Equal(t, status, codec.NeedMore)
	_, status = c.PushByte(0x20) // not a valid trail byte
	assert.Equal(t, status, codec.Invalid)

	// State must have reset: the next ASCII byte decodes cleanly.
	r, status := c.PushByte('x')
	assert.Equal(t, status, codec.Emit)
	assert.Equal(t, r, rune('x'))
}
