package icon

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// pngSignature is the fixed 8-byte PNG magic.
var pngSignature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

// IHDR field values used for every icon.
const (
	bitDepth       = 8
	colorTypeRGBA  = 6 // truecolour with alpha
	ihdrPayloadLen = 13
)

// Chunk frames a payload as a PNG chunk: length, tag, payload, CRC.
// The CRC covers the tag and payload but not the length.
func Chunk(tag string, payload []byte) []byte {
	out := make([]byte, 0, 12+len(payload))
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, tag...)
	out = append(out, payload...)

	crc := updateChecksum(0xFFFFFFFF, []byte(tag))
	crc = updateChecksum(crc, payload) ^ 0xFFFFFFFF
	return binary.BigEndian.AppendUint32(out, crc)
}

// header builds the 13-byte IHDR payload.
func header(width, height int) []byte {
	ihdr := make([]byte, ihdrPayloadLen)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = bitDepth
	ihdr[9] = colorTypeRGBA
	// compression, filter and interlace methods stay 0
	return ihdr
}

// Encode wraps a raw scanline buffer into a complete PNG file.
// A nil Compressor means zlib at best compression.
func Encode(width, height int, raw []byte, c Compressor) ([]byte, error) {
	if c == nil {
		c = ZlibCompressor{Level: zlib.BestCompression}
	}

	idat, err := c.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("icon: compressing %dx%d pixels: %w", width, height, err)
	}

	ihdr := Chunk("IHDR", header(width, height))
	data := Chunk("IDAT", idat)
	end := Chunk("IEND", nil)

	out := make([]byte, 0, len(pngSignature)+len(ihdr)+len(data)+len(end))
	out = append(out, pngSignature...)
	out = append(out, ihdr...)
	out = append(out, data...)
	out = append(out, end...)
	return out, nil
}

// Render synthesizes and encodes a square icon in one call.
func Render(size int, maskable bool, c Compressor) ([]byte, error) {
	return Encode(size, size, Synthesize(size, size, maskable), c)
}
