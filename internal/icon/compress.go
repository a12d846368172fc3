package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/adler32"

	"github.com/klauspost/compress/zlib"
)

// Compressor turns the raw scanline buffer into an IDAT payload.
// The only contract is that a standard zlib reader inflates the output
// back to the input byte for byte.
type Compressor interface {
	Compress(raw []byte) ([]byte, error)
}

// ZlibCompressor deflates with a zlib wrapper at the given level.
type ZlibCompressor struct {
	Level int
}

// Compress implements Compressor.
func (z ZlibCompressor) Compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := zlib.NewWriterLevel(&buf, z.Level)
	if err != nil {
		return nil, fmt.Errorf("icon: zlib level %d: %w", z.Level, err)
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, fmt.Errorf("icon: writing zlib data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("icon: closing zlib writer: %w", err)
	}

	return buf.Bytes(), nil
}

// maxStoredBlock is the largest payload a stored deflate block can carry.
const maxStoredBlock = 0xFFFF

// StoredCompressor emits a zlib stream made only of stored (uncompressed)
// deflate blocks. Output is larger than the input but trivially valid.
type StoredCompressor struct{}

// Compress implements Compressor.
func (StoredCompressor) Compress(raw []byte) ([]byte, error) {
	blocks := (len(raw) + maxStoredBlock - 1) / maxStoredBlock
	if blocks == 0 {
		blocks = 1
	}

	out := make([]byte, 0, 2+len(raw)+blocks*5+4)

	// CM=8 (deflate), CINFO=7 (32K window), FLEVEL=0; FCHECK makes it divisible by 31.
	out = append(out, 0x78, 0x01)

	rest := raw
	for i := 0; i < blocks; i++ {
		n := min(len(rest), maxStoredBlock)

		var final byte
		if i == blocks-1 {
			final = 1
		}
		// BFINAL bit + BTYPE=00, padded to the byte boundary.
		out = append(out, final)
		out = binary.LittleEndian.AppendUint16(out, uint16(n))
		out = binary.LittleEndian.AppendUint16(out, ^uint16(n))
		out = append(out, rest[:n]...)
		rest = rest[n:]
	}

	out = binary.BigEndian.AppendUint32(out, adler32.Checksum(raw))
	return out, nil
}

// Compression level names accepted by CompressorFor.
const (
	CompressionBest    = "best"
	CompressionDefault = "default"
	CompressionFast    = "fast"
	CompressionStore   = "store"
)

// CompressorFor maps a level name to a Compressor.
// An empty name selects best compression.
func CompressorFor(name string) (Compressor, error) {
	switch name {
	case "", CompressionBest:
		return ZlibCompressor{Level: zlib.BestCompression}, nil
	case CompressionDefault:
		return ZlibCompressor{Level: zlib.DefaultCompression}, nil
	case CompressionFast:
		return ZlibCompressor{Level: zlib.BestSpeed}, nil
	case CompressionStore:
		return StoredCompressor{}, nil
	default:
		return nil, fmt.Errorf("icon: unknown compression %q (want best, default, fast or store)", name)
	}
}
