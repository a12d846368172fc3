package icon

// crcPolynomial is the reversed CRC-32 (IEEE) polynomial used by PNG.
const crcPolynomial = 0xEDB88320

// crcTable holds the CRC-32 residual for every byte value.
// Built once at package init and never written again.
var crcTable = makeCRCTable()

// makeCRCTable computes the 256-entry lookup table for crcPolynomial.
func makeCRCTable() [256]uint32 {
	var table [256]uint32
	for n := range table {
		c := uint32(n)
		for i := 0; i < 8; i++ {
			if c&1 != 0 {
				c = crcPolynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[n] = c
	}
	return table
}

// Checksum returns the CRC-32 of data as stored in PNG chunk trailers.
func Checksum(data []byte) uint32 {
	return updateChecksum(0xFFFFFFFF, data) ^ 0xFFFFFFFF
}

// updateChecksum feeds data into a running (non-inverted) accumulator.
// Chunk checksums use it to cover the tag and payload without joining them.
func updateChecksum(acc uint32, data []byte) uint32 {
	for _, b := range data {
		acc = crcTable[byte(acc)^b] ^ (acc >> 8)
	}
	return acc
}
