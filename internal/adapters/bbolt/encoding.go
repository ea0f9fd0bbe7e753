// Binary encoding for fit statistics blobs.
//
// Format v1 stores the IDF table as a compact sorted table; the filtered
// vocabulary is carried as a one-byte flag per term instead of a second
// string table.
//
// Layout (little-endian):
//
//	n:         uint32   record count at fit time
//	termCount: uint32
//	per term (ascending term order):
//	  keyLen:  uint16
//	  key:     [keyLen]byte
//	  idf:     float64 (IEEE 754 bits)
//	  mined:   uint8    1 if the term is in the filtered vocabulary
package bbolt

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/corey/tagmint/internal/ports"
)

// termOverhead is the fixed per-term byte cost: keyLen + idf + mined flag.
const termOverhead = 2 + 8 + 1

// encodeStatistics encodes statistics to the compact binary format.
// Terms are sorted for deterministic output. A single buffer is
// pre-allocated to avoid repeated growth.
func encodeStatistics(stats *ports.Statistics) ([]byte, error) {
	totalSize := 4 + 4
	for term := range stats.IDF {
		totalSize += termOverhead + len(term)
	}

	mined := make(map[string]bool, len(stats.Filtered))
	for _, term := range stats.Filtered {
		if _, ok := stats.IDF[term]; !ok {
			return nil, fmt.Errorf("filtered term %q not in vocabulary", term)
		}
		mined[term] = true
	}

	terms := make([]string, 0, len(stats.IDF))
	for term := range stats.IDF {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	buf := make([]byte, totalSize)
	offset := 0

	binary.LittleEndian.PutUint32(buf[offset:], uint32(stats.N))
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(terms)))
	offset += 4

	for _, term := range terms {
		keyBytes := []byte(term)
		if len(keyBytes) > 65535 {
			return nil, fmt.Errorf("term too long: %d bytes", len(keyBytes))
		}
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(keyBytes)))
		offset += 2
		copy(buf[offset:], keyBytes)
		offset += len(keyBytes)

		binary.LittleEndian.PutUint64(buf[offset:], math.Float64bits(stats.IDF[term]))
		offset += 8

		if mined[term] {
			buf[offset] = 1
		}
		offset++
	}

	return buf, nil
}

// decodeStatistics decodes a blob produced by encodeStatistics.
func decodeStatistics(blob []byte) (*ports.Statistics, error) {
	if len(blob) < 8 {
		return nil, fmt.Errorf("statistics blob truncated: %d bytes", len(blob))
	}
	offset := 0
	n := int(binary.LittleEndian.Uint32(blob[offset:]))
	offset += 4
	termCount := int(binary.LittleEndian.Uint32(blob[offset:]))
	offset += 4

	stats := &ports.Statistics{
		N:   n,
		IDF: make(map[string]float64, termCount),
	}

	for i := 0; i < termCount; i++ {
		if offset+2 > len(blob) {
			return nil, fmt.Errorf("statistics blob truncated at term %d", i)
		}
		keyLen := int(binary.LittleEndian.Uint16(blob[offset:]))
		offset += 2
		if offset+keyLen+9 > len(blob) {
			return nil, fmt.Errorf("statistics blob truncated at term %d", i)
		}
		term := string(blob[offset : offset+keyLen])
		offset += keyLen

		stats.IDF[term] = math.Float64frombits(binary.LittleEndian.Uint64(blob[offset:]))
		offset += 8

		if blob[offset] == 1 {
			stats.Filtered = append(stats.Filtered, term)
		}
		offset++
	}

	// Terms were written in ascending order, so Filtered is already sorted.
	return stats, nil
}
