// Package logdata reads the proprietary binary log format and holds the
// decoded table in memory. The format is a fixed header block followed by a
// stream of little-endian float64 records: channel titles live at offset
// 0x1820 as 32-byte NUL-padded ASCII cells, sample records start at 0x3000,
// and the first value of every record is the record's own byte size.
package logdata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"kelvin/internal/app/errors"
)

const (
	titleOffset  = 0x1800 + 32
	titleSize    = 32
	maxChannels  = 52
	recordOffset = 0x3000

	float64Size = 8
)

// Parse decodes the log file at path into channel titles and column-major
// sample data, one column per title.
func Parse(path string) ([]string, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
		}

		return nil, nil, err
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.ReadSeeker) ([]string, [][]float64, error) {
	titles, err := parseTitles(r)
	if err != nil {
		return nil, nil, err
	}

	columns, err := parseRecords(r, len(titles))
	if err != nil {
		return nil, nil, err
	}

	return titles, columns, nil
}

// parseTitles reads the fixed title block. Empty cells terminate nothing;
// they are simply skipped, matching the writer's sparse layout.
func parseTitles(r io.ReadSeeker) ([]string, error) {
	if _, err := r.Seek(titleOffset, io.SeekStart); err != nil {
		return nil, err
	}

	raw := make([]byte, (maxChannels-1)*titleSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: title block: %w", errors.ErrCorruptedRecord, err)
	}

	titles := make([]string, 0, maxChannels-1)

	for i := 0; i < maxChannels-1; i++ {
		cell := raw[i*titleSize : (i+1)*titleSize]

		title := string(bytes.Trim(cell, "\x00"))
		if title != "" {
			titles = append(titles, title)
		}
	}

	if len(titles) == 0 {
		return nil, errors.ErrNoChannelTitles
	}

	return titles, nil
}

// parseRecords reads records until EOF. Every record must carry exactly one
// value per channel after its leading size cell.
func parseRecords(r io.ReadSeeker, channels int) ([][]float64, error) {
	if _, err := r.Seek(recordOffset, io.SeekStart); err != nil {
		return nil, err
	}

	columns := make([][]float64, channels)

	sizeCell := make([]byte, float64Size)

	for {
		if _, err := io.ReadFull(r, sizeCell); err != nil {
			if err == io.EOF {
				return columns, nil
			}

			return nil, fmt.Errorf("%w: record size: %w", errors.ErrCorruptedRecord, err)
		}

		recordSize := int(math.Float64frombits(binary.LittleEndian.Uint64(sizeCell))) - float64Size
		if recordSize <= 0 || recordSize%float64Size != 0 {
			return nil, errors.ErrCorruptedRecord
		}

		payload := make([]byte, recordSize)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("%w: record payload: %w", errors.ErrCorruptedRecord, err)
		}

		count := recordSize / float64Size
		if count != channels {
			return nil, fmt.Errorf("%w: got %d values for %d channels",
				errors.ErrChannelCountMismatch, count, channels)
		}

		for i := 0; i < count; i++ {
			bits := binary.LittleEndian.Uint64(payload[i*float64Size : (i+1)*float64Size])
			columns[i] = append(columns[i], math.Float64frombits(bits))
		}
	}
}
