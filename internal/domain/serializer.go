package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	m "ifbound.dev/pkg/ifbound/internal/model"
)

const companionPerm os.FileMode = 0o644

// ErrMalformedRecord is returned when a companion line cannot be parsed.
var ErrMalformedRecord = errors.New("malformed boundary record")

// CompanionWriter stores a companion file in one piece: either the whole
// content lands at path or nothing does. RemoveFile drops a companion that
// no longer has records.
type CompanionWriter interface {
	WriteFileAtomic(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
	RemoveFile(ctx context.Context, path m.Path) error
}

// Serializer writes boundary records to companion files.
type Serializer struct {
	writer CompanionWriter
}

// NewSerializer creates a Serializer backed by writer.
func NewSerializer(writer CompanionWriter) *Serializer {
	return &Serializer{writer: writer}
}

// Write stores records at outputPath, one "<file> <start> <end>" line per
// record. It reports whether the file was written; failures are logged and
// otherwise dropped.
func (s *Serializer) Write(ctx context.Context, outputPath m.Path, records []m.BoundaryRecord) bool {
	if outputPath == "" || s.writer == nil {
		return false
	}

	if err := s.writer.WriteFileAtomic(ctx, outputPath, FormatRecords(records), companionPerm); err != nil {
		slog.Warn("abandoning companion file", "path", outputPath, "error", err)
		return false
	}

	slog.Debug("wrote companion file", "path", outputPath, "records", len(records))

	return true
}

// Remove deletes the companion at outputPath, if any. Like Write, failures
// are logged and reported as false.
func (s *Serializer) Remove(ctx context.Context, outputPath m.Path) bool {
	if outputPath == "" || s.writer == nil {
		return false
	}

	if err := s.writer.RemoveFile(ctx, outputPath); err != nil {
		slog.Warn("failed to remove stale companion file", "path", outputPath, "error", err)
		return false
	}

	return true
}

// FormatRecords renders records in companion file format.
func FormatRecords(records []m.BoundaryRecord) []byte {
	var buf bytes.Buffer

	for _, r := range records {
		buf.WriteString(r.FilePath)
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatUint(uint64(r.StartLine), 10))
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatUint(uint64(r.EndLine), 10))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// ParseRecords reads companion file content back into records. File paths
// may contain spaces; the two line numbers are taken from the end of each
// line.
func ParseRecords(data []byte) ([]m.BoundaryRecord, error) {
	var records []m.BoundaryRecord

	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}

		record, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func parseRecord(line string) (m.BoundaryRecord, error) {
	endSep := strings.LastIndexByte(line, ' ')
	if endSep <= 0 {
		return m.BoundaryRecord{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	startSep := strings.LastIndexByte(line[:endSep], ' ')
	if startSep <= 0 {
		return m.BoundaryRecord{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	start, err := strconv.ParseUint(line[startSep+1:endSep], 10, 0)
	if err != nil {
		return m.BoundaryRecord{}, fmt.Errorf("%w: start line: %w", ErrMalformedRecord, err)
	}

	end, err := strconv.ParseUint(line[endSep+1:], 10, 0)
	if err != nil {
		return m.BoundaryRecord{}, fmt.Errorf("%w: end line: %w", ErrMalformedRecord, err)
	}

	return m.BoundaryRecord{
		FilePath:  line[:startSep],
		StartLine: uint(start),
		EndLine:   uint(end),
	}, nil
}
