package vocab

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// LoadStats summarizes a dictionary load.
type LoadStats struct {
	Loaded  int
	Skipped int
}

// LoadFile reads a frequency dictionary. Files ending in .csv need a header
// with "word" and "frequency" columns; anything else is read as
// whitespace-separated "word count" lines. Malformed rows are skipped.
func LoadFile(path string) ([]Entry, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("stat dictionary %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, LoadStats{}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("mmap dictionary %s: %w", path, err)
	}
	defer data.Unmap()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseCSV(bytes.NewReader(data))
	}
	return ParseText(bytes.NewReader(data))
}

// ParseText reads "word count" lines.
func ParseText(r io.Reader) ([]Entry, LoadStats, error) {
	var (
		entries []Entry
		stats   LoadStats
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			stats.Skipped++
			continue
		}
		count, ok := parseFrequency(parts[1])
		if !ok {
			stats.Skipped++
			continue
		}
		entries = append(entries, Entry{Word: parts[0], Frequency: count})
	}
	if err := s.Err(); err != nil {
		return nil, stats, fmt.Errorf("read dictionary: %w", err)
	}
	stats.Loaded = len(entries)
	return entries, stats, nil
}

// ParseCSV reads a table with "word" and "frequency" header columns.
func ParseCSV(r io.Reader) ([]Entry, LoadStats, error) {
	var stats LoadStats
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, stats, nil
	}
	if err != nil {
		return nil, stats, fmt.Errorf("read csv header: %w", err)
	}
	wordCol, freqCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "word":
			wordCol = i
		case "frequency":
			freqCol = i
		}
	}
	if wordCol < 0 || freqCol < 0 {
		return nil, stats, fmt.Errorf("csv header %q: need word and frequency columns", header)
	}

	var entries []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				stats.Skipped++
				continue
			}
			return nil, stats, fmt.Errorf("read csv: %w", err)
		}
		if wordCol >= len(rec) || freqCol >= len(rec) {
			stats.Skipped++
			continue
		}
		word := strings.TrimSpace(rec[wordCol])
		count, ok := parseFrequency(rec[freqCol])
		if word == "" || !ok {
			stats.Skipped++
			continue
		}
		entries = append(entries, Entry{Word: word, Frequency: count})
	}
	stats.Loaded = len(entries)
	return entries, stats, nil
}

func parseFrequency(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	count, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fv, err2 := strconv.ParseFloat(s, 64)
		if err2 != nil || math.IsNaN(fv) || math.IsInf(fv, 0) || fv >= math.MaxInt64 {
			return 0, false
		}
		count = int64(fv)
	}
	if count < 0 {
		return 0, false
	}
	return count, true
}
