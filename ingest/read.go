package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrColumnCount indicates a data row without exactly three columns.
	ErrColumnCount = errors.New("ingest: expected three columns")
	// ErrBadNumber indicates a column that does not parse as float64.
	ErrBadNumber = errors.New("ingest: malformed number")
	// ErrEmptyFile indicates a measurement file with no data rows.
	ErrEmptyFile = errors.New("ingest: no data rows")
)

// ProfileData holds one residue's raw measurement columns, co-indexed.
type ProfileData struct {
	Conditions    []float64 // offsets (Hz) or cycle counts
	Intensities   []float64
	IntensityErrs []float64
}

// Len returns the number of data rows.
func (d ProfileData) Len() int { return len(d.Conditions) }

// ReadProfileData parses a three-column measurement file. Blank lines and
// '#' comments are skipped; a first non-numeric row is accepted as the
// column header.
func ReadProfileData(path string) (ProfileData, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProfileData{}, fmt.Errorf("ReadProfileData: %w", err)
	}
	defer f.Close()

	var data ProfileData
	sc := bufio.NewScanner(f)
	lineNo := 0
	first := true
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if first {
			first = false
			if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
				continue // header row
			}
		}
		if len(fields) != 3 {
			return ProfileData{}, fmt.Errorf("ReadProfileData %s:%d: got %d columns: %w",
				path, lineNo, len(fields), ErrColumnCount)
		}
		row := make([]float64, 3)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return ProfileData{}, fmt.Errorf("ReadProfileData %s:%d: %q: %w",
					path, lineNo, field, ErrBadNumber)
			}
			row[i] = v
		}
		data.Conditions = append(data.Conditions, row[0])
		data.Intensities = append(data.Intensities, row[1])
		data.IntensityErrs = append(data.IntensityErrs, row[2])
	}
	if err := sc.Err(); err != nil {
		return ProfileData{}, fmt.Errorf("ReadProfileData %s: %w", path, err)
	}
	if data.Len() == 0 {
		return ProfileData{}, fmt.Errorf("ReadProfileData %s: %w", path, ErrEmptyFile)
	}

	return data, nil
}

// ReadProfiles reads the named measurement files under dir, keyed by profile
// name. Profiles absent from a non-empty include list, or present in the
// exclude list, are skipped.
func ReadProfiles(dir string, filenames map[string]string, include, exclude []string) (map[string]ProfileData, error) {
	profiles := make(map[string]ProfileData, len(filenames))
	for name, filename := range filenames {
		if len(include) > 0 && !slices.Contains(include, name) {
			continue
		}
		if slices.Contains(exclude, name) {
			continue
		}
		data, err := ReadProfileData(filepath.Join(dir, filename))
		if err != nil {
			return nil, fmt.Errorf("ReadProfiles %s: %w", name, err)
		}
		profiles[name] = data
	}

	return profiles, nil
}
