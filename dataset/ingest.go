package dataset

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/monjearse/eda-app/types"
)

// File is one uploaded file: a name (used to derive the dataset name) and
// its raw bytes. ZIP archives are expanded; every .csv member becomes its
// own dataset.
type File struct {
	Name string
	Data []byte
}

// ReadAny converts uploaded CSV files and ZIP archives of CSVs into named
// datasets. Column names are trimmed of surrounding whitespace; dataset
// names are the base filename without extension, and a duplicate name
// overwrites the earlier dataset (last write wins).
func ReadAny(files []File) (map[string]*Dataset, error) {
	datasets := map[string]*Dataset{}

	for _, f := range files {
		lower := strings.ToLower(f.Name)
		switch {
		case strings.HasSuffix(lower, ".zip"):
			zr, err := zip.NewReader(bytes.NewReader(f.Data), int64(len(f.Data)))
			if err != nil {
				return nil, types.NewError(types.ErrIngestFailed,
					fmt.Sprintf("invalid zip archive %q", f.Name)).WithCause(err)
			}
			for _, member := range zr.File {
				if !strings.HasSuffix(strings.ToLower(member.Name), ".csv") {
					continue
				}
				rc, err := member.Open()
				if err != nil {
					return nil, types.NewError(types.ErrIngestFailed,
						fmt.Sprintf("cannot open %q in %q", member.Name, f.Name)).WithCause(err)
				}
				var buf bytes.Buffer
				_, err = buf.ReadFrom(rc)
				rc.Close()
				if err != nil {
					return nil, types.NewError(types.ErrIngestFailed,
						fmt.Sprintf("cannot read %q in %q", member.Name, f.Name)).WithCause(err)
				}
				ds, err := parseCSV(member.Name, buf.Bytes())
				if err != nil {
					return nil, err
				}
				datasets[ds.Name] = ds
			}

		case strings.HasSuffix(lower, ".csv"):
			ds, err := parseCSV(f.Name, f.Data)
			if err != nil {
				return nil, err
			}
			datasets[ds.Name] = ds
		}
	}

	return datasets, nil
}

// datasetName derives the dataset name from a file path: base name without
// the extension.
func datasetName(p string) string {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// sniffDelimiter picks the separator that occurs most often in the header
// line, among comma, semicolon and tab.
func sniffDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	best, bestCount := ',', bytes.Count(header, []byte{','})
	for _, cand := range []byte{';', '\t'} {
		if n := bytes.Count(header, []byte{cand}); n > bestCount {
			best, bestCount = rune(cand), n
		}
	}
	return best
}

func parseCSV(name string, data []byte) (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, types.NewError(types.ErrIngestFailed,
			fmt.Sprintf("cannot parse %q", name)).WithCause(err)
	}
	if len(records) == 0 {
		return nil, types.NewError(types.ErrIngestFailed,
			fmt.Sprintf("%q has no header row", name))
	}

	header := records[0]
	rows := records[1:]
	cols := make([]Column, len(header))

	for j, h := range header {
		raw := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				raw[i] = strings.TrimSpace(row[j])
			}
		}
		cols[j] = buildColumn(strings.TrimSpace(h), raw)
	}

	return &Dataset{
		Name:    datasetName(name),
		Columns: cols,
		Rows:    len(rows),
	}, nil
}

// buildColumn types a column: numeric when every non-missing cell parses as
// a float and at least one cell is non-missing, categorical otherwise.
func buildColumn(name string, raw []string) Column {
	floats := make([]float64, len(raw))
	numeric := false
	for i, cell := range raw {
		if cell == "" {
			floats[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(normalizeDecimal(cell), 64)
		if err != nil {
			return Column{Name: name, Kind: Categorical, Values: raw}
		}
		floats[i] = v
		numeric = true
	}
	if !numeric {
		return Column{Name: name, Kind: Categorical, Values: raw}
	}
	return Column{Name: name, Kind: Numeric, Floats: floats}
}

// normalizeDecimal accepts "3,14" in semicolon-separated exports.
func normalizeDecimal(cell string) string {
	if strings.Count(cell, ",") == 1 && !strings.Contains(cell, ".") {
		return strings.Replace(cell, ",", ".", 1)
	}
	return cell
}
