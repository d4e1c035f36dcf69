// Package filelines implements the line-range option type: a JSON-encoded
// mapping from file names to the line ranges that may be reformatted.
//
// The wire form is a JSON array of objects, for example:
//
//	[{"file":"src/lib.rs","range":[7,13]}]
//
// An absent or empty specification means every line of every file.
package filelines

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Range is an inclusive one-based line range.
type Range struct {
	Lo int
	Hi int
}

// Contains reports whether the line falls inside the range.
func (r Range) Contains(line int) bool {
	return line >= r.Lo && line <= r.Hi
}

// overlapsOrAdjoins reports whether two ranges can be merged into one.
func (r Range) overlapsOrAdjoins(other Range) bool {
	return r.Lo <= other.Hi+1 && other.Lo <= r.Hi+1
}

// merge returns the union of two overlapping or adjacent ranges.
func (r Range) merge(other Range) Range {
	return Range{Lo: min(r.Lo, other.Lo), Hi: max(r.Hi, other.Hi)}
}

// FileLines restricts formatting to specific line ranges per file. The zero
// value, like All, covers every line of every file.
type FileLines struct {
	ranges map[string][]Range
}

// All returns the unrestricted sentinel.
func All() FileLines {
	return FileLines{}
}

// New builds a FileLines from a per-file range mapping.
func New(ranges map[string][]Range) FileLines {
	if len(ranges) == 0 {
		return All()
	}
	normalized := make(map[string][]Range, len(ranges))
	for file, rs := range ranges {
		normalized[file] = normalize(rs)
	}
	return FileLines{ranges: normalized}
}

// Parse decodes the JSON wire form.
func Parse(s string) (FileLines, error) {
	if strings.TrimSpace(s) == "" || strings.TrimSpace(s) == "null" {
		return All(), nil
	}
	if !gjson.Valid(s) {
		return All(), fmt.Errorf("invalid file lines JSON: %s", s)
	}
	parsed := gjson.Parse(s)
	if !parsed.IsArray() {
		return All(), fmt.Errorf("file lines must be a JSON array, got: %s", s)
	}

	ranges := make(map[string][]Range)
	var parseErr error
	parsed.ForEach(func(_, entry gjson.Result) bool {
		file := entry.Get("file").String()
		if file == "" {
			parseErr = fmt.Errorf("file lines entry missing \"file\": %s", entry.Raw)
			return false
		}
		bounds := entry.Get("range").Array()
		if len(bounds) != 2 {
			parseErr = fmt.Errorf("file lines range for %s must be [lo, hi]", file)
			return false
		}
		lo, hi := int(bounds[0].Int()), int(bounds[1].Int())
		if lo < 1 || hi < lo {
			parseErr = fmt.Errorf("invalid line range [%d, %d] for %s", lo, hi, file)
			return false
		}
		ranges[file] = append(ranges[file], Range{Lo: lo, Hi: hi})
		return true
	})
	if parseErr != nil {
		return All(), parseErr
	}
	return New(ranges), nil
}

// IsAll reports whether every line of every file is covered.
func (fl FileLines) IsAll() bool {
	return len(fl.ranges) == 0
}

// Files returns the restricted file names in sorted order.
func (fl FileLines) Files() []string {
	files := make([]string, 0, len(fl.ranges))
	for file := range fl.ranges {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Ranges returns the ranges for a file. A nil result with ok=false means
// the file is not mentioned; when IsAll holds, every file is covered.
func (fl FileLines) Ranges(file string) ([]Range, bool) {
	rs, ok := fl.ranges[file]
	if !ok {
		return nil, false
	}
	out := make([]Range, len(rs))
	copy(out, rs)
	return out, true
}

// Covers reports whether the given line of the given file may be formatted.
func (fl FileLines) Covers(file string, line int) bool {
	if fl.IsAll() {
		return true
	}
	for _, r := range fl.ranges[file] {
		if r.Contains(line) {
			return true
		}
	}
	return false
}

// Equal reports whether two specifications cover the same lines.
func (fl FileLines) Equal(other FileLines) bool {
	return fl.String() == other.String()
}

// String renders the JSON wire form. The unrestricted sentinel renders as
// "null" to match the optional-valued file syntax.
func (fl FileLines) String() string {
	if fl.IsAll() {
		return "null"
	}
	out := "[]"
	for _, file := range fl.Files() {
		for _, r := range fl.ranges[file] {
			entry := map[string]any{
				"file":  file,
				"range": []int{r.Lo, r.Hi},
			}
			out, _ = sjson.Set(out, "-1", entry)
		}
	}
	return out
}

// normalize sorts ranges and merges overlapping or adjacent ones.
func normalize(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	sorted := make([]Range, len(rs))
	copy(sorted, rs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})

	merged := sorted[:1]
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if last.overlapsOrAdjoins(r) {
			*last = last.merge(r)
		} else {
			merged = append(merged, r)
		}
	}
	return merged
}
