package pla

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser holds the entries of one parsed PLA document and an id index over
// them. It is immutable after Parse returns; every accessor hands out copies,
// so a Parser may be shared between goroutines.
type Parser struct {
	entries []Entry
	index   map[uint32]int // entry id -> position in entries
}

// Parse parses PLA source text. Any line ending convention is accepted and
// blank or unrecognised lines are ignored. The first error aborts the parse
// and no Parser is returned.
func Parse(source string) (*Parser, error) {
	lines := classifyLines(source)

	hierarchy, err := BuildHierarchy(lines)
	if err != nil {
		return nil, err
	}

	records, err := parseSubRecords(hierarchy)
	if err != nil {
		return nil, err
	}

	entries, err := assembleEntries(hierarchy, records)
	if err != nil {
		return nil, err
	}

	return &Parser{entries: entries, index: buildIndex(entries)}, nil
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) (*Parser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading pla source: %w", err)
	}
	return Parse(string(data))
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// Entries returns copies of all entries in source order, duplicates included.
func (p *Parser) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of entries.
func (p *Parser) Len() int {
	return len(p.entries)
}

// GetEntryByID returns a copy of the entry with the given id. When several
// headers share an id, the last one in the source wins.
func (p *Parser) GetEntryByID(id uint32) (Entry, bool) {
	pos, ok := p.index[id]
	if !ok {
		return Entry{}, false
	}
	return p.entries[pos].Clone(), true
}

func classifyLines(source string) []Line {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")

	var lines []Line
	for i, raw := range strings.Split(source, "\n") {
		if line, ok := ClassifyLine(i+1, raw); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func parseSubRecords(hierarchy []HierarchicalLine) ([]SubRecord, error) {
	var records []SubRecord
	for _, hl := range hierarchy {
		if !hl.Command.IsSubRecord() {
			continue
		}
		rec, err := ParseSubRecord(hl)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// assembleEntries builds one Entry per header line and attaches, in source
// order, every sub-record whose parent is that entry's id.
func assembleEntries(hierarchy []HierarchicalLine, records []SubRecord) ([]Entry, error) {
	byParent := make(map[uint32][]SubRecord)
	for _, rec := range records {
		byParent[rec.ParentID()] = append(byParent[rec.ParentID()], rec)
	}

	var entries []Entry
	for _, hl := range hierarchy {
		if !hl.IsEntry() {
			continue
		}
		id, desc, err := parseEntryHeader(hl.Text)
		if err != nil {
			return nil, atLine(err, hl.LineNo)
		}
		entry := Entry{ID: id, Description: desc}
		if children := byParent[id]; len(children) > 0 {
			entry.Children = make([]SubRecord, len(children))
			copy(entry.Children, children)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func buildIndex(entries []Entry) map[uint32]int {
	index := make(map[uint32]int, len(entries))
	for i, e := range entries {
		index[e.ID] = i
	}
	return index
}
