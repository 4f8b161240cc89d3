package pla

// HierarchicalLine is a known line tagged with the id of the entry that owns
// it. ParentID is nil for entry headers, and for commands that appear before
// any header.
type HierarchicalLine struct {
	LineNo   int
	Command  Command
	Text     string
	ParentID *uint32
}

// IsEntry reports whether the line is an entry header.
func (h HierarchicalLine) IsEntry() bool {
	return h.Command == CommandEntry
}

// hierarchyBuilder folds classified lines into hierarchical ones. Its only
// state is the id of the most recent entry header.
type hierarchyBuilder struct {
	current *uint32
}

func (b *hierarchyBuilder) next(line Line) (HierarchicalLine, error) {
	if line.Command == CommandEntry {
		id, _, err := parseEntryHeader(line.Text)
		if err != nil {
			return HierarchicalLine{}, atLine(err, line.LineNo)
		}
		b.current = &id
		return HierarchicalLine{LineNo: line.LineNo, Command: CommandEntry, Text: line.Text}, nil
	}

	var parent *uint32
	if b.current != nil {
		id := *b.current
		parent = &id
	}
	return HierarchicalLine{LineNo: line.LineNo, Command: line.Command, Text: line.Text, ParentID: parent}, nil
}

// BuildHierarchy assigns every command line to the entry header that most
// recently preceded it. Unknown lines are skipped without touching the
// current parent.
func BuildHierarchy(lines []Line) ([]HierarchicalLine, error) {
	var b hierarchyBuilder
	out := make([]HierarchicalLine, 0, len(lines))
	for _, line := range lines {
		if line.Kind == LineUnknown {
			continue
		}
		hl, err := b.next(line)
		if err != nil {
			return nil, err
		}
		out = append(out, hl)
	}
	return out, nil
}
