package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/pla2html/internal/pla"
	"gopkg.in/yaml.v3"
)

// entryDoc is the exported shape of an entry. Children is omitted for
// entries without sub-records.
type entryDoc struct {
	ID          uint32         `json:"id" yaml:"id"`
	Description string         `json:"description" yaml:"description"`
	Children    []subRecordDoc `json:"children,omitempty" yaml:"children,omitempty"`
}

type subRecordDoc struct {
	Kind   string  `json:"kind" yaml:"kind"`
	Parent uint32  `json:"parent" yaml:"parent"`
	Date   string  `json:"date,omitempty" yaml:"date,omitempty"`
	Hour   *uint32 `json:"hour,omitempty" yaml:"hour,omitempty"`
	Days   *uint32 `json:"days,omitempty" yaml:"days,omitempty"`
	Ref    *uint32 `json:"ref,omitempty" yaml:"ref,omitempty"`
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
}

func toEntryDocs(entries []pla.Entry) []entryDoc {
	docs := make([]entryDoc, 0, len(entries))
	for _, e := range entries {
		doc := entryDoc{ID: e.ID, Description: e.Description}
		for _, rec := range e.Children {
			doc.Children = append(doc.Children, toSubRecordDoc(rec))
		}
		docs = append(docs, doc)
	}
	return docs
}

func toSubRecordDoc(rec pla.SubRecord) subRecordDoc {
	doc := subRecordDoc{Kind: rec.Command().String(), Parent: rec.ParentID()}
	switch r := rec.(type) {
	case pla.Start:
		doc.Date = r.Date.Format(dateLayout)
		doc.Hour = &r.Hour
	case pla.Duration:
		doc.Days = &r.Length
	case pla.Dependency:
		doc.Ref = &r.DependencyID
	case pla.Child:
		doc.Ref = &r.ChildID
	case pla.Resource:
		doc.Name = r.Name
	}
	return doc
}

// writeEntries encodes entries as JSON or YAML.
func writeEntries(w io.Writer, entries []pla.Entry, format exportFormat) error {
	docs := toEntryDocs(entries)
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported export format %q", format)
}
