package pla

import "time"

// SubRecord is a typed fact attached to an entry. The set of implementations
// is closed: Start, Duration, Dependency, Child and Resource. Consumers switch
// on the concrete type.
type SubRecord interface {
	ParentID() uint32
	Command() Command
	subRecord()
}

// Start is the scheduling origin of an entry.
type Start struct {
	Parent uint32
	Date   time.Time // midnight UTC
	Hour   uint32    // 0..23
}

// Duration is an entry's length in days.
type Duration struct {
	Parent uint32
	Length uint32
}

// Dependency names an entry that must finish first.
type Dependency struct {
	Parent       uint32
	DependencyID uint32
}

// Child names an entry grouped under the parent.
type Child struct {
	Parent  uint32
	ChildID uint32
}

// Resource names something the entry occupies.
type Resource struct {
	Parent uint32
	Name   string
}

func (s Start) ParentID() uint32      { return s.Parent }
func (d Duration) ParentID() uint32   { return d.Parent }
func (d Dependency) ParentID() uint32 { return d.Parent }
func (c Child) ParentID() uint32      { return c.Parent }
func (r Resource) ParentID() uint32   { return r.Parent }

func (Start) Command() Command      { return CommandStart }
func (Duration) Command() Command   { return CommandDuration }
func (Dependency) Command() Command { return CommandDependency }
func (Child) Command() Command      { return CommandChild }
func (Resource) Command() Command   { return CommandResource }

func (Start) subRecord()      {}
func (Duration) subRecord()   {}
func (Dependency) subRecord() {}
func (Child) subRecord()      {}
func (Resource) subRecord()   {}

// Compile-time verification that every variant is a SubRecord.
var (
	_ SubRecord = Start{}
	_ SubRecord = Duration{}
	_ SubRecord = Dependency{}
	_ SubRecord = Child{}
	_ SubRecord = Resource{}
)
