package pla

// Command is the first word of a PLA command line.
type Command string

const (
	CommandChild      Command = "child"
	CommandDependency Command = "dep"
	CommandDuration   Command = "duration"
	CommandEntry      Command = "entry"
	CommandResource   Command = "res"
	CommandStart      Command = "start"
	CommandUnknown    Command = "unknown"
)

// knownCommands is the closed command table. Lookup is case-sensitive.
var knownCommands = map[string]Command{
	"child":    CommandChild,
	"dep":      CommandDependency,
	"duration": CommandDuration,
	"entry":    CommandEntry,
	"res":      CommandResource,
	"start":    CommandStart,
}

// ParseCommand maps a token to its Command, or CommandUnknown when the
// token is not in the table.
func ParseCommand(token string) Command {
	if c, ok := knownCommands[token]; ok {
		return c
	}
	return CommandUnknown
}

func (c Command) String() string {
	if _, ok := knownCommands[string(c)]; ok {
		return string(c)
	}
	return string(CommandUnknown)
}

// IsSubRecord reports whether lines of this command produce a sub-record.
func (c Command) IsSubRecord() bool {
	switch c {
	case CommandStart, CommandDuration, CommandDependency, CommandChild, CommandResource:
		return true
	}
	return false
}
