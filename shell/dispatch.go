package shell

// ArgMode controls how a command name is matched against an input line.
type ArgMode uint8

const (
	// NoArg commands match the whole line exactly.
	NoArg ArgMode = iota

	// OptionalArg commands match either the bare name or the name
	// followed by a space and an argument.
	OptionalArg

	// RequiredArg commands only match the name followed by a space; the
	// bare name is not recognized.
	RequiredArg
)

// HandlerFn renders the output of a command. The arg slice holds the raw
// remainder of the line after "name " and is empty for bare invocations.
type HandlerFn func(s *Session, arg []byte)

// Command is an entry in a dispatch table.
type Command struct {
	Name string
	Arg  ArgMode
	Run  HandlerFn

	// Usage and Help are shown by the help command. Commands with an
	// empty Help are not listed.
	Usage string
	Help  string
}

// match reports whether line invokes cmd and returns the argument.
func (cmd *Command) match(line []byte) ([]byte, bool) {
	if cmd.Arg != RequiredArg && string(line) == cmd.Name {
		return nil, true
	}

	nameLen := len(cmd.Name)
	if cmd.Arg != NoArg && len(line) > nameLen && line[nameLen] == ' ' && string(line[:nameLen]) == cmd.Name {
		return line[nameLen+1:], true
	}

	return nil, false
}

// Variant is a complete shell configuration: the command table together
// with the prompt, banner, file catalog and not-found message it uses.
type Variant struct {
	Name     string
	Commands []Command
	Catalog  *Catalog

	// Prompt is printed before every line is read.
	Prompt func(s *Session)

	// Banner is printed once after the screen is cleared at startup.
	Banner func(s *Session)

	// NotFound is invoked for non-empty lines that match no command.
	NotFound func(s *Session, line []byte)
}

// Lookup returns the first command matching line together with its
// argument. The line is expected to be trimmed.
func (v *Variant) Lookup(line []byte) (*Command, []byte) {
	for i := range v.Commands {
		if arg, ok := v.Commands[i].match(line); ok {
			return &v.Commands[i], arg
		}
	}

	return nil, nil
}

// trimSpaces strips leading and trailing blanks from line.
func trimSpaces(line []byte) []byte {
	start, end := 0, len(line)
	for start < end && line[start] == ' ' {
		start++
	}
	for end > start && line[end-1] == ' ' {
		end--
	}

	return line[start:end]
}
