package input

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourceMouse indicates the action originated from mouse input.
	SourceMouse
	// SourceCommand indicates the action came from the ":" command line.
	SourceCommand
	// SourceTerminal indicates a screen event such as a resize.
	SourceTerminal
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	case SourceCommand:
		return "command"
	case SourceTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Text for insert operations, search patterns and paths.
	Text string

	// X and Y are the screen cell of a click.
	X, Y int
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "file.save", "cursor.moveDown").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource
}

// NewAction creates a keyboard action with no arguments.
func NewAction(name string) Action {
	return Action{Name: name, Source: SourceKeyboard}
}

// WithText returns a copy of the action with the text argument set.
func (a Action) WithText(text string) Action {
	a.Args.Text = text
	return a
}

// WithSource returns a copy of the action with the source set.
func (a Action) WithSource(source ActionSource) Action {
	a.Source = source
	return a
}
