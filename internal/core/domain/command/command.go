package command

// Name is one of the closed set of operations sshez understands.
type Name string

const (
	Connect Name = "connect"
	Add     Name = "add"
	Remove  Name = "remove"
	List    Name = "list"
	Reset   Name = "reset"
)

// Options carries the flags the command parser collected.
type Options struct {
	Test    bool // dry run: form the block but do not write it
	Verbose bool
	// ExtraLines are literal config lines appended to an added block, in order.
	ExtraLines []string
}

// Request is what the command parser hands to the alias manager.
type Request struct {
	Name Name
	// Args are positional: alias for connect/remove, alias, user, host for add.
	Args    []string
	Options Options
	// ArgErr is set when the parser already rejected the input. No file
	// operation runs for such a request.
	ArgErr error
}
