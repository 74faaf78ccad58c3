package ports

/*
SSHConfigStore defines the interface for reading from and rewriting the SSH
client configuration file. This is a driven port, implemented by a repository
adapter that understands Host block boundaries. It knows nothing about commands.

Every error returned by an implementation is marked with outcome.ErrPermission.
*/
type SSHConfigStore interface {
	/*
	   AliasNames returns the alias token of every Host header, in file order.
	   A missing file yields no aliases and no error.
	*/
	AliasNames() ([]string, error)

	// ReadLines returns the raw lines of the file, terminators included.
	ReadLines() ([]string, error)

	// AppendBlock appends text verbatim, creating the file if needed.
	AppendBlock(text string) error

	/*
	   RewriteWithout replaces the file with a copy that omits every block for
	   name. It reports whether any line was removed. The original file is left
	   untouched if the rewrite fails at any point.
	*/
	RewriteWithout(name string) (bool, error)

	// Truncate empties the file.
	Truncate() error

	// SetRestrictedPermissions sets the file mode to 0600.
	SetRestrictedPermissions() error

	// Path returns the location of the config file.
	Path() string
}
