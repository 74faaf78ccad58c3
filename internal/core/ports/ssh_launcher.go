package ports

// SSHLauncher hands a connection off to the system ssh client.
// On success Connect does not return: the current process is replaced.
type SSHLauncher interface {
	Connect(alias string) error
}
