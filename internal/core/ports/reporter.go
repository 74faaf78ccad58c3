package ports

// Reporter is the output sink user-facing messages are written to.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
	// List renders names under a heading, preserving their order.
	List(heading string, names []string)
}
