package ports

// Notifier carries callbacks from the core into the host build tool.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// AddDependency registers path as a build input, so the host's own
	// watcher covers it going forward. Called for declaration files the
	// loader pulled in on demand.
	AddDependency(path string)

	// Warning surfaces a non-fatal problem to the host before any file is
	// compiled (e.g. configuration-parsing errors).
	Warning(err error)
}
