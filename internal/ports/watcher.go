package ports

// Watcher monitors the cached pages directory for changes and triggers a
// refit + re-enrich cycle. The adapter (fsnotify) must debounce editor and
// download churn before invoking onChange. Only one Watch call should be
// active at a time.
type Watcher interface {
	// Watch starts monitoring dir. onChange is called with the absolute
	// path of each changed page file. The callback may be invoked from any
	// goroutine. Returns an error if the directory doesn't exist or
	// permissions are insufficient.
	Watch(dir string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
