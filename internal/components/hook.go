package components

// platformHook is the deployment-specific registration routine. It runs
// before the built-ins during default registration; on a key collision the
// built-in registered afterwards wins.
var platformHook func(*Set)

// SetPlatformHook installs a routine that registers deployment-specific
// creators (cloud senders, remote model transports). It must be called
// before the first Acquire; a hook installed later only takes effect on
// the next fresh 0→1 initialization cycle.
func SetPlatformHook(fn func(*Set)) {
	mu.Lock()
	defer mu.Unlock()
	platformHook = fn
}
