// Package registry manages the persistent WLED device registry.
//
// A Registry maps device names to network addresses and tracks which
// device is the default target. It is persisted as a hand-editable TOML
// file under the user's home directory (see DefaultPath) and loaded once
// per invocation. Concurrent invocations are not arbitrated: the later
// save wins.
package registry
