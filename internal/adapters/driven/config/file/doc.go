// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - TemplateStore: user-editable answer templates over built-in defaults
//   - LoadRoutingTable: keyword table overrides read from a ConfigStore
//   - Watcher: debounced change notification for config and templates
package file
