// Package manifest handles parsing and validation of component manifests:
// YAML documents that select one registered implementation per pluggable
// category (model, trace-logger, senders, data-transport) plus raw
// configuration options. Manifests are validated against a JSON Schema and
// may pin a semver constraint on the component API version.
package manifest
