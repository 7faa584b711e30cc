// Package config manages user settings stored at ~/.decisionkit/config.yaml,
// with DECISIONKIT_* environment variables taking precedence. It also
// provides View, the read-only key/value lookup that component creators
// receive from the registry.
package config
