package config

import "github.com/spf13/viper"

// View is the read-only configuration lookup handed to component creators.
// It deliberately exposes only "get with default": creators must not mutate
// configuration or enumerate it.
type View struct {
	v *viper.Viper
}

// NewView wraps a viper instance in a read-only View.
func NewView(v *viper.Viper) *View {
	return &View{v: v}
}

// Default returns a View over the process-wide viper instance populated
// by Load().
func Default() *View {
	return &View{v: viper.GetViper()}
}

// String returns the value for key, or def when the key is unset.
// A nil View behaves as if every key were unset.
func (c *View) String(key, def string) string {
	if c == nil || c.v == nil || !c.v.IsSet(key) {
		return def
	}
	return c.v.GetString(key)
}
