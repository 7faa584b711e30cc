package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestViewString(t *testing.T) {
	v := viper.New()
	v.Set("observation.file.name", "custom.dat")

	view := NewView(v)

	if got := view.String("observation.file.name", "observation.fb.data"); got != "custom.dat" {
		t.Fatalf("String() = %q, want %q", got, "custom.dat")
	}
	if got := view.String("interaction.file.name", "interaction.fb.data"); got != "interaction.fb.data" {
		t.Fatalf("String() for unset key = %q, want default", got)
	}
}

func TestViewNilSafe(t *testing.T) {
	var view *View
	if got := view.String("anything", "fallback"); got != "fallback" {
		t.Fatalf("nil View returned %q, want %q", got, "fallback")
	}
}

func TestViewEmptyValueIsNotUnset(t *testing.T) {
	v := viper.New()
	v.Set("model.key", "")

	view := NewView(v)
	if got := view.String("model.key", "VW"); got != "" {
		t.Fatalf("explicitly empty value returned %q, want empty string", got)
	}
}
