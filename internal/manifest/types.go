package manifest

// ComponentRef selects a registered implementation within one category.
type ComponentRef struct {
	Key string `yaml:"key" json:"key"`
}

// Manifest describes a component selection for one decision loop.
type Manifest struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Requires    string            `yaml:"requires,omitempty" json:"requires,omitempty"`
	Model       *ComponentRef     `yaml:"model,omitempty" json:"model,omitempty"`
	TraceLogger *ComponentRef     `yaml:"trace_logger,omitempty" json:"trace_logger,omitempty"`
	Senders     []ComponentRef    `yaml:"senders,omitempty" json:"senders,omitempty"`
	Transport   *ComponentRef     `yaml:"transport,omitempty" json:"transport,omitempty"`
	Options     map[string]string `yaml:"options,omitempty" json:"options,omitempty"`
}
