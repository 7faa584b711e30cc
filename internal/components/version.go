package components

// APIVersion is the semantic version of the component registry API.
// Manifest `requires` constraints are checked against it.
const APIVersion = "1.0.0"
