// Package compose assembles Docker Compose documents from parsed
// unRAID templates: classifying Config entries, synthesizing vendor
// labels and environment, and serializing the result.
package compose

// Version is the compose file format marker written to every output.
const Version = "3.7"

// File is the top-level compose document.
type File struct {
	Version  string             `yaml:"version"`
	Services map[string]Service `yaml:"services"`
	Networks map[string]Network `yaml:"networks"`
}

// PortMapping is a long-syntax compose port entry.
type PortMapping struct {
	Target    int    `yaml:"target"`
	Published int    `yaml:"published"`
	Protocol  string `yaml:"protocol"`
}

// Service is one compose service definition.
type Service struct {
	ContainerName string            `yaml:"container_name"`
	Image         string            `yaml:"image"`
	Privileged    bool              `yaml:"privileged"`
	Ports         []PortMapping     `yaml:"ports"`
	Volumes       []string          `yaml:"volumes"`
	Environment   map[string]string `yaml:"environment"`
	Labels        map[string]string `yaml:"labels"`
	Devices       []string          `yaml:"devices"`
	Networks      []string          `yaml:"networks"`
	Restart       string            `yaml:"restart,omitempty"`
	CPUSet        string            `yaml:"cpuset"`
	Command       string            `yaml:"command"`
}

// Network is one compose network definition. Templates always reference
// an existing network, so it is marked external.
type Network struct {
	External bool   `yaml:"external"`
	Name     string `yaml:"name"`
}
