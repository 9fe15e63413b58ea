package compose

import (
	"fmt"

	"github.com/arifer612/undock-compose/internal/template"
)

// Options controls assembly behavior.
type Options struct {
	// ExtendedLabels mirrors each Config entry's documentation
	// attributes into net.unraid.docker.config.* labels.
	ExtendedLabels bool
}

// Build assembles a complete compose document from a parsed template:
// one service, one external network.
func Build(doc *template.Document, opts Options) (*File, error) {
	service, err := buildService(doc, opts)
	if err != nil {
		return nil, err
	}

	name := doc.Tag("Name")
	return &File{
		Version:  Version,
		Services: map[string]Service{name: service},
		Networks: buildNetworks(doc),
	}, nil
}

// buildService combines classified Config entries with the synthesized
// unRAID labels and environment. Synthesized keys are applied last, so
// they win on collision.
func buildService(doc *template.Document, opts Options) (Service, error) {
	classified, err := Classify(doc.Configs, opts.ExtendedLabels)
	if err != nil {
		return Service{}, fmt.Errorf("classify configs: %w", err)
	}

	for k, v := range UnraidLabels(doc) {
		classified.Labels[k] = v
	}
	for k, v := range UnraidEnvironment(doc) {
		classified.Environment[k] = v
	}

	extra := ParseExtraParams(doc.Tag("ExtraParams"))

	// The Network tag is authoritative; a --net flag in ExtraParams is
	// only consulted when the tag is empty.
	network := doc.Tag("Network")
	if network == "" {
		network = extra[KeyNetworks]
	}

	return Service{
		ContainerName: doc.Tag("Name"),
		Image:         doc.Tag("Repository"),
		// Anything but the literal text "false", including an absent
		// tag, means privileged. Kept verbatim from the template
		// format's observed semantics.
		Privileged:  doc.Tag("Privileged") != "false",
		Ports:       classified.Ports,
		Volumes:     classified.Volumes,
		Environment: classified.Environment,
		Labels:      classified.Labels,
		Devices:     classified.Devices,
		Networks:    []string{network},
		Restart:     extra[KeyRestart],
		CPUSet:      doc.Tag("CPUset"),
		Command:     doc.Tag("PostArgs"),
	}, nil
}

// buildNetworks declares the single external network the service joins.
func buildNetworks(doc *template.Document) map[string]Network {
	network := doc.Tag("Network")
	if network == "" {
		network = ParseExtraParams(doc.Tag("ExtraParams"))[KeyNetworks]
	}
	return map[string]Network{
		network: {External: true, Name: network},
	}
}
