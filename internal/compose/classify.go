package compose

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arifer612/undock-compose/internal/template"
)

// Config entry types that receive a typed placement in the output.
const (
	TypePort     = "Port"
	TypePath     = "Path"
	TypeDevices  = "Devices"
	TypeVariable = "Variable"
	TypeLabel    = "Label"
)

// Classification errors.
var (
	// ErrMissingTarget indicates a typed Config entry without a Target
	// attribute. The upstream tool concatenated a null marker into the
	// output instead; here it is a hard error.
	ErrMissingTarget = errors.New("missing Target attribute")

	// ErrInvalidPort indicates a Port entry whose target or published
	// value is not an integer.
	ErrInvalidPort = errors.New("invalid port number")
)

// Classified holds the typed collections extracted from a template's
// Config entries. List order follows document order; map entries with
// the same key are last-write-wins.
type Classified struct {
	Ports       []PortMapping
	Volumes     []string
	Devices     []string
	Environment map[string]string
	Labels      map[string]string
}

// Classify routes each Config entry into the typed collection its Type
// declares. Unrecognized types get no typed placement but, like every
// entry, still contribute extended labels when extendedLabels is set.
func Classify(entries []template.Config, extendedLabels bool) (*Classified, error) {
	out := &Classified{
		Ports:       []PortMapping{},
		Volumes:     []string{},
		Devices:     []string{},
		Environment: map[string]string{},
		Labels:      map[string]string{},
	}

	for _, entry := range entries {
		value := entry.EffectiveValue()

		switch entry.Type {
		case TypePort:
			if entry.Target == "" {
				return nil, fmt.Errorf("config %q: %w", entry.Name, ErrMissingTarget)
			}
			target, err := strconv.Atoi(entry.Target)
			if err != nil {
				return nil, fmt.Errorf("config %q: target %q: %w", entry.Name, entry.Target, ErrInvalidPort)
			}
			published, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("config %q: published %q: %w", entry.Name, value, ErrInvalidPort)
			}
			out.Ports = append(out.Ports, PortMapping{
				Target:    target,
				Published: published,
				Protocol:  entry.Mode,
			})

		case TypePath:
			spec, err := mountSpec(entry, value)
			if err != nil {
				return nil, err
			}
			out.Volumes = append(out.Volumes, spec)

		case TypeDevices:
			spec, err := mountSpec(entry, value)
			if err != nil {
				return nil, err
			}
			out.Devices = append(out.Devices, spec)

		case TypeVariable:
			if entry.Target == "" {
				return nil, fmt.Errorf("config %q: %w", entry.Name, ErrMissingTarget)
			}
			out.Environment[entry.Target] = value

		case TypeLabel:
			if entry.Target == "" {
				return nil, fmt.Errorf("config %q: %w", entry.Name, ErrMissingTarget)
			}
			out.Labels[entry.Target] = value
		}

		if extendedLabels {
			addExtendedLabels(out.Labels, entry)
		}
	}

	return out, nil
}

// mountSpec renders a Path or Devices entry as "value:target" with an
// optional ":mode" suffix.
func mountSpec(entry template.Config, value string) (string, error) {
	if entry.Target == "" {
		return "", fmt.Errorf("config %q: %w", entry.Name, ErrMissingTarget)
	}
	spec := value + ":" + entry.Target
	if entry.Mode != "" {
		spec += ":" + entry.Mode
	}
	return spec, nil
}

// addExtendedLabels copies the entry's documentation attributes into
// the vendor config label namespace. Absent attributes come through as
// empty strings.
func addExtendedLabels(labels map[string]string, entry template.Config) {
	prefix := entry.LabelPrefix()
	labels[prefix+".default"] = entry.Default
	labels[prefix+".description"] = entry.Description
	labels[prefix+".display"] = entry.Display
	labels[prefix+".required"] = entry.Required
	labels[prefix+".mask"] = entry.Mask
}
