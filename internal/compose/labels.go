package compose

import "github.com/arifer612/undock-compose/internal/template"

// ManagedLabel marks containers produced by this tool so the unRAID UI
// knows they are compose-managed.
const ManagedLabel = "net.unraid.docker.managed"

// UnraidLabels maps the template's informational tags into the
// net.unraid.docker label namespace.
func UnraidLabels(doc *template.Document) map[string]string {
	return map[string]string{
		"net.unraid.docker.registry":    doc.Tag("Registry"),
		"net.unraid.docker.shell":       doc.Tag("Shell"),
		"net.unraid.docker.support":     doc.Tag("Support"),
		"net.unraid.docker.project":     doc.Tag("Project"),
		"net.unraid.docker.overview":    doc.Tag("Overview"),
		"net.unraid.docker.category":    doc.Tag("Category"),
		"net.unraid.docker.icon":        doc.Tag("Icon"),
		"net.unraid.docker.webui":       doc.Tag("WebUI"),
		ManagedLabel:                    "compose",
		"net.unraid.docker.template":    doc.Tag("TemplateURL"),
		"net.unraid.docker.installed":   doc.Tag("DateInstalled"),
		"net.unraid.docker.donate.text": doc.Tag("DonateText"),
		"net.unraid.docker.donate.link": doc.Tag("DonateLink"),
		"net.unraid.docker.requires":    doc.Tag("Requires"),
	}
}

// UnraidEnvironment returns the default environment unRAID injects into
// managed containers.
func UnraidEnvironment(doc *template.Document) map[string]string {
	name := doc.Tag("Name")
	return map[string]string{
		// The host timezone is not detectable from the template.
		"TZ":                 "UTC",
		"HOST_OS":            "Unraid",
		"HOST_HOSTNAME":      name,
		"HOST_CONTAINERNAME": name,
	}
}
