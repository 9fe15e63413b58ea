// Package template parses unRAID Docker application templates.
//
// An unRAID template is an XML document with a <Container> root whose
// children are either singular informational tags (Name, Repository,
// Network, ...) or repeated <Config> entries describing ports, paths,
// devices, variables, and labels.
package template

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Config is one repeated <Config> entry from the template.
type Config struct {
	Name        string `xml:"Name,attr"`
	Target      string `xml:"Target,attr"`
	Default     string `xml:"Default,attr"`
	Mode        string `xml:"Mode,attr"`
	Description string `xml:"Description,attr"`
	Type        string `xml:"Type,attr"`
	Display     string `xml:"Display,attr"`
	Required    string `xml:"Required,attr"`
	Mask        string `xml:"Mask,attr"`
	Value       string `xml:",chardata"`
}

// EffectiveValue returns the entry's value with defaulting and escaping
// applied: the element text when non-empty, otherwise the Default
// attribute, with every literal "$" doubled so compose does not treat
// it as an interpolation marker. Escaping is applied exactly once, here.
func (c Config) EffectiveValue() string {
	value := c.Value
	if value == "" {
		value = c.Default
	}
	return strings.ReplaceAll(value, "$", "$$")
}

// LabelPrefix returns the vendor label namespace for this entry,
// derived from its Name with spaces replaced by underscores.
func (c Config) LabelPrefix() string {
	return "net.unraid.docker.config." + strings.ReplaceAll(c.Name, " ", "_")
}

// element is one child node of the <Container> root, kept generic so
// tags can be looked up by name without enumerating the full schema.
type element struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// Document is a parsed unRAID template.
type Document struct {
	XMLName  xml.Name `xml:"Container"`
	Configs  []Config `xml:"Config"`
	elements []element
}

// UnmarshalXML decodes the <Container> root, collecting <Config>
// children into Configs and every other child into the generic
// element list used by Tag.
func (d *Document) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	d.XMLName = start.Name
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Config" {
				var cfg Config
				if err := dec.DecodeElement(&cfg, &t); err != nil {
					return err
				}
				d.Configs = append(d.Configs, cfg)
				continue
			}
			var el element
			if err := dec.DecodeElement(&el, &t); err != nil {
				return err
			}
			d.elements = append(d.elements, el)
		case xml.EndElement:
			return nil
		}
	}
}

// Tag returns the text of the first top-level element with the given
// name, or an empty string when the element is absent or empty. A
// missing tag is never an error.
func (d *Document) Tag(name string) string {
	for _, el := range d.elements {
		if el.XMLName.Local == name {
			return el.Text
		}
	}
	return ""
}

// Parse decodes an unRAID template from raw XML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &doc, nil
}

// Load reads and parses a template file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return Parse(data)
}
