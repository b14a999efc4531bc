// Package rulefile decodes a YAML rule document into registrations on
// an *acsub.Automaton. It is a configuration parser and rule store
// sitting outside the core matching engine, needed for a real host
// integration even though it carries no matching semantics of its own.
package rulefile

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	acsub "github.com/PilouGit/mod-replace"
)

// Rule is one YAML rule entry.
//
//	- pattern: hello
//	  replace: hi
//	- pattern: "${SESSION}"
//	  template: true   # resolved dynamically by a host callback, not here
//	  tag: session-id
type Rule struct {
	Pattern  string `yaml:"pattern"`
	Replace  string `yaml:"replace"`
	Template bool   `yaml:"template"`
	Tag      string `yaml:"tag"`
}

// Document is the top-level shape of a rule file.
type Document struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads and parses a rule file from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "rulefile: read %q", path)
	}
	return Parse(data)
}

// Parse decodes raw YAML bytes into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "rulefile: parse yaml")
	}
	return &doc, nil
}

// Apply registers every rule in the document on a. Rules with
// Template set are registered with no static replacement and the
// rule's Tag as user-data, so a host-side callback (see package
// tmplvar) can resolve them per invocation via ReplaceWithCallback;
// all other rules get their static Replace value.
//
// Apply stops at the first rule that fails to register and returns an
// error naming that rule's index, wrapping the registration error for
// diagnosability, following peco/peco's pkg/errors usage for
// config-loading context.
func Apply(a *acsub.Automaton, doc *Document) error {
	for i, r := range doc.Rules {
		if r.Pattern == "" {
			return errors.Errorf("rulefile: rule %d: empty pattern", i)
		}

		var err error
		switch {
		case r.Template:
			err = a.RegisterEx([]byte(r.Pattern), nil, r.Tag)
		default:
			err = a.Register([]byte(r.Pattern), []byte(r.Replace))
		}
		if err != nil {
			return errors.Wrapf(err, "rulefile: rule %d (%q)", i, r.Pattern)
		}
	}
	return nil
}

// LoadInto is a convenience wrapper combining Load and Apply.
func LoadInto(a *acsub.Automaton, path string) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}
	return Apply(a, doc)
}
