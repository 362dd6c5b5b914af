// Package course holds the prompt-engineering lessons and the machinery to
// run them: embedded lesson documents, provider configuration, and a
// sequential runner that narrates prose and sends the example prompts to a
// live model.
package course

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed lessons/*.yaml
var lessonFS embed.FS

// Meta holds display metadata for a lesson.
type Meta struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Lesson is an ordered walkthrough: prose blocks interleaved with live model
// invocations.
type Lesson struct {
	Meta     Meta      `yaml:"lesson"`
	Sections []Section `yaml:"sections"`
}

// Section is one step of a lesson. Exactly one of its fields is set.
type Section struct {
	Prose     string     `yaml:"prose,omitempty"`
	Example   *Example   `yaml:"example,omitempty"`
	Templated *Templated `yaml:"templated,omitempty"`
	Compare   *Compare   `yaml:"compare,omitempty"`
}

// Example is a plain prompt sent to the model as-is.
type Example struct {
	Title  string `yaml:"title"`
	System string `yaml:"system,omitempty"`
	Prompt string `yaml:"prompt"`
}

// Templated is a prompt template plus the variables to substitute before
// sending.
type Templated struct {
	Title    string            `yaml:"title"`
	System   string            `yaml:"system,omitempty"`
	Template string            `yaml:"template"`
	Vars     map[string]string `yaml:"vars"`
}

// Compare sends two wordings of the same request and shows how the responses
// differ.
type Compare struct {
	Title  string `yaml:"title"`
	System string `yaml:"system,omitempty"`
	A      string `yaml:"a"`
	B      string `yaml:"b"`
}

// Validate checks that the section sets exactly one kind.
func (s Section) Validate() error {
	n := 0
	if s.Prose != "" {
		n++
	}
	if s.Example != nil {
		n++
	}
	if s.Templated != nil {
		n++
	}
	if s.Compare != nil {
		n++
	}

	if n != 1 {
		return fmt.Errorf("course: section must set exactly one of prose, example, templated, compare (got %d)", n)
	}

	return nil
}

// Validate checks lesson metadata and every section.
func (l Lesson) Validate() error {
	if l.Meta.Name == "" {
		return fmt.Errorf("course: lesson name is required")
	}

	for i, s := range l.Sections {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("lesson %q section %d: %w", l.Meta.Name, i, err)
		}
	}

	return nil
}

// List returns metadata for all embedded lessons, sorted by file name so the
// walkthrough order is stable.
func List() []Meta {
	entries, err := lessonFS.ReadDir("lessons")
	if err != nil {
		return nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var metas []Meta
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		l, err := load("lessons/" + e.Name())
		if err != nil {
			continue
		}
		metas = append(metas, l.Meta)
	}

	return metas
}

// Get loads a lesson by name. Returns an error if the lesson is not found.
func Get(name string) (Lesson, error) {
	entries, err := lessonFS.ReadDir("lessons")
	if err != nil {
		return Lesson{}, fmt.Errorf("course: read lessons dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		l, err := load("lessons/" + e.Name())
		if err != nil {
			continue
		}
		if l.Meta.Name == name {
			return l, nil
		}
	}

	return Lesson{}, fmt.Errorf("course: lesson %q not found", name)
}

// load parses and validates a lesson from the embedded filesystem.
func load(filename string) (Lesson, error) {
	data, err := lessonFS.ReadFile(filename)
	if err != nil {
		return Lesson{}, err
	}

	var l Lesson
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Lesson{}, fmt.Errorf("course: parse %s: %w", filename, err)
	}

	if err := l.Validate(); err != nil {
		return Lesson{}, err
	}

	return l, nil
}
