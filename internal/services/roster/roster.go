// Package roster loads the club leadership shown on the landing page.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Member is one leader card.
type Member struct {
	Name       string `yaml:"name"`
	Number     string `yaml:"number"`
	Generation string `yaml:"generation"`
	Position   string `yaml:"position"`
	// Color is the card accent as #rrggbb.
	Color string `yaml:"color"`
	// Image is an absolute http(s) URL or a site path.
	Image string `yaml:"image"`
}

// Roster holds the two leadership tiers.
type Roster struct {
	Leaders    []Member `yaml:"leaders"`
	SubLeaders []Member `yaml:"sub_leaders"`
}

// Empty reports whether there is nothing to show.
func (r Roster) Empty() bool {
	return len(r.Leaders) == 0 && len(r.SubLeaders) == 0
}

// Load reads a roster file. An empty path yields an empty roster.
func Load(path string) (Roster, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Roster{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("read roster: %w", err)
	}
	r, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Roster{}, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates a roster document. Unknown keys are rejected.
func Parse(src io.Reader) (Roster, error) {
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)
	var r Roster
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return Roster{}, nil
		}
		return Roster{}, err
	}
	for i := range r.Leaders {
		if err := normalize(&r.Leaders[i]); err != nil {
			return Roster{}, fmt.Errorf("leaders[%d]: %w", i, err)
		}
	}
	for i := range r.SubLeaders {
		if err := normalize(&r.SubLeaders[i]); err != nil {
			return Roster{}, fmt.Errorf("sub_leaders[%d]: %w", i, err)
		}
	}
	return r, nil
}

func normalize(m *Member) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Number = strings.TrimSpace(m.Number)
	m.Generation = strings.TrimSpace(m.Generation)
	m.Position = strings.TrimSpace(m.Position)
	m.Color = strings.TrimSpace(m.Color)
	m.Image = strings.TrimSpace(m.Image)
	if m.Name == "" {
		return errors.New("name is required")
	}
	if m.Color != "" && !colorPattern.MatchString(m.Color) {
		return fmt.Errorf("color %q is not #rrggbb", m.Color)
	}
	if m.Image != "" && !validImage(m.Image) {
		return fmt.Errorf("image %q must be an http(s) URL or a site path", m.Image)
	}
	return nil
}

func validImage(raw string) bool {
	if strings.HasPrefix(raw, "/") {
		return !strings.HasPrefix(raw, "//")
	}
	return strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "http://")
}
