package domain

import "fmt"

// RuleOverride lets a project replace the templates for a single artifact
// kind. Empty fields keep the built-in template.
type RuleOverride struct {
	PathTemplate  string `yaml:"path_template"  json:"path_template,omitempty"`
	IdentTemplate string `yaml:"ident_template" json:"ident_template,omitempty"`
}

// ProjectConfig holds project-level configuration loaded from .lintconv.yaml.
type ProjectConfig struct {
	Rules     map[string]RuleOverride `yaml:"rules"     json:"rules,omitempty"`
	Mandatory []string                `yaml:"mandatory" json:"mandatory,omitempty"`
	Skip      []string                `yaml:"skip"      json:"skip,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. rule override keys must be known kinds
	for name, ov := range c.Rules {
		if !ArtifactKind(name).IsValid() {
			return fmt.Errorf("unknown artifact kind %q in rules", name)
		}
		if ov.PathTemplate == "" && ov.IdentTemplate == "" {
			return fmt.Errorf("rules.%s overrides nothing (set path_template or ident_template)", name)
		}
	}

	// 2. mandatory entries must be known kinds
	for _, name := range c.Mandatory {
		if !ArtifactKind(name).IsValid() {
			return fmt.Errorf("unknown artifact kind %q in mandatory", name)
		}
	}

	// 3. skip entries must be known kinds
	for _, name := range c.Skip {
		if !ArtifactKind(name).IsValid() {
			return fmt.Errorf("unknown artifact kind %q in skip", name)
		}
	}

	// 4. a kind cannot be both mandatory and skipped
	skipped := make(map[string]bool, len(c.Skip))
	for _, name := range c.Skip {
		skipped[name] = true
	}
	for _, name := range c.Mandatory {
		if skipped[name] {
			return fmt.Errorf("kind %q is both mandatory and skipped", name)
		}
	}

	// 5. built-in mandatory kinds cannot be skipped
	for _, k := range MandatoryKinds {
		if skipped[string(k)] {
			return fmt.Errorf("cannot skip mandatory kind %q", k)
		}
	}

	return nil
}

// IsSkipped reports whether the kind is excluded from the checklist.
func (c ProjectConfig) IsSkipped(kind ArtifactKind) bool {
	for _, name := range c.Skip {
		if ArtifactKind(name) == kind {
			return true
		}
	}
	return false
}

// MandatoryKinds returns the built-in mandatory kinds plus any extra kinds
// the config promotes, in checklist order.
func (c ProjectConfig) MandatoryKinds() []ArtifactKind {
	extra := make(map[ArtifactKind]bool, len(c.Mandatory))
	for _, name := range c.Mandatory {
		extra[ArtifactKind(name)] = true
	}
	for _, k := range MandatoryKinds {
		extra[k] = true
	}

	out := make([]ArtifactKind, 0, len(extra))
	for _, k := range AllKinds {
		if extra[k] {
			out = append(out, k)
		}
	}
	return out
}

// ApplyTo layers the config's rule overrides onto a table.
func (c ProjectConfig) ApplyTo(table *RuleTable) error {
	for name, ov := range c.Rules {
		kind := ArtifactKind(name)
		base, err := table.Lookup(kind)
		if err != nil {
			return err
		}
		if ov.PathTemplate != "" {
			base.PathTemplate = ov.PathTemplate
		}
		if ov.IdentTemplate != "" {
			base.IdentTemplate = ov.IdentTemplate
		}
		table.Override(base)
	}
	return nil
}
