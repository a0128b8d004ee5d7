package extract

import (
	"fmt"
	"strings"

	"tenderdesk/internal/rag"

	"gopkg.in/yaml.v3"
)

// notProvided is the sentinel for fields the model could not fill.
const notProvided = "Not Provided"

// Section is one top-level entry of a tender record. Model output is
// loosely typed, so a section may arrive as a scalar, a mapping or a
// sequence; all three are flattened to a single string on unmarshal,
// mappings keeping their key order.
type Section struct {
	value string
}

// NewSection wraps a plain string value.
func NewSection(value string) Section {
	return Section{value: value}
}

// String returns the flattened section content.
func (s Section) String() string {
	return s.value
}

// UnmarshalYAML flattens whatever shape the model produced.
func (s *Section) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.value = node.Value
	case yaml.MappingNode:
		out, err := yaml.Marshal(node)
		if err != nil {
			return fmt.Errorf("failed to flatten mapping section: %w", err)
		}
		s.value = strings.TrimRight(string(out), "\n")
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			var nested Section
			if err := nested.UnmarshalYAML(item); err != nil {
				return err
			}
			items = append(items, nested.value)
		}
		s.value = strings.Join(items, "\n")
	default:
		s.value = ""
	}
	return nil
}

// MarshalYAML emits the flattened string.
func (s Section) MarshalYAML() (any, error) {
	return s.value, nil
}

// Record is the structured summary extracted from an indexed tender.
// Field order mirrors the schema the model is prompted with.
type Record struct {
	Overview                Section `yaml:"Overview"`
	CostInformation         Section `yaml:"Cost Information"`
	KeyObjectives           Section `yaml:"Key Objectives"`
	GeneralRequirements     Section `yaml:"General Requirements"`
	SpecialRequirements     Section `yaml:"Special Requirements"`
	PhasesAndMilestones     Section `yaml:"Phases and Milestones"`
	SubmissionGuidelines    Section `yaml:"Submission Guidelines"`
	TechnicalSpecifications Section `yaml:"Technical Specifications"`
	LegalAndCompliance      Section `yaml:"Legal and Compliance Requirements"`
	SupportAndMaintenance   Section `yaml:"Support and Maintenance"`
	ProjectTeam             Section `yaml:"Project Team and Qualifications"`
	ContactInformation      Section `yaml:"Contact Information"`
}

// SectionNames returns the record's section keys in schema order.
// YAML mappings do not guarantee order, so the order lives here.
func SectionNames() []string {
	return []string{
		"Overview",
		"Cost Information",
		"Key Objectives",
		"General Requirements",
		"Special Requirements",
		"Phases and Milestones",
		"Submission Guidelines",
		"Technical Specifications",
		"Legal and Compliance Requirements",
		"Support and Maintenance",
		"Project Team and Qualifications",
		"Contact Information",
	}
}

// sectionRefs pairs each schema key with its field, in schema order.
func (r *Record) sectionRefs() []*Section {
	return []*Section{
		&r.Overview,
		&r.CostInformation,
		&r.KeyObjectives,
		&r.GeneralRequirements,
		&r.SpecialRequirements,
		&r.PhasesAndMilestones,
		&r.SubmissionGuidelines,
		&r.TechnicalSpecifications,
		&r.LegalAndCompliance,
		&r.SupportAndMaintenance,
		&r.ProjectTeam,
		&r.ContactInformation,
	}
}

// Normalize fills every empty section with the "Not Provided" sentinel.
func (r *Record) Normalize() {
	for _, section := range r.sectionRefs() {
		if strings.TrimSpace(section.value) == "" {
			section.value = notProvided
		}
	}
}

// Topics converts the record into ordered conversation topics, one per
// section, with the flattened section content as the seed context.
func (r *Record) Topics() []rag.Topic {
	names := SectionNames()
	sections := r.sectionRefs()

	topics := make([]rag.Topic, 0, len(names))
	for i, name := range names {
		topics = append(topics, rag.Topic{Key: name, Context: sections[i].value})
	}
	return topics
}

// ParseRecord decodes model-produced YAML into a Record and normalizes it.
func ParseRecord(raw string) (Record, error) {
	var record Record
	if err := yaml.Unmarshal([]byte(raw), &record); err != nil {
		return Record{}, fmt.Errorf("failed to parse record yaml: %w", err)
	}
	record.Normalize()
	return record, nil
}

// MarshalRecord renders a record back to canonical YAML, sections in
// schema order with flattened string values.
func MarshalRecord(record Record) (string, error) {
	out, err := yaml.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}
	return string(out), nil
}
