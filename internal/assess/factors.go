package assess

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	notAvailable = "Not Available"

	// maxVerificationWords bounds each factor's justification; longer
	// sentences are replaced with a fixed notice.
	maxVerificationWords = 20

	verificationTooLong = "Verification sentence exceeds 20 words."
)

// Factor is one assessed dimension: a rating label plus a short
// verification sentence justifying it.
type Factor struct {
	Rating               string `yaml:"Rating"`
	VerificationSentence string `yaml:"Verification Sentence"`
}

// Assessment is the five-factor complexity profile of a tender.
type Assessment struct {
	Complexity              Factor `yaml:"Complexity"`
	Scalability             Factor `yaml:"Scalability"`
	IntegrationRequirements Factor `yaml:"Integration Requirements"`
	TimeFeasibility         Factor `yaml:"Time Feasibility"`
	// DaysLeft is free text: a day count or "Not Available".
	DaysLeft string `yaml:"Days Left to Submit the Proposal"`
}

// Model output is free-form enough that each factor block is located
// independently. A block is a heading, a Ratings line and a Verification
// Sentence line; the sentence runs until the next unindented line.
var (
	complexityPattern  = factorPattern(`Complexity`)
	scalabilityPattern = factorPattern(`Scalability`)
	integrationPattern = factorPattern(`Integration\s*Requirements`)
	feasibilityPattern = factorPattern(`Time\s*Feasibility`)
	daysLeftPattern    = regexp.MustCompile(`Days\s*Left\s*to\s*Submit\s*the\s*Proposal:\s*(.*)`)
)

func factorPattern(heading string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?s)%s:\s*Ratings?:\s*([^\n]+?)\s*Verification\s+Sentence:\s*(.*?)\s*(?:\n\S|$)`, heading))
}

// parseFactor extracts one rated factor, falling back to "Not Available"
// when the block is absent and capping the verification sentence length.
func parseFactor(pattern *regexp.Regexp, text string) Factor {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return Factor{Rating: notAvailable, VerificationSentence: notAvailable}
	}

	sentence := strings.TrimSpace(match[2])
	if len(strings.Fields(sentence)) > maxVerificationWords {
		sentence = verificationTooLong
	}
	return Factor{
		Rating:               strings.TrimSpace(match[1]),
		VerificationSentence: sentence,
	}
}

// ParseAssessment extracts the five factors from raw model output.
// Parsing never fails: missing blocks default to "Not Available".
func ParseAssessment(text string) Assessment {
	assessment := Assessment{
		Complexity:              parseFactor(complexityPattern, text),
		Scalability:             parseFactor(scalabilityPattern, text),
		IntegrationRequirements: parseFactor(integrationPattern, text),
		TimeFeasibility:         parseFactor(feasibilityPattern, text),
		DaysLeft:                notAvailable,
	}
	if match := daysLeftPattern.FindStringSubmatch(text); match != nil {
		assessment.DaysLeft = strings.TrimSpace(match[1])
	}
	return assessment
}

// MarshalAssessment renders an assessment as YAML, factors in assessment
// order.
func MarshalAssessment(assessment Assessment) (string, error) {
	out, err := yaml.Marshal(assessment)
	if err != nil {
		return "", fmt.Errorf("failed to marshal assessment: %w", err)
	}
	return string(out), nil
}
