// Package leads loads batch input files: YAML lead-metadata lists for
// opportunity scoring and plain-text URL lists for site analysis.
package leads

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/siteleads/internal/domain"
)

var (
	// ErrNoLeads indicates no usable leads were found in the file
	ErrNoLeads = errors.New("no leads found in file")
	// ErrMissingRequiredField indicates a required field is missing
	ErrMissingRequiredField = errors.New("missing required field")
)

// leadsFile represents the structure of a leads YAML file.
type leadsFile struct {
	Leads []map[string]any `yaml:"leads"`
}

// Loader reads lead metadata from a YAML file.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates all leads from the file. Entries without a
// title are skipped; an empty URL is kept since it is exactly the
// no-website case the scorer handles.
func (l *Loader) Load() ([]domain.LeadMetadata, error) {
	raw, err := l.loadRaw()
	if err != nil {
		return nil, err
	}

	leads := make([]domain.LeadMetadata, 0, len(raw))
	for _, entry := range raw {
		lead, convertErr := convertLead(entry)
		if convertErr != nil {
			continue
		}
		if validateErr := validateLead(lead); validateErr != nil {
			continue
		}
		leads = append(leads, lead)
	}

	if len(leads) == 0 {
		return nil, ErrNoLeads
	}

	return leads, nil
}

// loadRaw reads and parses the YAML file into raw lead maps.
func (l *Loader) loadRaw() ([]map[string]any, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read leads file: %w", err)
	}

	var file leadsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Leads) == 0 {
		return nil, ErrNoLeads
	}

	return file.Leads, nil
}

// convertLead decodes one raw map into LeadMetadata.
func convertLead(src map[string]any) (domain.LeadMetadata, error) {
	var lead domain.LeadMetadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &lead,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return domain.LeadMetadata{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if decodeErr := decoder.Decode(src); decodeErr != nil {
		return domain.LeadMetadata{}, fmt.Errorf("failed to decode lead: %w", decodeErr)
	}

	return lead, nil
}

// validateLead checks the decoded lead for required fields.
func validateLead(lead domain.LeadMetadata) error {
	if lead.Title == "" {
		return fmt.Errorf("%w: title", ErrMissingRequiredField)
	}

	return nil
}

// ReadURLList reads a plain-text file with one URL per line, skipping
// blank lines and lines starting with #.
func ReadURLList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read URL list: %w", err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}

	if len(urls) == 0 {
		return nil, ErrNoLeads
	}

	return urls, nil
}
