package globaltables

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// TableResourceType marks a descriptor resource as a DynamoDB table.
const TableResourceType = "AWS::DynamoDB::Table"

// Descriptor is the deployment descriptor the hook runs against, a subset of
// the document the deployment framework feeds to CloudFormation.
type Descriptor struct {
	Service   string              `yaml:"service"`
	Provider  Provider            `yaml:"provider"`
	Custom    Custom              `yaml:"custom"`
	Resources map[string]Resource `yaml:"resources"`
}

// Provider deployment provider settings
type Provider struct {
	Region string `yaml:"region"`
}

// Custom free-form deployment settings, of which only the globalTables block
// is read by this hook
type Custom struct {
	GlobalTables Settings `yaml:"globalTables"`
}

// Settings feature settings for the replication hook
type Settings struct {
	Enabled *bool `yaml:"enabled"`
}

// IsEnabled replication defaults to on when the flag is absent
func (s Settings) IsEnabled() bool {
	if s.Enabled == nil {
		return true
	}

	return *s.Enabled
}

// Resource a single CloudFormation-style resource declaration
type Resource struct {
	Type       string             `yaml:"Type"`
	Properties ResourceProperties `yaml:"Properties"`
}

// ResourceProperties the subset of resource properties read by this hook
type ResourceProperties struct {
	TableName string `yaml:"TableName"`
}

// LoadDescriptor read and parse the deployment descriptor at the given path
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	return ParseDescriptor(data)
}

// ParseDescriptor parse a deployment descriptor document
func ParseDescriptor(data []byte) (*Descriptor, error) {
	desc := new(Descriptor)

	err := yaml.Unmarshal(data, desc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}

	return desc, nil
}

// TableNames returns the configured name of every DynamoDB table resource in
// the descriptor, in logical identifier order. A table resource without a
// name is a malformed descriptor.
func (d *Descriptor) TableNames() ([]string, error) {
	ids := make([]string, 0, len(d.Resources))

	for id := range d.Resources {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	var names []string

	for _, id := range ids {
		res := d.Resources[id]

		if res.Type != TableResourceType {
			continue
		}

		if res.Properties.TableName == "" {
			return nil, fmt.Errorf("resource %q: %w", id, ErrNoTableName)
		}

		names = append(names, res.Properties.TableName)
	}

	return names, nil
}
