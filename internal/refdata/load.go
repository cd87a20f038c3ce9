package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultHighThreshold = 85
	defaultLowThreshold  = 60
)

type countriesFile struct {
	Countries []Country `yaml:"countries"`
}

type publishersFile struct {
	Publishers      []Publisher `yaml:"publishers"`
	WireServices    []string    `yaml:"wire_services"`
	StateControlled []string    `yaml:"state_controlled"`
	HighThreshold   int         `yaml:"high_credibility_threshold"`
	LowThreshold    int         `yaml:"low_credibility_threshold"`
}

// Load reads the country and publisher datasets from YAML files. When either
// file cannot be read or parsed it returns the built-in fallback store
// together with the load error, so the pipeline keeps working in a degraded
// mode. The caller decides whether to log or abort.
func Load(countriesPath, publishersPath string) (*Store, error) {
	var cf countriesFile
	if err := readYAML(countriesPath, &cf); err != nil {
		return Fallback(), fmt.Errorf("load countries: %w", err)
	}
	var pf publishersFile
	if err := readYAML(publishersPath, &pf); err != nil {
		return Fallback(), fmt.Errorf("load publishers: %w", err)
	}
	if len(cf.Countries) == 0 || len(pf.Publishers) == 0 {
		return Fallback(), fmt.Errorf("reference datasets empty (%s, %s)", countriesPath, publishersPath)
	}

	s := &Store{
		countries:     cf.Countries,
		publishers:    pf.Publishers,
		highThreshold: pf.HighThreshold,
		lowThreshold:  pf.LowThreshold,
	}
	if s.highThreshold == 0 {
		s.highThreshold = defaultHighThreshold
	}
	if s.lowThreshold == 0 {
		s.lowThreshold = defaultLowThreshold
	}
	s.wireServices = toSet(pf.WireServices)
	s.stateControlled = toSet(pf.StateControlled)
	s.index()
	return s, nil
}

func readYAML(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	return dec.Decode(out)
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
