package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/endpointmonitor/internal/domain"
)

// File holds the parsed endpoint list. Records are kept in file order as
// generic mappings so Validate can report shape problems without making
// them fatal; Endpoints materializes them leniently afterwards.
type File struct {
	records []any
}

// Load reads and parses the YAML endpoint list. A read failure and a parse
// failure are both fatal to the caller; they stay distinguishable through
// the wrapped error chain. Parsing only requires a YAML sequence: items
// that are not mappings are a schema problem, not a parse problem, so
// Validate reports them and the run proceeds.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var records []any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &File{records: records}, nil
}

// Validate checks every record against the expected shape: name and url are
// required strings; method, if present, a string; headers, if present, a
// string-to-string mapping; body, if present, a string. Violations are
// advisory: the caller logs them and monitoring proceeds. The body check is
// deliberately narrower than what the prober accepts.
func (f *File) Validate() []error {
	var errs []error
	for i, item := range f.records {
		rec, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Errorf("record %d: must be a mapping", i))
			continue
		}
		label := fmt.Sprintf("record %d", i)
		if name, ok := rec["name"].(string); ok && name != "" {
			label = fmt.Sprintf("record %d (%s)", i, name)
		} else {
			errs = append(errs, fmt.Errorf("%s: name is required and must be a string", label))
		}
		if _, ok := rec["url"].(string); !ok {
			errs = append(errs, fmt.Errorf("%s: url is required and must be a string", label))
		}
		if v, present := rec["method"]; present {
			if _, ok := v.(string); !ok {
				errs = append(errs, fmt.Errorf("%s: method must be a string", label))
			}
		}
		if v, present := rec["headers"]; present {
			m, ok := v.(map[string]any)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: headers must be a mapping", label))
			} else {
				for k, hv := range m {
					if _, ok := hv.(string); !ok {
						errs = append(errs, fmt.Errorf("%s: header %q must be a string", label, k))
					}
				}
			}
		}
		if v, present := rec["body"]; present {
			if _, ok := v.(string); !ok {
				errs = append(errs, fmt.Errorf("%s: body must be a string", label))
			}
		}
	}
	return errs
}

// Endpoints builds the endpoint list in file order. Mistyped fields are
// dropped rather than rejected (Validate already reported them); the method
// default is resolved here, once, not per probe. A non-mapping record
// materializes with no URL, so the sweep skips it.
func (f *File) Endpoints() []domain.Endpoint {
	out := make([]domain.Endpoint, 0, len(f.records))
	for _, item := range f.records {
		rec, _ := item.(map[string]any) // nil map lookups below are fine
		ep := domain.Endpoint{Method: "GET"}
		if v, ok := rec["name"].(string); ok {
			ep.Name = v
		}
		if v, ok := rec["url"].(string); ok {
			ep.URL = v
		}
		if v, ok := rec["method"].(string); ok && v != "" {
			ep.Method = v
		}
		if m, ok := rec["headers"].(map[string]any); ok {
			ep.Headers = make(map[string]string, len(m))
			for k, hv := range m {
				if s, ok := hv.(string); ok {
					ep.Headers[k] = s
				}
			}
		}
		if v, present := rec["body"]; present {
			ep.Body = v
		}
		out = append(out, ep)
	}
	return out
}
