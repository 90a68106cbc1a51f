package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-batch/internal/batch"
)

// requestFile is the YAML form of a URL list:
//
//	urls:
//	  - https://www.youtube.com/watch?v=...
type requestFile struct {
	URLs []string `yaml:"urls"`
}

// readRequestFile loads requests from a plain text list (one URL per line) or
// from a YAML document when the file has a .yaml or .yml extension.
func readRequestFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseRequestFile(path, data)
}

func parseRequestFile(name string, data []byte) ([]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var f requestFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		requests := make([]string, 0, len(f.URLs))
		for _, u := range f.URLs {
			if u = strings.TrimSpace(u); u != "" {
				requests = append(requests, u)
			}
		}
		return requests, nil
	default:
		return batch.ParseRequests(string(data)), nil
	}
}

// collectRequests combines URL arguments with the entries of file, arguments first
func collectRequests(args []string, file string) ([]string, error) {
	requests := make([]string, 0, len(args))
	for _, arg := range args {
		if arg = strings.TrimSpace(arg); arg != "" {
			requests = append(requests, arg)
		}
	}
	if file == "" {
		return requests, nil
	}

	fromFile, err := readRequestFile(file)
	if err != nil {
		return nil, err
	}
	return append(requests, fromFile...), nil
}
