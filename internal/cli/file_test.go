package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseRequestFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     string
		expected []string
		wantErr  bool
	}{
		{
			name:     "plain text",
			file:     "urls.txt",
			data:     "https://a\r\nhttps://b\n",
			expected: []string{"https://a", "https://b"},
		},
		{
			name:     "empty text",
			file:     "urls.txt",
			data:     " \n\n ",
			expected: nil,
		},
		{
			name:     "yaml",
			file:     "urls.yaml",
			data:     "urls:\n  - https://a\n  - ' https://b '\n  - ''\n",
			expected: []string{"https://a", "https://b"},
		},
		{
			name:     "yml extension is case insensitive",
			file:     "URLS.YML",
			data:     "urls: [https://a]\n",
			expected: []string{"https://a"},
		},
		{
			name:    "invalid yaml",
			file:    "urls.yaml",
			data:    "urls: [unclosed\n",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseRequestFile(test.file, []byte(test.data))
			if test.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) == 0 && len(test.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestCollectRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte("https://c\nhttps://d"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := collectRequests([]string{"https://a", " ", "https://b"}, path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"https://a", "https://b", "https://c", "https://d"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if _, err := collectRequests(nil, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
