package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewMatcher(t *testing.T) {
	tests := []struct {
		name      string
		paths     []string
		ignores   []string
		expectErr bool
	}{
		{
			name:      "valid patterns",
			paths:     []string{"run.vcl", "*.vcl"},
			ignores:   []string{"*.tmp"},
			expectErr: false,
		},
		{
			name:      "empty patterns",
			paths:     []string{},
			ignores:   []string{},
			expectErr: false,
		},
		{
			name:      "invalid path pattern",
			paths:     []string{"[invalid"},
			ignores:   []string{},
			expectErr: true,
		},
		{
			name:      "invalid ignore pattern",
			paths:     []string{"*.vcl"},
			ignores:   []string{"[invalid"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.paths, tt.ignores)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, m)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, m)
			}
		})
	}
}

func Test_Matcher_Match(t *testing.T) {
	tests := []struct {
		name    string
		paths   []string
		ignores []string
		file    string
		expect  bool
	}{
		{
			name:    "matches the watched log file",
			paths:   []string{"run.vcl"},
			ignores: []string{},
			file:    "run.vcl",
			expect:  true,
		},
		{
			name:    "ignores temp file",
			paths:   []string{"*.vcl"},
			ignores: []string{"*.tmp"},
			file:    "run.tmp",
			expect:  false,
		},
		{
			name:    "ignores editor swap file",
			paths:   []string{"*.vcl"},
			ignores: []string{"*.swp", ".*"},
			file:    ".run.vcl.swp",
			expect:  false,
		},
		{
			name:    "no match for a different log",
			paths:   []string{"run.vcl"},
			ignores: []string{},
			file:    "other.vcl",
			expect:  false,
		},
		{
			name:    "handles leading dot-slash",
			paths:   []string{"run.vcl"},
			ignores: []string{},
			file:    "./run.vcl",
			expect:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.paths, tt.ignores)
			assert.NoError(t, err)

			result := m.Match(tt.file)
			assert.Equal(t, tt.expect, result)
		})
	}
}

func Test_normalizePath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "removes leading dot-slash",
			input:  "./logs/run.vcl",
			expect: "logs/run.vcl",
		},
		{
			name:   "keeps path without prefix",
			input:  "logs/run.vcl",
			expect: "logs/run.vcl",
		},
		{
			name:   "handles bare filename",
			input:  "run.vcl",
			expect: "run.vcl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizePath(tt.input)
			assert.Equal(t, tt.expect, result)
		})
	}
}
