package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformArgs(t *testing.T) {
	dirs := map[string]bool{"/opt/edat": true, "config": true}
	isDir := func(p string) bool { return dirs[p] }

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args", []string{"edatcheck"}, []string{"edatcheck"}},
		{"folder shorthand", []string{"edatcheck", "/opt/edat"}, []string{"edatcheck", "validate", "/opt/edat"}},
		{"folder shorthand with flags", []string{"edatcheck", "/opt/edat", "--mac", "AA-BB-CC-DD-EE-FF"}, []string{"edatcheck", "validate", "/opt/edat", "--mac", "AA-BB-CC-DD-EE-FF"}},
		{"subcommand wins over directory", []string{"edatcheck", "config", "/opt/edat"}, []string{"edatcheck", "config", "/opt/edat"}},
		{"flag first", []string{"edatcheck", "--version"}, []string{"edatcheck", "--version"}},
		{"unknown non-directory", []string{"edatcheck", "/missing"}, []string{"edatcheck", "/missing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transformArgs(tt.args, isDir))
		})
	}
}
