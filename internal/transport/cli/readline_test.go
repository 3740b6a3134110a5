package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExit(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "exit", want: true},
		{line: "quit", want: true},
		{line: "EXIT", want: true},
		{line: "Quit", want: true},
		{line: "eXiT", want: true},
		{line: "exit now", want: false},
		{line: "how many voids?", want: false},
		{line: "", want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isExit(tt.line), tt.line)
	}
}
