package docker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImageReference(t *testing.T) {
	tests := []struct {
		in       string
		wantRepo string
		wantTag  string
	}{
		{"nginx", "nginx", "latest"},
		{"nginx:1.25", "nginx", "1.25"},
		{"localstack/localstack:3.0", "localstack/localstack", "3.0"},
		{"registry:5000/myimage", "registry:5000/myimage", "latest"},
		{"registry:5000/myimage:v2", "registry:5000/myimage", "v2"},
		{"nginx:", "nginx", "latest"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			repo, tag := ParseImageReference(tt.in)
			assert.Equal(t, tt.wantRepo, repo)
			assert.Equal(t, tt.wantTag, tag)
		})
	}
}
