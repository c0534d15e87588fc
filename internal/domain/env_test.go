package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnvKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{key: "FOO"},
		{key: "_private"},
		{key: "POSTGRES_PASSWORD2"},
		{key: "com.example.flag"},
		{key: "FOO-BAR"},
		{key: "2FOO"},
		{key: "", wantErr: true},
		{key: "FOO=BAR", wantErr: true},
		{key: "FOO\x00BAR", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateEnvKey(tt.key)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEnvKey)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseEnvAssignments(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{name: "none", want: map[string]string{}},
		{name: "simple", pairs: []string{"FOO=bar", "BAZ=qux"}, want: map[string]string{"FOO": "bar", "BAZ": "qux"}},
		{name: "empty value", pairs: []string{"EMPTY="}, want: map[string]string{"EMPTY": ""}},
		{name: "value with equals", pairs: []string{"URL=a=b"}, want: map[string]string{"URL": "a=b"}},
		{name: "double quoted", pairs: []string{`MSG="hello world"`}, want: map[string]string{"MSG": "hello world"}},
		{name: "single quoted", pairs: []string{`MSG='hi'`}, want: map[string]string{"MSG": "hi"}},
		{name: "mismatched quotes kept", pairs: []string{`MSG="hi'`}, want: map[string]string{"MSG": `"hi'`}},
		{name: "later wins", pairs: []string{"A=1", "A=2"}, want: map[string]string{"A": "2"}},
		{name: "missing equals", pairs: []string{"FOO"}, wantErr: true},
		{name: "dotted key", pairs: []string{"com.example.flag=on"}, want: map[string]string{"com.example.flag": "on"}},
		{name: "empty key", pairs: []string{"=x"}, wantErr: true},
		{name: "blank key", pairs: []string{"  =x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvAssignments(tt.pairs...)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEnvKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
