package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-a", "http://localhost:5000", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:5000"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--config=conf.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-z", "val", "-a=1"},
			allowed: []string{"-b"},
			want:    []string{},
		},
		{
			name:    "flag followed by another flag has no value",
			args:    []string{"-a", "-b", "x"},
			allowed: []string{"-a", "-b"},
			want:    []string{"-a", "-b", "x"},
		},
		{
			name:    "positional arguments dropped",
			args:    []string{"login", "-a", "addr"},
			allowed: []string{"-a"},
			want:    []string{"-a", "addr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"client", "-c", "conf.json"}
	require.Equal(t, "conf.json", ConfigFileFlags())

	os.Args = []string{"client", "-a", "localhost"}
	require.Equal(t, "", ConfigFileFlags())
}
