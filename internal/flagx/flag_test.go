package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-a", "-t"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "keeps allowed flag with value",
			args: []string{"-a", "http://localhost:9090"},
			want: []string{"-a", "http://localhost:9090"},
		},
		{
			name: "drops unknown flags and their values",
			args: []string{"-x", "5", "-a", "url", "-y"},
			want: []string{"-a", "url"},
		},
		{
			name: "keeps equals spelling as one token",
			args: []string{"-t=30", "-z=oops"},
			want: []string{"-t=30"},
		},
		{
			name: "allowed flag followed by another flag keeps no value",
			args: []string{"-a", "-t", "30"},
			want: []string{"-a", "-t", "30"},
		},
		{
			name: "empty input",
			args: []string{},
			want: []string{},
		},
		{
			name: "bare values without flags are dropped",
			args: []string{"stray", "words"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"blogify", "-c", "settings.json", "-a", "http://x"}
	require.Equal(t, "settings.json", JsonConfigFlags())

	os.Args = []string{"blogify", "-config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"blogify", "-a", "http://x"}
	require.Equal(t, "", JsonConfigFlags())
}
