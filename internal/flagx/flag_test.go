package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-s=true"},
			allowedFlags: []string{"-c", "-s"},
			want:         []string{"-c", "-s=true"},
		},
		{
			name:         "bool flag in equals form",
			args:         []string{"-s=false", "-a", ":8080"},
			allowedFlags: []string{"-s", "-a"},
			want:         []string{"-s=false", "-a", ":8080"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/path/short.json"}
	assert.Equal(t, "/path/short.json", ConfigFileFlag())

	os.Args = []string{"testbin", "-a", ":8080", "-config", "/path/long.json"}
	assert.Equal(t, "/path/long.json", ConfigFileFlag())

	os.Args = []string{"testbin", "-c", "/path/1.json", "-config=/path/2.json"}
	assert.Equal(t, "/path/2.json", ConfigFileFlag())

	os.Args = []string{"testbin", "-x", "1"}
	assert.Empty(t, ConfigFileFlag())
}

func TestEnvFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-env", "local.env", "-c", "conf.json"}
	assert.Equal(t, "local.env", EnvFileFlag())

	os.Args = []string{"testbin"}
	assert.Empty(t, EnvFileFlag())
}
