package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAccessHolderFromConfigFile(t *testing.T) {
	path := writeConfig(t, `
access:
  allowed:
    - "CN=client.example.org,O=Example"
`)

	holder := NewAccessHolder(Config{ConfigFile: path}, zap.NewNop())
	assert.True(t, holder.Allowed("CN=client.example.org,O=Example"))
	assert.False(t, holder.Allowed("CN=other.example.org,O=Example"))
	assert.False(t, holder.Allowed(""))
}

func TestAccessHolderSectionAbsent(t *testing.T) {
	path := writeConfig(t, "listen: \":5443\"\n")

	holder := NewAccessHolder(Config{ConfigFile: path}, zap.NewNop())
	assert.False(t, holder.Allowed("CN=client.example.org,O=Example"))
}

func TestAccessHolderConfigFileMissing(t *testing.T) {
	holder := NewAccessHolder(Config{ConfigFile: "does-not-exist.yaml"}, zap.NewNop())
	assert.False(t, holder.Allowed("CN=client.example.org,O=Example"))
}

func TestStaticAccessHolder(t *testing.T) {
	assert.False(t, NewStaticAccessHolder(nil).Allowed("CN=x"))

	allowAll := NewStaticAccessHolder(&AccessConfig{AllowAll: true})
	assert.True(t, allowAll.Allowed("CN=x"))
	assert.True(t, allowAll.Allowed(""))

	listed := NewStaticAccessHolder(&AccessConfig{Allowed: []string{"CN=a", "CN=b"}})
	assert.True(t, listed.Allowed("CN=a"))
	assert.True(t, listed.Allowed("CN=b"))
	assert.False(t, listed.Allowed("CN=c"))
	assert.False(t, listed.Allowed(""))

	empty := NewStaticAccessHolder(&AccessConfig{})
	assert.False(t, empty.Allowed("CN=a"))
}
