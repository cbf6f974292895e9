package medialib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/karlseguin/medialib/assert"
	"go.uber.org/zap/zapcore"
)

func Test_Configuration_Defaults(t *testing.T) {
	c := Configure()
	assert.Equal(t, c.backing, ArrayBacking)
	assert.Equal(t, c.initialCapacity, 3)
	assert.Equal(t, c.growth, 2)
	assert.Equal(t, c.degree, 8)
	assert.NotNil(t, c.logger)
	assert.Nil(t, c.onEvent)
}

func Test_Configuration_Coercions(t *testing.T) {
	c := Configure().InitialCapacity(0).Growth(-1).Degree(1).Logger(nil)
	assert.Equal(t, c.initialCapacity, 1)
	assert.Equal(t, c.growth, defaultGrowth)
	assert.Equal(t, c.degree, defaultDegree)
	assert.NotNil(t, c.logger)

	c = Configure().InitialCapacity(10).Growth(4).Degree(16)
	assert.Equal(t, c.initialCapacity, 10)
	assert.Equal(t, c.growth, 4)
	assert.Equal(t, c.degree, 16)
}

func Test_Configuration_Parse(t *testing.T) {
	c, err := ParseConfiguration([]byte(`
backing: list
initial_capacity: 16
degree: 4
log_level: warn
`))
	assert.NoError(t, err)
	assert.Equal(t, c.backing, ListBacking)
	assert.Equal(t, c.initialCapacity, 16)
	assert.Equal(t, c.growth, defaultGrowth)
	assert.Equal(t, c.degree, 4)
	assert.False(t, c.logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, c.logger.Core().Enabled(zapcore.WarnLevel))

	c, err = ParseConfiguration(nil)
	assert.NoError(t, err)
	assert.Equal(t, c.backing, ArrayBacking)
}

func Test_Configuration_ParseErrors(t *testing.T) {
	_, err := ParseConfiguration([]byte("backing: skiplist"))
	assert.Error(t, err, ErrUnknownBacking)

	_, err = ParseConfiguration([]byte("log_level: chatty"))
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "chatty")

	_, err = ParseConfiguration([]byte("growth: [1, 2]"))
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "parsing configuration")
}

func Test_Configuration_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medialib.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("backing: btree\ngrowth: 3\n"), 0o600))
	c, err := LoadConfiguration(path)
	assert.NoError(t, err)
	assert.Equal(t, c.backing, BTreeBacking)
	assert.Equal(t, c.growth, 3)

	_, err = LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(errors.UnwrapAll(err)))
}
