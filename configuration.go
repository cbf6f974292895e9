package medialib

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	backing         Backing
	initialCapacity int
	growth          int
	degree          int
	logger          *zap.Logger
	onEvent         func(Event)
}

// Creates a configuration object with sensible defaults
// Use this as the start of the fluent configuration:
// e.g.: medialib.New(medialib.Configure().Backing(medialib.ListBacking))
func Configure() *Configuration {
	return &Configuration{
		backing:         ArrayBacking,
		initialCapacity: defaultInitialCapacity,
		growth:          defaultGrowth,
		degree:          defaultDegree,
		logger:          zap.NewNop(),
	}
}

// The store backing every container created with this configuration
// [ArrayBacking]
func (c *Configuration) Backing(backing Backing) *Configuration {
	c.backing = backing
	return c
}

// The number of cells an empty array container allocates
// [3]
func (c *Configuration) InitialCapacity(cells int) *Configuration {
	if cells < 1 {
		cells = 1
	}
	c.initialCapacity = cells
	return c
}

// A full array container is reallocated to growth * (size + 1) cells
// [2]
func (c *Configuration) Growth(growth int) *Configuration {
	if growth < 1 {
		growth = defaultGrowth
	}
	c.growth = growth
	return c
}

// The degree of btree containers
// [8]
func (c *Configuration) Degree(degree int) *Configuration {
	if degree < 2 {
		degree = defaultDegree
	}
	c.degree = degree
	return c
}

// The logger the manager reports mutations and rejections to
// [zap.NewNop()]
func (c *Configuration) Logger(logger *zap.Logger) *Configuration {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	return c
}

// Called after every successful mutation, outside of the manager's lock
// [nil]
func (c *Configuration) OnEvent(callback func(Event)) *Configuration {
	c.onEvent = callback
	return c
}

type fileConfiguration struct {
	Backing         string `yaml:"backing"`
	InitialCapacity int    `yaml:"initial_capacity"`
	Growth          int    `yaml:"growth"`
	Degree          int    `yaml:"degree"`
	LogLevel        string `yaml:"log_level"`
}

// LoadConfiguration reads a YAML configuration file. Missing keys keep their
// defaults.
func LoadConfiguration(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading configuration %s", path)
	}
	return ParseConfiguration(data)
}

func ParseConfiguration(data []byte) (*Configuration, error) {
	var file fileConfiguration
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}

	backing, err := ParseBacking(file.Backing)
	if err != nil {
		return nil, err
	}
	c := Configure().Backing(backing)
	if file.InitialCapacity != 0 {
		c.InitialCapacity(file.InitialCapacity)
	}
	if file.Growth != 0 {
		c.Growth(file.Growth)
	}
	if file.Degree != 0 {
		c.Degree(file.Degree)
	}
	if file.LogLevel != "" {
		logger, err := buildLogger(file.LogLevel)
		if err != nil {
			return nil, err
		}
		c.Logger(logger)
	}
	return c, nil
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log_level %q", level)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger, nil
}
