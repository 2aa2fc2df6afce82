package bucketlist

import (
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultMaxSpanCells bounds how many cells one rectangle may cover in SpanMode
const DefaultMaxSpanCells = 4096

// InsertMode selects which cells a rectangle is indexed into and queried from
type InsertMode uint8

const (
	// CornerMode uses only the four corner cells. Large rectangles whose
	// corners share no cell with a query can be missed
	CornerMode InsertMode = iota
	// SpanMode uses every covered cell and has no false negatives
	SpanMode
)

func ParseInsertMode(s string) (InsertMode, error) {
	switch s {
	case "corners", "corner":
		return CornerMode, nil
	case "span":
		return SpanMode, nil
	}
	return 0, InvalidInsertModeError{Value: s}
}

func (m InsertMode) String() string {
	switch m {
	case CornerMode:
		return "corners"
	case SpanMode:
		return "span"
	}
	return fmt.Sprintf("InsertMode(%d)", uint8(m))
}

func (m InsertMode) valid() bool {
	return m == CornerMode || m == SpanMode
}

func (m InsertMode) MarshalYAML() (interface{}, error) {
	if !m.valid() {
		return nil, InvalidInsertModeError{Value: m.String()}
	}
	return m.String(), nil
}

func (m *InsertMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseInsertMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Settings is the file form of the index configuration
type Settings struct {
	BucketSize   float64    `yaml:"bucket_size"`
	InsertMode   InsertMode `yaml:"insert_mode"`
	MaxSpanCells int        `yaml:"max_span_cells"`
}

func DefaultSettings() Settings {
	return Settings{
		BucketSize:   DefaultBucketSize,
		InsertMode:   CornerMode,
		MaxSpanCells: DefaultMaxSpanCells,
	}
}

func (s Settings) Validate() error {
	if err := validateBucketSize(s.BucketSize); err != nil {
		return err
	}
	if !s.InsertMode.valid() {
		return InvalidInsertModeError{Value: s.InsertMode.String()}
	}
	if s.MaxSpanCells < 1 {
		return InvalidMaxSpanCellsError{Value: s.MaxSpanCells}
	}
	return nil
}

// ParseSettings decodes YAML over the defaults, so omitted keys keep their default
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return s, nil
}

func validateBucketSize(size float64) error {
	if size <= 0 || math.IsInf(size, 0) || math.IsNaN(size) {
		return InvalidBucketSizeError{Size: size}
	}
	return nil
}

// Config holds the defaults every new index starts from
var Config config = defaultConfig()

type config struct {
	settings Settings
	logger   *zap.Logger
}

func defaultConfig() config {
	return config{
		settings: DefaultSettings(),
		logger:   zap.NewNop(),
	}
}

func (c *config) SetBucketSize(size float64) error {
	if err := validateBucketSize(size); err != nil {
		return err
	}
	c.settings.BucketSize = size
	return nil
}

func (c *config) SetInsertMode(mode InsertMode) error {
	if !mode.valid() {
		return InvalidInsertModeError{Value: mode.String()}
	}
	c.settings.InsertMode = mode
	return nil
}

func (c *config) SetMaxSpanCells(n int) error {
	if n < 1 {
		return InvalidMaxSpanCellsError{Value: n}
	}
	c.settings.MaxSpanCells = n
	return nil
}

// SetLogger sets the logger handed to new indexes; nil silences them
func (c *config) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
}

// Apply replaces all settings at once, leaving Config untouched if any is invalid
func (c *config) Apply(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	return nil
}

func (c *config) Settings() Settings {
	return c.settings
}

func (c *config) Logger() *zap.Logger {
	return c.logger
}

func (c *config) Reset() {
	*c = defaultConfig()
}
