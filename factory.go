package bucketlist

import "go.uber.org/zap"

type factory struct{}

var Factory factory

// NewIndex builds an index from the current global Config
func (f factory) NewIndex() (Index, error) {
	return f.NewIndexBuilder().Build()
}

func (f factory) NewIndexFromSettings(s Settings) (Index, error) {
	return f.NewIndexBuilder().WithSettings(s).Build()
}

// NewIndexBuilder starts from the current global Config
func (f factory) NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{
		settings: Config.Settings(),
		logger:   Config.Logger(),
	}
}

type IndexBuilder struct {
	settings Settings
	logger   *zap.Logger
}

func (b *IndexBuilder) WithSettings(s Settings) *IndexBuilder {
	b.settings = s
	return b
}

func (b *IndexBuilder) WithBucketSize(size float64) *IndexBuilder {
	b.settings.BucketSize = size
	return b
}

func (b *IndexBuilder) WithInsertMode(mode InsertMode) *IndexBuilder {
	b.settings.InsertMode = mode
	return b
}

func (b *IndexBuilder) WithMaxSpanCells(n int) *IndexBuilder {
	b.settings.MaxSpanCells = n
	return b
}

func (b *IndexBuilder) WithLogger(logger *zap.Logger) *IndexBuilder {
	b.logger = logger
	return b
}

func (b *IndexBuilder) Build() (Index, error) {
	if err := b.settings.Validate(); err != nil {
		return nil, err
	}
	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	idx, err := newIndex(b.settings, logger)
	if err != nil {
		return nil, err
	}
	return idx, nil
}
