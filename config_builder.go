package devconsole

// ConfigBuilder provides a fluent API for constructing console
// configurations.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder seeded with the default
// configuration.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
	}
}

// WithName sets the console's root logger name.
func (b *ConfigBuilder) WithName(name string) *ConfigBuilder {
	b.config.Name = name

	return b
}

// WithLevel sets the minimum admitted severity.
// Example: builder.WithLevel(devconsole.DebugLevel).
func (b *ConfigBuilder) WithLevel(level Level) *ConfigBuilder {
	b.config.Level = level

	return b
}

// WithDebugLevel is a convenience method for WithLevel(DebugLevel).
func (b *ConfigBuilder) WithDebugLevel() *ConfigBuilder {
	return b.WithLevel(DebugLevel)
}

// WithInfoLevel is a convenience method for WithLevel(InfoLevel).
func (b *ConfigBuilder) WithInfoLevel() *ConfigBuilder {
	return b.WithLevel(InfoLevel)
}

// WithCapacity sets the log ring buffer capacity.
func (b *ConfigBuilder) WithCapacity(capacity int) *ConfigBuilder {
	b.config.Capacity = capacity

	return b
}

// WithHistorySize sets the command history capacity.
func (b *ConfigBuilder) WithHistorySize(size int) *ConfigBuilder {
	b.config.HistorySize = size

	return b
}

// WithTimeFormat sets the timestamp format for rendered entries.
func (b *ConfigBuilder) WithTimeFormat(format string) *ConfigBuilder {
	b.config.TimeFormat = format

	return b
}

// WithColors enables or disables color output on console sinks.
func (b *ConfigBuilder) WithColors(enable bool) *ConfigBuilder {
	b.config.Color.Enable = enable

	return b
}

// WithForceColors forces color output even when the stream is not a
// terminal.
func (b *ConfigBuilder) WithForceColors(force bool) *ConfigBuilder {
	b.config.Color.ForceTTY = force

	return b
}

// WithLevelColor overrides the ANSI color used for one level.
func (b *ConfigBuilder) WithLevelColor(level Level, colour string) *ConfigBuilder {
	if b.config.Color.LevelColors == nil {
		b.config.Color.LevelColors = DefaultLevelColors()
	}

	b.config.Color.LevelColors[level] = colour

	return b
}

// WithErrorHandler sets the callback for listener panics and sink write
// failures.
func (b *ConfigBuilder) WithErrorHandler(handler func(error)) *ConfigBuilder {
	b.config.ErrorHandler = handler

	return b
}

// WithDevelopmentDefaults configures debug level with colored output.
func (b *ConfigBuilder) WithDevelopmentDefaults() *ConfigBuilder {
	b.config = DevelopmentConfig()

	return b
}

// WithProductionDefaults configures info level without colors.
func (b *ConfigBuilder) WithProductionDefaults() *ConfigBuilder {
	b.config = ProductionConfig()

	return b
}

// Build creates a Config object from the builder.
func (b *ConfigBuilder) Build() Config {
	return b.config
}
