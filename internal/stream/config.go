package stream

const (
	DefaultStream       = "aoc-solve"
	DefaultGroup        = "aoc-workers"
	DefaultResultStream = "aoc-answers"

	payloadField = "payload"
)

type Config struct {
	Stream       string
	Group        string
	ConsumerName string
	ResultStream string
}

// NewConfig fills empty stream and group names with the defaults.
func NewConfig(stream string, group string, consumerName string, resultStream string) *Config {
	if stream == "" {
		stream = DefaultStream
	}
	if group == "" {
		group = DefaultGroup
	}
	if consumerName == "" {
		consumerName = "worker"
	}
	if resultStream == "" {
		resultStream = DefaultResultStream
	}
	return &Config{
		Stream:       stream,
		Group:        group,
		ConsumerName: consumerName,
		ResultStream: resultStream,
	}
}
