// Package corpus streams a text corpus through a line normalizer.
package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/eslsoft/casenorm/internal/usecase/casing"
)

const (
	defaultReadBufferSize  = 64 * 1024
	defaultWriteBufferSize = 64 * 1024
	contextCheckInterval   = 256
	meterName              = "github.com/eslsoft/casenorm/internal/usecase/corpus"
)

// Metric names exported by the stream driver.
const (
	LinesCounterName        = "casenorm_lines_total"
	BytesReadCounterName    = "casenorm_bytes_read_total"
	BytesWrittenCounterName = "casenorm_bytes_written_total"
)

var (
	// ErrInvalidUTF8 reports an input line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("corpus: invalid UTF-8")
	// ErrNilNormalizer is returned by NewService when no normalizer is supplied.
	ErrNilNormalizer = errors.New("corpus: normalizer is required")
)

// Stats summarizes a completed (or aborted) run.
type Stats struct {
	RunID        string
	Lines        int64
	BytesRead    int64
	BytesWritten int64
	Duration     time.Duration
}

// Service reads lines from a source, normalizes them and writes them to a sink.
type Service struct {
	normalizer casing.LineNormalizer
	logger     logrus.FieldLogger
	meter      metric.Meter

	linesCounter        metric.Int64Counter
	bytesReadCounter    metric.Int64Counter
	bytesWrittenCounter metric.Int64Counter
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for run summaries.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMeter sets the meter used to record line and byte counters.
func WithMeter(meter metric.Meter) Option {
	return func(s *Service) {
		if meter != nil {
			s.meter = meter
		}
	}
}

// NewService constructs a stream driver around normalizer.
func NewService(normalizer casing.LineNormalizer, opts ...Option) (*Service, error) {
	if normalizer == nil {
		return nil, ErrNilNormalizer
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	svc := &Service{
		normalizer: normalizer,
		logger:     discard,
		meter:      noop.NewMeterProvider().Meter(meterName),
	}
	for _, opt := range opts {
		opt(svc)
	}

	var err error
	svc.linesCounter, err = svc.meter.Int64Counter(LinesCounterName,
		metric.WithDescription("Lines normalized"))
	if err != nil {
		return nil, fmt.Errorf("corpus: create lines counter: %w", err)
	}
	svc.bytesReadCounter, err = svc.meter.Int64Counter(BytesReadCounterName,
		metric.WithDescription("Bytes read from the source"), metric.WithUnit("By"))
	if err != nil {
		return nil, fmt.Errorf("corpus: create bytes read counter: %w", err)
	}
	svc.bytesWrittenCounter, err = svc.meter.Int64Counter(BytesWrittenCounterName,
		metric.WithDescription("Bytes written to the sink"), metric.WithUnit("By"))
	if err != nil {
		return nil, fmt.Errorf("corpus: create bytes written counter: %w", err)
	}
	return svc, nil
}

// Run normalizes every line of r in order and writes each result, followed by a
// newline, to w. Output is flushed before Run returns, on success or failure.
// The first read, write or encoding error aborts the run.
func (s *Service) Run(ctx context.Context, r io.Reader, w io.Writer) (stats Stats, err error) {
	start := time.Now()
	stats.RunID = uuid.NewString()
	logger := s.logger.WithField("run_id", stats.RunID)
	logger.Debug("corpus normalization started")

	reader := bufio.NewReaderSize(r, defaultReadBufferSize)
	writer := bufio.NewWriterSize(w, defaultWriteBufferSize)
	defer func() {
		if ferr := writer.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("corpus: flush output: %w", ferr)
		}
		stats.Duration = time.Since(start)
		s.record(ctx, stats)
		entry := logger.WithFields(logrus.Fields{
			"lines":         stats.Lines,
			"bytes_read":    stats.BytesRead,
			"bytes_written": stats.BytesWritten,
			"duration":      stats.Duration,
		})
		if err != nil {
			entry.WithError(err).Error("corpus normalization failed")
			return
		}
		entry.Info("corpus normalization completed")
	}()

	for {
		if stats.Lines%contextCheckInterval == 0 {
			if cerr := ctx.Err(); cerr != nil {
				return stats, cerr
			}
		}

		raw, rerr := reader.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return stats, fmt.Errorf("corpus: read line %d: %w", stats.Lines+1, rerr)
		}
		if raw == "" {
			// EOF with nothing pending.
			return stats, nil
		}
		stats.BytesRead += int64(len(raw))

		line := trimLineEnding(raw)
		if !utf8.ValidString(line) {
			return stats, fmt.Errorf("%w: line %d", ErrInvalidUTF8, stats.Lines+1)
		}

		out := s.normalizer.Normalize(line)
		n, werr := writer.WriteString(out)
		stats.BytesWritten += int64(n)
		if werr == nil {
			werr = writer.WriteByte('\n')
			if werr == nil {
				stats.BytesWritten++
			}
		}
		if werr != nil {
			return stats, fmt.Errorf("corpus: write line %d: %w", stats.Lines+1, werr)
		}
		stats.Lines++

		if rerr != nil {
			// Final line had no trailing newline.
			return stats, nil
		}
	}
}

func (s *Service) record(ctx context.Context, stats Stats) {
	// Counters are recorded even for cancelled runs.
	ctx = context.WithoutCancel(ctx)
	s.linesCounter.Add(ctx, stats.Lines)
	s.bytesReadCounter.Add(ctx, stats.BytesRead)
	s.bytesWrittenCounter.Add(ctx, stats.BytesWritten)
}

// trimLineEnding strips a trailing "\n" and, if present, the "\r" before it.
func trimLineEnding(raw string) string {
	line := strings.TrimSuffix(raw, "\n")
	return strings.TrimSuffix(line, "\r")
}
