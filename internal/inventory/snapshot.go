package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/stockpiled/stockpile/internal/metrics"
)

// Snapshotter defines the interface for snapshot operations
type Snapshotter interface {
	Save(path string, data map[string]int) error
	Load(path string) (map[string]int, error)
}

// JSONSnapshotter implements Snapshotter using a JSON file: an object whose
// keys are item names and whose values are non-negative integer quantities.
type JSONSnapshotter struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewJSONSnapshotter creates a new JSONSnapshotter instance
func NewJSONSnapshotter(logger *zap.Logger, m *metrics.Metrics) *JSONSnapshotter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONSnapshotter{logger: logger, metrics: m}
}

// Save writes the stock map to path with keys sorted lexicographically
// and 2-space indentation.
func (s *JSONSnapshotter) Save(path string, data map[string]int) error {
	// encoding/json sorts object keys for map values
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot data: %w", err)
	}
	buf = append(buf, '\n')

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}

// Load reads a stock map from path, sanitizing each entry. Entries whose
// value is not a non-negative integer are skipped with a warning; a document
// that is not a JSON object fails the whole load. A missing file is reported
// as an error satisfying errors.Is(err, os.ErrNotExist).
func (s *JSONSnapshotter) Load(path string) (map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var raw map[string]interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	sanitized := make(map[string]int, len(raw))
	for key, val := range raw {
		if key == "" {
			s.logger.Warn("skipping entry with empty item name")
			s.metrics.RecordSkippedEntry()
			continue
		}
		qty, ok := s.coerceQuantity(key, val)
		if !ok {
			s.metrics.RecordSkippedEntry()
			continue
		}
		if qty == 0 {
			// zero-quantity entries are never stored
			continue
		}
		sanitized[key] = qty
	}
	return sanitized, nil
}

// coerceQuantity accepts exact non-negative integers only; floats, strings,
// and anything else are rejected.
func (s *JSONSnapshotter) coerceQuantity(key string, val interface{}) (int, bool) {
	num, ok := val.(json.Number)
	if !ok {
		s.logger.Warn("skipping entry: quantity is not a number",
			zap.String("item", key),
			zap.Any("value", val))
		return 0, false
	}

	qty, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		s.logger.Warn("skipping entry: quantity is not an integer",
			zap.String("item", key),
			zap.String("value", num.String()))
		return 0, false
	}
	if qty < 0 {
		s.logger.Warn("skipping entry: negative quantity",
			zap.String("item", key),
			zap.Int64("value", qty))
		return 0, false
	}
	return int(qty), true
}
