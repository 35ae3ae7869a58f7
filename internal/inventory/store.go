package inventory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/stockpiled/stockpile/internal/metrics"
)

// Store owns the stock map: item name -> on-hand quantity. Stored quantities
// are always >= 1; an operation that would leave an entry at zero or below
// deletes the entry instead. The store assumes a single caller thread of
// control and is not safe for concurrent use.
type Store struct {
	data        map[string]int
	snapshotter Snapshotter
	sink        LogSink
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// NewStore creates a new Store instance. sink may be nil when the caller does
// not want an operation log; metrics may be nil as well.
func NewStore(snapshotter Snapshotter, sink LogSink, logger *zap.Logger, m *metrics.Metrics) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		data:        make(map[string]int),
		snapshotter: snapshotter,
		sink:        sink,
		logger:      logger,
		metrics:     m,
	}
}

func validateItem(item string) error {
	if item == "" {
		return NewError(ErrorTypeInvalidArgument, "item must be a non-empty string")
	}
	return nil
}

func validateQuantity(qty int) error {
	if qty < 0 {
		return NewError(ErrorTypeInvalidArgument, "quantity must be non-negative, got %d", qty)
	}
	return nil
}

// Add increments the stored quantity for item by qty, creating the entry when
// absent. A successful add is appended to the operation log sink.
func (s *Store) Add(item string, qty int) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if err := validateQuantity(qty); err != nil {
		return err
	}

	if next := s.data[item] + qty; next > 0 {
		s.data[item] = next
	}

	if s.sink != nil {
		entry := Entry{
			Timestamp: time.Now(),
			Message:   fmt.Sprintf("Added %d of %s", qty, item),
		}
		if err := s.sink.Append(entry); err != nil {
			s.logger.Warn("operation log append failed", zap.Error(err))
		}
	}

	s.logger.Info("added stock", zap.String("item", item), zap.Int("qty", qty))
	s.metrics.RecordAdd()
	s.metrics.SetItems(len(s.data))
	return nil
}

// Remove decrements the stored quantity for item by qty, deleting the entry
// when the result would be zero or below. It returns false when the item is
// not in stock.
func (s *Store) Remove(item string, qty int) (bool, error) {
	if err := validateItem(item); err != nil {
		return false, err
	}
	if err := validateQuantity(qty); err != nil {
		return false, err
	}

	current, exists := s.data[item]
	if !exists {
		s.logger.Warn("item not found in stock", zap.String("item", item))
		s.metrics.RecordRemove(metrics.ResultMissing)
		return false, nil
	}

	if qty >= current {
		delete(s.data, item)
	} else {
		s.data[item] = current - qty
	}

	s.logger.Info("removed stock", zap.String("item", item), zap.Int("qty", qty))
	s.metrics.RecordRemove(metrics.ResultOK)
	s.metrics.SetItems(len(s.data))
	return true, nil
}

// Quantity returns the stored quantity for item, 0 when the item is unknown.
func (s *Store) Quantity(item string) (int, error) {
	if err := validateItem(item); err != nil {
		return 0, err
	}
	return s.data[item], nil
}

// LowStock returns the items whose quantity is strictly below threshold, in
// map-iteration order.
func (s *Store) LowStock(threshold int) ([]string, error) {
	if threshold < 0 {
		return nil, NewError(ErrorTypeInvalidArgument, "threshold must be non-negative, got %d", threshold)
	}

	low := make([]string, 0)
	for item, qty := range s.data {
		if qty < threshold {
			low = append(low, item)
		}
	}
	return low, nil
}

// Load replaces the stock map with the sanitized contents of the snapshot at
// path. Every failure is tolerated: a missing file, a parse error, or an I/O
// error leaves the current stock untouched and surfaces only as a diagnostic.
func (s *Store) Load(path string) {
	data, err := s.snapshotter.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("inventory file not found, keeping current stock",
				zap.String("path", path))
			s.metrics.RecordSnapshotLoad(metrics.ResultMissing)
			return
		}
		s.logger.Error("failed to load inventory",
			zap.String("path", path),
			zap.Error(err))
		s.metrics.RecordSnapshotLoad(metrics.ResultError)
		return
	}

	s.data = data
	s.logger.Info("data loaded successfully",
		zap.String("path", path),
		zap.Int("items", len(data)))
	s.metrics.RecordSnapshotLoad(metrics.ResultOK)
	s.metrics.SetItems(len(data))
}

// Save persists the stock map to the snapshot at path. An I/O failure is
// logged and swallowed; the process continues.
func (s *Store) Save(path string) {
	if err := s.snapshotter.Save(path, s.data); err != nil {
		s.logger.Error("failed to save inventory",
			zap.String("path", path),
			zap.Error(err))
		s.metrics.RecordSnapshotSave(metrics.ResultError)
		return
	}

	s.logger.Info("data saved successfully", zap.String("path", path))
	s.metrics.RecordSnapshotSave(metrics.ResultOK)
}

// WriteReport writes the stock report to w: a header line followed by one
// "<item> -> <qty>" line per item, sorted by item name.
func (s *Store) WriteReport(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Items Report:"); err != nil {
		return err
	}

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", name, s.data[name]); err != nil {
			return err
		}
	}
	return nil
}

// Items returns a snapshot of the current stock map
func (s *Store) Items() map[string]int {
	// Return a copy to prevent external modifications
	result := make(map[string]int, len(s.data))
	for item, qty := range s.data {
		result[item] = qty
	}
	return result
}

// Len returns the number of distinct items in stock
func (s *Store) Len() int {
	return len(s.data)
}
