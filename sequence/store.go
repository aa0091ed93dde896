package sequence

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/maruel/natural"
	"github.com/rs/zerolog"
)

// Statement types.
const (
	StatementAppend uint8 = iota
	StatementRepeat
	statementUnknown
)

var (
	ErrKeyNotFound      = errors.New("key does not exist")
	ErrUnknownStatement = errors.New("unknown statement type")
	ErrBatchIncomplete  = errors.New("some operations could not be completed")
)

// A Statement represents an operation to perform on a sequence of a store.
// Operand is used by StatementAppend and Count by StatementRepeat.
type Statement[T any] struct {
	Key               string
	Type              uint8
	Operand           Sequence[T]
	Count             int
	CreateIfNotExists bool
}

// A Store represents a collection of named Sequences. A Store can be used
// simultaneously from multiple goroutines.
type Store[T any] struct {
	m      map[string]Sequence[T]
	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewStore creates and intializes a new Store. The store does not log
// anything until a logger is set with SetLogger.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		m:      make(map[string]Sequence[T]),
		logger: zerolog.Nop(),
	}
}

// SetLogger sets the logger used to report failed statements and loads.
func (s *Store[T]) SetLogger(logger zerolog.Logger) {
	s.mu.Lock()
	s.logger = logger
	s.mu.Unlock()
}

// New adds an empty Sequence to the store using key as its identifier. If a
// Sequence already exists for the identifier it is silently replaced.
func (s *Store[T]) New(key string) {
	s.mu.Lock()
	s.m[key] = Sequence[T]{}
	s.mu.Unlock()
}

// Add adds a copy of x to the store using key as its identifier. If a
// Sequence already exists for the identifier it is silently replaced.
func (s *Store[T]) Add(key string, x Sequence[T]) {
	x = x.clone()
	if x == nil {
		x = Sequence[T]{}
	}
	s.mu.Lock()
	s.m[key] = x
	s.mu.Unlock()
}

// Get returns a copy of the Sequence associated to key. The second return
// value is true if the key exists in the store and false if not.
func (s *Store[T]) Get(key string) (Sequence[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return x.clone(), true
}

// Delete removes the Sequence associated to key, if any.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Execute applies statement to the sequence identified by its key. Appends
// always succeed once the sequence is found or created. A repeat with a
// negative count fails with ErrInvalidArgument and leaves the sequence as it was.
func (s *Store[T]) Execute(statement Statement[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch applies statements in order while holding the store lock, so no
// other goroutine observes a partially applied batch. A failing statement
// does not stop the batch. When any statement fails, Batch returns
// ErrBatchIncomplete with one "<error>, at index <i>" line per failure.
func (s *Store[T]) Batch(statements []Statement[T]) (error, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var report []string
	for i := range statements {
		err := s.executeUnsafe(statements[i])
		if err == nil {
			continue
		}
		s.logger.Debug().Err(err).Str("key", statements[i].Key).Int("index", i).Msg("statement failed")
		report = append(report, fmt.Sprintf("%s, at index %d", err, i))
	}
	if report != nil {
		return ErrBatchIncomplete, report
	}
	return nil, nil
}

// Keys returns the identifiers known in the store in natural order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Sort(natural.StringSlice(keys))
	return keys
}

// Dump exports the store as a JSON object mapping identifiers to an array
// holding the JSON encoding of each element of their sequence.
func (s *Store[T]) Dump() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := make(map[string][]json.RawMessage, len(s.m))
	for k, v := range s.m {
		elements := make([]json.RawMessage, len(v))
		for i := range v {
			b, err := json.Marshal(v[i])
			if err != nil {
				return nil, fmt.Errorf("cannot encode element %d of %q: %w", i, k, err)
			}
			elements[i] = b
		}
		m[k] = elements
	}
	return json.Marshal(m)
}

// Load replaces the content of the store with a dump previously exported
// using the Dump method. The store is left unchanged if data is not a JSON
// object of arrays or if an element cannot be decoded as a T.
func (s *Store[T]) Load(data []byte) error {
	m, err := decodeDump[T](data)
	if err != nil {
		s.mu.RLock()
		s.logger.Debug().Err(err).Int("size", len(data)).Msg("cannot load store")
		s.mu.RUnlock()
		return fmt.Errorf("cannot decode the store: %w", err)
	}
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
	return nil
}

// decodeDump decodes the output of Dump. A null sequence decodes as an
// empty one, a null dump is rejected.
func decodeDump[T any](data []byte) (map[string]Sequence[T], error) {
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("not a JSON object")
	}
	m := make(map[string]Sequence[T], len(raw))
	for k, elements := range raw {
		x := make(Sequence[T], len(elements))
		for i := range elements {
			if err := json.Unmarshal(elements[i], &x[i]); err != nil {
				return nil, fmt.Errorf("element %d of %q: %w", i, k, err)
			}
		}
		m[k] = x
	}
	return m, nil
}

// executeUnsafe looks up or creates the sequence named by statement and
// applies the append or repeat to it. The sequence is stored back only if
// the operation succeeded or the key was just created. The caller must hold
// the write lock.
func (s *Store[T]) executeUnsafe(statement Statement[T]) error {
	if statement.Type >= statementUnknown {
		return ErrUnknownStatement
	}
	x, ok := s.m[statement.Key]
	if !ok {
		if !statement.CreateIfNotExists {
			return ErrKeyNotFound
		}
		x = Sequence[T]{}
	}
	var err error
	switch statement.Type {
	case StatementAppend:
		Append(&x, statement.Operand)
	case StatementRepeat:
		_, err = RepeatInPlace(&x, statement.Count)
	}
	if err == nil || !ok {
		s.m[statement.Key] = x
	}
	return err
}
