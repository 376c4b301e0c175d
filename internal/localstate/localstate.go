package localstate

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

// Store is a small file-backed key/value bag for state that lives outside the
// database: the tracker cursor and the vacation-day set. Every Set writes
// through to disk so the state survives restarts.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]any
}

func New(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]any),
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, errors.New("reading state file error: " + err.Error())
	}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &s.data); err != nil {
			// corrupt state file starts over empty
			s.data = make(map[string]any)
		}
	}
	return s, nil
}

func (s *Store) GetString(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key].(string)
	return v, ok
}

func (s *Store) SetString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flushLocked()
}

func (s *Store) GetStrings(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch v := s.data[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

func (s *Store) SetStrings(key string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]string(nil), values...)
	return s.flushLocked()
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	raw, err := sonic.Marshal(s.data)
	if err != nil {
		return errors.New("encoding state error: " + err.Error())
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("creating state dir error: " + err.Error())
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.New("writing state file error: " + err.Error())
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.New("replacing state file error: " + err.Error())
	}
	return nil
}
