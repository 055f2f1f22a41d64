package storage

import "fmt"

func NewRecorder(kind, sqlitePath string) (Recorder, error) {
	switch kind {
	case "", "memory":
		return NewMemoryRecorder(), nil
	case "sqlite":
		return NewSQLiteRecorder(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported recorder backend: %s", kind)
	}
}

func CloseIfSupported(rec Recorder) error {
	closer, ok := rec.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
