package refqueue

import (
	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/foundation/normalization"
	"git.home.luguber.info/inful/listingproc/internal/logfields"
)

// Backend selects the Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

var backendNormalizer = normalization.NewNormalizer(map[string]Backend{
	"file":   BackendFile,
	"sqlite": BackendSQLite,
}, BackendFile)

// ParseBackend normalizes a backend name.
func ParseBackend(raw string) (Backend, error) {
	b, err := backendNormalizer.NormalizeWithError(raw)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryConfig, "unknown queue backend").Build()
	}
	return b, nil
}

// ValidBackends lists the accepted backend names.
func ValidBackends() []string {
	return backendNormalizer.ValidKeys()
}

// OpenStore opens the store for backend at path.
func OpenStore(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(path), nil
	case BackendSQLite:
		store, err := NewSQLiteStore(path)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryStore, "could not open queue database").
				WithContext(logfields.KeyPath, path).
				Build()
		}
		return store, nil
	default:
		return nil, ferrors.ConfigError("unknown queue backend: " + string(backend)).Build()
	}
}
