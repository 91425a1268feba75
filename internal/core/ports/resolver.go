package ports

// StorageResolver maps the watched drop root and loaded app names to
// on-disk locations. Both lookups can fail with a not-found condition;
// the resolver never creates the directories it resolves.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type StorageResolver interface {
	// UserStorageRoot returns the watched drop directory.
	// Returns domain.ErrRootNotFound when it does not exist.
	UserStorageRoot() (string, error)

	// LoadedAppPath returns the storage directory of the loaded app with the
	// given name. Returns domain.ErrAppNotLoaded when no such app has been
	// loaded, and domain.ErrInvalidAppName for unusable names.
	LoadedAppPath(name string) (string, error)
}
