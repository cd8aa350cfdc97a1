package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory hands out one shared set of repositories per database handle.
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// Repositories builds the set on first use.
func (f *Factory) Repositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

var (
	global     *Factory
	globalOnce sync.Once
)

// InitializeFactory binds the process wide factory to db. Later calls are no-ops.
func InitializeFactory(db *gorm.DB) {
	globalOnce.Do(func() {
		global = NewFactory(db)
	})
}

// GetGlobalRepositories panics when InitializeFactory has not run, since every
// handler depends on it.
func GetGlobalRepositories() *Repositories {
	if global == nil {
		panic("repository: InitializeFactory must be called before GetGlobalRepositories")
	}
	return global.Repositories()
}
