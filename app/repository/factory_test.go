package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsite/modteam/internal/pkg/testdb"
)

func TestFactoryReturnsSameRepositories(t *testing.T) {
	f := NewFactory(testdb.Open(t))

	repos := f.Repositories()
	require.NotNil(t, repos.News)
	assert.Same(t, repos, f.Repositories())
}

func TestGlobalRepositoriesNeedInitialization(t *testing.T) {
	assert.Panics(t, func() { GetGlobalRepositories() })
}
