package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/barstock/internal/repository"
	"github.com/mamadbah2/barstock/internal/repository/repotest"
)

// Runs only against a real server, e.g. MONGODB_TEST_URI=mongodb://localhost:27017.
func TestRepositoryContract(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	n := 0
	repotest.Run(t, func(t *testing.T) repository.Store {
		n++
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		dbName := fmt.Sprintf("barstock_test_%d_%d", time.Now().UnixNano(), n)
		repo, err := NewMongoDBRepository(ctx, uri, dbName, nil)
		require.NoError(t, err)

		t.Cleanup(func() {
			ctx := context.Background()
			_ = repo.db.Drop(ctx)
			_ = repo.Close(ctx)
		})
		return repo
	})
}
