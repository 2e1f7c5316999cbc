//go:build integration

package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"comunidad/internal/storage"
	"comunidad/pkg/testutil/containers"
)

type PostgresKVSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	kv       *storage.Postgres
}

func TestPostgresKVSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresKVSuite))
}

func (s *PostgresKVSuite) SetupSuite() {
	s.postgres = containers.StartPostgres(s.T())
	s.kv = storage.NewPostgres(s.postgres.Pool)
	s.Require().NoError(s.kv.EnsureSchema(context.Background()))
}

func (s *PostgresKVSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "kv_entries"))
}

func (s *PostgresKVSuite) TestRoundTrip() {
	ctx := context.Background()

	_, ok, err := s.kv.Read(ctx, "announcements")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.kv.Write(ctx, "announcements", []byte(`[]`)))

	value, ok, err := s.kv.Read(ctx, "announcements")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal([]byte(`[]`), value)
}

func (s *PostgresKVSuite) TestUpsert() {
	ctx := context.Background()

	s.Require().NoError(s.kv.Write(ctx, "invoices", []byte(`[1]`)))
	s.Require().NoError(s.kv.Write(ctx, "invoices", []byte(`[1,2]`)))

	value, _, err := s.kv.Read(ctx, "invoices")
	s.Require().NoError(err)
	s.Equal([]byte(`[1,2]`), value)
}

func (s *PostgresKVSuite) TestDelete() {
	ctx := context.Background()

	s.Require().NoError(s.kv.Write(ctx, "visitors", []byte(`[]`)))
	s.Require().NoError(s.kv.Delete(ctx, "visitors"))

	_, ok, err := s.kv.Read(ctx, "visitors")
	s.Require().NoError(err)
	s.False(ok)
}
