package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/avorobeva/go-post-board/internal/auth/models"
	"github.com/avorobeva/go-post-board/internal/auth/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты хранилища пользователей:
// — поднимают реальный PostgreSQL через testcontainers-go (postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют SaveUser (включая дубликаты username/email),
//   UserByUsername и UserByID.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/auth/storage/postgres -v -race -count=1

// repoRootFromThisFile — корень репозитория относительно текущего файла,
// чтобы найти каталог ./migrations вне зависимости от рабочей директории.
func repoRootFromThisFile() string {
	// internal/auth/storage/postgres/... -> подняться на 4 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func readMigration(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres поднимает контейнер, применяет миграции и возвращает хранилище.
// Без GO_TEST_INTEGRATION тест пропускается.
func startPostgres(t *testing.T) *Storage {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		ProviderType:     tc.ProviderDocker,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_users.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	return st
}

func testUser(username, email string) *models.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestIntegration_SaveUser_And_UserByUsername(t *testing.T) {
	st := startPostgres(t)

	want := testUser("alice", "alice@example.com")
	require.NoError(t, st.SaveUser(context.Background(), want))

	got, err := st.UserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Username, got.Username)
	require.Equal(t, want.Email, got.Email)
	require.Equal(t, want.PasswordHash, got.PasswordHash)
	require.Equal(t, want.Role, got.Role)
	require.WithinDuration(t, want.CreatedAt, got.CreatedAt, time.Second)
}

func TestIntegration_SaveUser_DuplicateUsername(t *testing.T) {
	st := startPostgres(t)

	require.NoError(t, st.SaveUser(context.Background(), testUser("alice", "alice@example.com")))

	err := st.SaveUser(context.Background(), testUser("alice", "other@example.com"))
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_SaveUser_DuplicateEmail(t *testing.T) {
	st := startPostgres(t)

	require.NoError(t, st.SaveUser(context.Background(), testUser("alice", "alice@example.com")))

	err := st.SaveUser(context.Background(), testUser("bob", "alice@example.com"))
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_UserByUsername_NotFound(t *testing.T) {
	st := startPostgres(t)

	_, err := st.UserByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UserByID(t *testing.T) {
	st := startPostgres(t)

	want := testUser("alice", "alice@example.com")
	require.NoError(t, st.SaveUser(context.Background(), want))

	got, err := st.UserByID(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want.Username, got.Username)

	_, err = st.UserByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ExpiredContext(t *testing.T) {
	st := startPostgres(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.UserByUsername(ctx, "alice")
	require.Error(t, err)
}
