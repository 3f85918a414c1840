package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
	"github.com/retailnet/pos-admin/internal/core/service"
	"github.com/retailnet/pos-admin/internal/infrastructure/db/postgres"
	"github.com/retailnet/pos-admin/pkg/logger"
)

// TestIntegration runs the repositories against a real database.
func TestIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	if err := godotenv.Load("../../../../.env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("load .env: %v", err)
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	logger.Init(logger.Options{Level: "warn"})

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, postgres.Config{URL: dbURL})
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, postgres.Migrate(pool))

	suffix := time.Now().UnixNano()
	storeName := fmt.Sprintf("it-store-%d", suffix)
	username := fmt.Sprintf("it_admin_%d", suffix)

	stores := postgres.NewStoreRepository(pool)
	store, err := stores.Create(ctx, domain.StoreInput{Name: storeName, Status: domain.StoreActive})
	require.NoError(t, err)

	_, err = stores.Create(ctx, domain.StoreInput{Name: storeName, Status: domain.StoreActive})
	assert.ErrorIs(t, err, domain.ErrStoreNameTaken)

	userID := seedLegacyAdmin(t, pool, username, "rahasia", store.ID)
	seedTransactions(t, pool, store.ID, userID)

	t.Run("legacy login migrates password", func(t *testing.T) {
		users := postgres.NewUserRepository(pool)
		auth := service.NewAuthService(users, service.NewTokenManager("it-secret", "pos-admin", time.Hour), zerolog.Nop())

		_, _, err := auth.Login(ctx, username, "wrong")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)

		token, user, err := auth.Login(ctx, username, "rahasia")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, userID, user.ID)

		cred, err := users.FindPrivilegedByUsername(ctx, username)
		require.NoError(t, err)
		assert.True(t, cred.Hashed)
		assert.NotEqual(t, "rahasia", cred.Password)
	})

	t.Run("store with users cannot be deleted", func(t *testing.T) {
		svc := service.NewStoreService(stores, zerolog.Nop())
		assert.ErrorIs(t, svc.Delete(ctx, store.ID), domain.ErrStoreHasUsers)
	})

	t.Run("transactions filter and summary", func(t *testing.T) {
		txs := postgres.NewTransactionRepository(pool)
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		rng := ports.DateRange{Start: day, End: day}

		rows, total, err := txs.List(ctx, ports.Criteria{StoreID: &store.ID, DateRange: &rng}, ports.NewPage(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total, "the end date covers the whole day")
		assert.Len(t, rows, 2)

		rows, _, err = txs.List(ctx, ports.Criteria{StoreID: &store.ID, Search: "100%"}, ports.NewPage(1, 10))
		require.NoError(t, err)
		assert.Empty(t, rows, "% is matched literally")

		summary, err := txs.Summary(ctx, &store.ID, rng)
		require.NoError(t, err)
		require.Len(t, summary, 1)
		assert.Equal(t, 15000.0, summary[0].QRISTotal)
		assert.Equal(t, 5000.0, summary[0].CashTotal)
		assert.Equal(t, 20000.0, summary[0].GrandTotal)
	})
}

func seedLegacyAdmin(t *testing.T, pool *pgxpool.Pool, username, password string, storeID int64) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (telegram_username, full_name, password, password_hashed, role_id, status, store_id)
		VALUES ($1, 'Integration Admin', $2, FALSE, 1, 'active', $3)
		RETURNING id`, username, password, storeID).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedTransactions(t *testing.T, pool *pgxpool.Pool, storeID, userID int64) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO transactions (invoice_number, cashier_name, store_id, user_id, payment_method, total_amount, transaction_date)
		VALUES ('IT-1', 'Andi', $1, $2, 'QRIS', 15000, '2024-03-01 08:00:00'),
		       ('IT-2', 'Andi', $1, $2, 'Tunai', 5000, '2024-03-01 23:59:30')`, storeID, userID)
	require.NoError(t, err)
}
