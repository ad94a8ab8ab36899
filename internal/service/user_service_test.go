package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/internal/repository/mocks"
	"github.com/limbo/healthydev/internal/service"
	"github.com/limbo/healthydev/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestUserServiceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash("test_password")
	if err != nil {
		t.Fatal(err)
	}
	user := &entity.User{ID: uuid.New(), Name: "test_user", PasswordHash: hash}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
		Call         func() error
	}{
		{
			Desc:         "invalid name",
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
			Call: func() error {
				_, err := us.Register(ctx, &service.RegisterRequest{Name: "1abc", Password: "test_password"})
				return err
			},
		},
		{
			Desc:  "name taken",
			Error: errorvalues.ErrUserExists,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
			},
			Call: func() error {
				_, err := us.Register(ctx, &service.RegisterRequest{Name: "test_user", Password: "test_password"})
				return err
			},
		},
		{
			Desc:  "unknown name",
			Error: errorvalues.ErrWrongCredentials,
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "nobody").Return(nil, errorvalues.ErrUserNotFound)
			},
			Call: func() error {
				_, err := us.Login(ctx, "nobody", "test_password")
				return err
			},
		},
		{
			Desc:  "wrong password",
			Error: errorvalues.ErrWrongCredentials,
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), user.Name).Return(user, nil)
			},
			Call: func() error {
				_, err := us.Login(ctx, user.Name, "wrong_password")
				return err
			},
		},
		{
			Desc:  "store failure",
			Error: errorvalues.ErrTransientStore,
			MockPrepFunc: func() {
				repo.EXPECT().FindByID(gomock.Any(), user.ID).
					Return(nil, errorvalues.NewStoreError("searching user", errors.New("timeout")))
			},
			Call: func() error {
				return us.DeleteAccount(ctx, user.ID, "test_password")
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			assert.ErrorIs(t, tc.Call(), tc.Error)
		})
	}
}

func TestUserServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	dbCfg := setupUsersTestDB(t)
	pool, err := pgxpool.New(context.Background(), dbCfg.ConnString())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)
	repo := repository.NewUsersRepoWithConn(pool)
	us := service.NewUserService(repo)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa", "bbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("healthydev"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
