package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository"
)

type stubUserRepo struct {
	users map[string]domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = uint(len(r.users) + 1)
	r.users[user.Email] = user
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestAuthServiceSignupAndLogin(t *testing.T) {
	repo := &stubUserRepo{users: map[string]domain.User{}}
	svc := NewAuthService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{
		Email:    "admin@wukong.co.id",
		Password: "sup3rsecret",
		Name:     "Admin",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "sup3rsecret", created.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("sup3rsecret")))

	user, err := svc.Login(ctx, "admin@wukong.co.id", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthServiceSignupDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{users: map[string]domain.User{}}
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{Email: "admin@wukong.co.id", Password: "sup3rsecret"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.User{Email: "admin@wukong.co.id", Password: "other0000"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := &stubUserRepo{users: map[string]domain.User{}}
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{Email: "admin@wukong.co.id", Password: "sup3rsecret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin@wukong.co.id", "wrongpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	repo := &stubUserRepo{users: map[string]domain.User{}}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), "nobody@wukong.co.id", "whatever12")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
