// internal/services/user_service_test.go
package services

import (
	"context"
	"testing"

	"donation-backend/internal/models"
	apperrors "donation-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	calls      int
	createErr  error
	getErr     error
	deleteErr  error
	lastUpdate bson.M
	user       *models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.calls++
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = primitive.NewObjectID()
	return nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	f.calls++
	if f.user == nil {
		return nil, nil
	}
	return []models.User{*f.user}, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	f.calls++
	f.lastUpdate = update
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.calls++
	return f.deleteErr
}

func TestUserServiceCreateRequiresEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{Name: "no email"})

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrValidation))
	assert.Equal(t, 0, repo.calls, "validation failures must not reach storage")
}

func TestUserServiceCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name:  "Rahim",
		Email: "rahim@example.com",
	})

	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "rahim@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestUserServiceCreateAcceptsAnyNonEmptyEmail(t *testing.T) {
	// Email validation is presence-only; format is not checked.
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Email: "admin@localhost",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin@localhost", user.Email)
	assert.Equal(t, 1, repo.calls)
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{createErr: apperrors.NewDuplicateEmailError()}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{Email: "taken@example.com"})

	require.Error(t, err)
	assert.Equal(t, 409, apperrors.GetStatusCode(err))
}

func TestUserServiceRejectsMalformedID(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "not-a-hex-id")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrInvalidID))

	_, err = svc.Update(ctx, "not-a-hex-id", &models.UpdateUserRequest{})
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrInvalidID))

	err = svc.Delete(ctx, "not-a-hex-id")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrInvalidID))

	assert.Equal(t, 0, repo.calls, "malformed ids must not reach storage")
}

func TestUserServiceUpdateSetsOnlySuppliedFields(t *testing.T) {
	repo := &fakeUserRepo{user: &models.User{Email: "rahim@example.com"}}
	svc := NewUserService(repo)

	name := "Rahim Uddin"
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateUserRequest{
		Name: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", repo.lastUpdate["name"])
	assert.Contains(t, repo.lastUpdate, "updatedAt")
	assert.NotContains(t, repo.lastUpdate, "email")
	assert.NotContains(t, repo.lastUpdate, "phone")
}

func TestUserServiceDeleteMissingUser(t *testing.T) {
	repo := &fakeUserRepo{deleteErr: apperrors.NewUserNotFoundError()}
	svc := NewUserService(repo)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())

	require.Error(t, err)
	assert.Equal(t, 404, apperrors.GetStatusCode(err))
}
