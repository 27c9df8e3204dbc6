package services

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"parley/auth"
	"parley/domain"
	"parley/errors"
	"parley/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const strongPassword = "Tr0p-Secret-Pass!"

func TestRegister_Hashes_Then_Mints_A_Token(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)

	users.EXPECT().CreateUser(gomock.Any(), "ada@example.com", "ada", gomock.Any()).
		DoAndReturn(func(ctx context.Context, email, username, passwordHash string) (string, error) {
			// The plain text never reaches the store
			require.NotEqual(t, strongPassword, passwordHash)
			match, err := auth.ComparePassword(strongPassword, passwordHash)
			require.NoError(t, err)
			require.True(t, match)
			return "user-1", nil
		})

	svc := NewAuthService(users, time.Minute)
	token, err := svc.Register(context.Background(), "ada@example.com", "ada", strongPassword)
	req.NoError(err)

	claims, err := auth.ValidateToken(string(token))
	req.NoError(err)
	req.Equal("user-1", claims.UserID)
	req.Equal("ada", claims.Username)
}

func TestRegister_Weak_Password_Never_Reaches_The_Store(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	// No CreateUser expectation: validation fails first

	svc := NewAuthService(users, time.Minute)
	_, err := svc.Register(context.Background(), "ada@example.com", "ada", "alllowercase")
	req.ErrorIs(err, errors.ErrInvalidPassword)
}

func TestRegister_Propagates_Duplicate_Email(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.ErrUserAlreadyExists)

	svc := NewAuthService(users, time.Minute)
	_, err := svc.Register(context.Background(), "ada@example.com", "ada", strongPassword)
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestLogin_Succeeds_With_The_Right_Password(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)

	hash, err := auth.HashPassword(strongPassword)
	req.NoError(err)
	users.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").
		Return(domain.User{ID: "user-1", Username: "ada", PasswordHash: hash}, nil)

	svc := NewAuthService(users, time.Minute)
	token, err := svc.Login(context.Background(), "ada@example.com", strongPassword)
	req.NoError(err)

	claims, err := auth.ValidateToken(string(token))
	req.NoError(err)
	req.Equal("user-1", claims.UserID)
}

func TestLogin_Does_Not_Reveal_Whether_The_Account_Exists(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)

	hash, err := auth.HashPassword(strongPassword)
	req.NoError(err)
	users.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").
		Return(domain.User{ID: "user-1", PasswordHash: hash}, nil)
	users.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(domain.User{}, errors.ErrNotFound)

	svc := NewAuthService(users, time.Minute)

	// Wrong password on an existing account and an unknown account fail with
	// the same error
	_, errWrongPass := svc.Login(context.Background(), "ada@example.com", "WrongPassw0rd!")
	_, errNoAccount := svc.Login(context.Background(), "ghost@example.com", strongPassword)
	req.ErrorIs(errWrongPass, errors.ErrInvalidCredentials)
	req.ErrorIs(errNoAccount, errors.ErrInvalidCredentials)
}

func TestAuthenticate_Resolves_The_Identity(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	users.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(domain.User{ID: "user-1", Username: "ada"}, nil)

	token, err := auth.GenerateToken("user-1", "ada", time.Minute)
	req.NoError(err)

	svc := NewAuthService(users, time.Minute)
	userID, username, err := svc.Authenticate(context.Background(), token)
	req.NoError(err)
	req.Equal("user-1", userID)
	req.Equal("ada", username)
}

func TestAuthenticate_Deleted_User_Is_An_Auth_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	users.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(domain.User{}, errors.ErrNotFound)

	token, err := auth.GenerateToken("user-1", "ada", time.Minute)
	req.NoError(err)

	svc := NewAuthService(users, time.Minute)
	_, _, err = svc.Authenticate(context.Background(), token)
	req.ErrorIs(err, errors.ErrAuthentication)
}

func TestAuthenticate_Store_Outage_Is_Fatal_Not_An_Auth_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	users.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(domain.User{}, stderrors.New("connection refused"))

	token, err := auth.GenerateToken("user-1", "ada", time.Minute)
	req.NoError(err)

	svc := NewAuthService(users, time.Minute)
	_, _, err = svc.Authenticate(context.Background(), token)
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	req.NotErrorIs(err, errors.ErrAuthentication)
}

func TestAuthenticate_Rejects_A_Bad_Token(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)

	svc := NewAuthService(users, time.Minute)
	_, _, err := svc.Authenticate(context.Background(), "not-a-token")
	req.ErrorIs(err, errors.ErrAuthentication)
}
