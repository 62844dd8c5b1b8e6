package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanha17/online-shop/config"
	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/pkg/errs"
)

func newUserServiceFixture() (UserService, *fakeUserRepo, *fakeProductRepo) {
	userRepo := newFakeUserRepo()
	productRepo := newFakeProductRepo()
	conf := config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1}

	return CreateUserService(userRepo, productRepo, conf), userRepo, productRepo
}

func Test_AddUser(t *testing.T) {
	type TestCase struct {
		Name        string
		Request     dto.UserRequest
		ExpectedErr error
	}

	testCases := []TestCase{
		{
			Name:    "Valid request",
			Request: dto.UserRequest{Name: "test", Email: "test@gmail.com", Password: "123456"},
		},
		{
			Name:        "Missing email",
			Request:     dto.UserRequest{Name: "test", Password: "123456"},
			ExpectedErr: errs.ErrClient,
		},
		{
			Name:        "Missing name",
			Request:     dto.UserRequest{Email: "test@gmail.com", Password: "123456"},
			ExpectedErr: errs.ErrClient,
		},
		{
			Name:        "Missing password",
			Request:     dto.UserRequest{Name: "test", Email: "test@gmail.com"},
			ExpectedErr: errs.ErrClient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			svc, userRepo, _ := newUserServiceFixture()

			res, err := svc.AddUser(context.Background(), tc.Request)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.NotEmpty(t, res.ExternalID)
			assert.Equal(t, "User", res.Role)
			assert.Equal(t, tc.Request.Email, res.Email)

			stored := userRepo.get(tc.Request.Email)
			assert.NotEqual(t, tc.Request.Password, stored.HashedPassword)
		})
	}
}

func Test_AddUser_DuplicateEmail(t *testing.T) {
	svc, _, _ := newUserServiceFixture()

	payload := dto.UserRequest{Name: "test", Email: "test@gmail.com", Password: "123456"}
	_, err := svc.AddUser(context.Background(), payload)
	require.NoError(t, err)

	_, err = svc.AddUser(context.Background(), payload)
	assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
}

func Test_UserLogin(t *testing.T) {
	svc, _, _ := newUserServiceFixture()

	_, err := svc.AddUser(context.Background(), dto.UserRequest{Name: "test", Email: "test@gmail.com", Password: "123456"})
	require.NoError(t, err)

	type TestCase struct {
		Name        string
		Request     dto.UserRequest
		ExpectedErr error
	}

	testCases := []TestCase{
		{
			Name:    "Valid request",
			Request: dto.UserRequest{Email: "test@gmail.com", Password: "123456"},
		},
		{
			Name:        "Wrong password",
			Request:     dto.UserRequest{Email: "test@gmail.com", Password: "1234"},
			ExpectedErr: errs.ErrInvalidCredentials,
		},
		{
			Name:        "Unknown email",
			Request:     dto.UserRequest{Email: "nobody@gmail.com", Password: "123456"},
			ExpectedErr: errs.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			res, err := svc.Login(context.Background(), tc.Request)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				assert.Empty(t, res.AccessToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "test@gmail.com", res.User.Email)
			assert.Equal(t, "test", res.User.Name)

			token, err := jwt.Parse(res.AccessToken, func(token *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			require.NoError(t, err)

			claims := token.Claims.(jwt.MapClaims)
			assert.Equal(t, "test@gmail.com", claims["email"])
			assert.Equal(t, "test", claims["name"])
		})
	}
}

func Test_GetUsers(t *testing.T) {
	svc, _, _ := newUserServiceFixture()

	_, err := svc.AddUser(context.Background(), dto.UserRequest{Name: "a", Email: "a@gmail.com", Password: "123456"})
	require.NoError(t, err)
	_, err = svc.AddUser(context.Background(), dto.UserRequest{Name: "b", Email: "b@gmail.com", Password: "123456"})
	require.NoError(t, err)

	users, err := svc.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@gmail.com", users[0].Email)
	assert.Equal(t, "b@gmail.com", users[1].Email)
}

func Test_Favorites(t *testing.T) {
	svc, userRepo, productRepo := newUserServiceFixture()

	_, err := svc.AddUser(context.Background(), dto.UserRequest{Name: "test", Email: "test@gmail.com", Password: "123456"})
	require.NoError(t, err)

	first := productRepo.seed(domain.Product{Name: "keyboard", Price: 50})
	second := productRepo.seed(domain.Product{Name: "mouse", Price: 25})

	require.NoError(t, svc.AddFavorite(context.Background(), "test@gmail.com", first.ID.Hex()))
	require.NoError(t, svc.AddFavorite(context.Background(), "test@gmail.com", second.ID.Hex()))

	// Adding the same product twice keeps a single entry.
	require.NoError(t, svc.AddFavorite(context.Background(), "test@gmail.com", first.ID.Hex()))
	assert.Len(t, userRepo.get("test@gmail.com").Favorites, 2)

	favorites, err := svc.GetFavorites(context.Background(), "test@gmail.com")
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, first.ID, favorites[0].ID)
	assert.Equal(t, second.ID, favorites[1].ID)

	require.NoError(t, svc.RemoveFavorite(context.Background(), "test@gmail.com", first.ID.Hex()))

	// Removing a product that is not a favorite is a no-op.
	require.NoError(t, svc.RemoveFavorite(context.Background(), "test@gmail.com", first.ID.Hex()))

	favorites, err = svc.GetFavorites(context.Background(), "test@gmail.com")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, second.ID, favorites[0].ID)
}

func Test_AddFavorite_UnknownProduct(t *testing.T) {
	svc, _, _ := newUserServiceFixture()

	_, err := svc.AddUser(context.Background(), dto.UserRequest{Name: "test", Email: "test@gmail.com", Password: "123456"})
	require.NoError(t, err)

	err = svc.AddFavorite(context.Background(), "test@gmail.com", "507f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	err = svc.AddFavorite(context.Background(), "test@gmail.com", "not-a-hex-id")
	assert.ErrorIs(t, err, errs.ErrClient)
}

func Test_GetFavorites_UnknownAccount(t *testing.T) {
	svc, _, _ := newUserServiceFixture()

	_, err := svc.GetFavorites(context.Background(), "nobody@gmail.com")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}
