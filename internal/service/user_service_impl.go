package service

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/thanha17/online-shop/config"
	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/repository"
	"github.com/thanha17/online-shop/pkg/errs"
	"github.com/thanha17/online-shop/pkg/utils"
)

type UserServiceImpl struct {
	repo        repository.UserRepository
	productRepo repository.ProductRepository
	config      config.Config
}

func CreateUserService(repo repository.UserRepository, productRepo repository.ProductRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, productRepo: productRepo, config: config}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (res dto.UserResponse, err error) {
	if data.Name == "" || data.Email == "" || data.Password == "" {
		return res, errs.ErrClient
	}

	user, err := s.repo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if !user.ID.IsZero() {
		return res, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return res, err
	}

	userEnt := domain.User{
		Name:           data.Name,
		Email:          data.Email,
		HashedPassword: string(hash),
		Role:           "User",
		ExternalID:     ulid.Make().String(),
		Favorites:      []primitive.ObjectID{},
		RecentlyViewed: []primitive.ObjectID{},
	}

	id, err := s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return res, err
	}

	res = dto.UserResponse{
		ID:         id.Hex(),
		ExternalID: userEnt.ExternalID,
		Name:       userEnt.Name,
		Email:      userEnt.Email,
		Role:       userEnt.Role,
	}

	return res, nil
}

// Login surfaces both the unknown-email and the wrong-password outcomes as the
// same generic invalid-credential error; the distinction stays in the logs.
func (s *UserServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		log.Ctx(ctx).Info().Err(errs.ErrAccountNotFound).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Info().Err(errs.ErrWrongPassword).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentials
	}

	expiry := time.Duration(s.config.JWTExpiryHours) * time.Hour
	token, err := utils.CreateJWTToken(user.Email, user.Name, s.config.JWTSecret, expiry)
	if err != nil {
		return
	}

	respPayload.AccessToken = token
	respPayload.User = dto.UserIdentity{Email: user.Email, Name: user.Name}

	return
}

func (s *UserServiceImpl) GetUsers(ctx context.Context) (data []dto.UserResponse, err error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return
	}

	data = make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, dto.UserResponse{
			ID:         user.ID.Hex(),
			ExternalID: user.ExternalID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
		})
	}

	return data, nil
}

func (s *UserServiceImpl) GetFavorites(ctx context.Context, email string) (data []domain.Product, err error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return nil, errs.ErrAccountNotFound
	}

	if len(user.Favorites) == 0 {
		return []domain.Product{}, nil
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, user.Favorites)
	if err != nil {
		return
	}

	// Keep the user's favorites order.
	byID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	data = make([]domain.Product, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if p, ok := byID[id]; ok {
			data = append(data, p)
		}
	}

	return data, nil
}

func (s *UserServiceImpl) AddFavorite(ctx context.Context, email string, productID string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return errs.ErrClient
	}

	if _, err = s.productRepo.GetProductByID(ctx, productID); err != nil {
		return
	}

	return s.repo.AddFavorite(ctx, email, objectID)
}

func (s *UserServiceImpl) RemoveFavorite(ctx context.Context, email string, productID string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return errs.ErrClient
	}

	return s.repo.RemoveFavorite(ctx, email, objectID)
}
