package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/pkg/tagcache"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "test-secret"},
	}
}

func testConfigWithCache() *config.Config {
	cfg := testConfig()
	cfg.Cache = config.Cache{TTLSeconds: 60}
	return cfg
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	passwordHash := hashedPassword(t, "Str0ng#Pass")

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "active user with right password gets a token",
			email:    "Ana@Example.com ",
			password: "Str0ng#Pass",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:           "usr001",
					Name:         "Ana",
					Email:        "ana@example.com",
					PasswordHash: passwordHash,
					Active:       true,
					RoleID:       domain.RoleAdmin,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "unknown email is rejected",
			email:    "ghost@example.com",
			password: "whatever",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ghost@example.com").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "disabled account is rejected",
			email:    "ana@example.com",
			password: "Str0ng#Pass",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:           "usr001",
					Email:        "ana@example.com",
					PasswordHash: passwordHash,
					Active:       false,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "wrong password is rejected",
			email:    "ana@example.com",
			password: "not-the-password",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:           "usr001",
					Email:        "ana@example.com",
					PasswordHash: passwordHash,
					Active:       true,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "missing fields are rejected without touching the repository",
			email:    "",
			password: "",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := &Service{userRepo: userRepo, cfg: testConfig()}

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	passwordHash := hashedPassword(t, "Str0ng#Pass")

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
		ID:           "usr001",
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: passwordHash,
		Active:       true,
		RoleID:       domain.RoleSupervisor,
	}, nil)

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	token, err := service.LoginUser("ana@example.com", "Str0ng#Pass")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "usr001", claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, "ana@example.com", claims.UserEmail)
	assert.Equal(t, domain.RoleSupervisor, claims.UserRoleID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := &Service{cfg: testConfig()}

	claims, err := service.ValidateToken("not-a-jwt")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		request  *domain.UserRequest
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "new user is created disabled with client role by default",
			request: &domain.UserRequest{
				Name:     "Bruno",
				Email:    " Bruno@Example.com",
				Password: "Str0ng#Pass",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("bruno@example.com").Return(nil, nil)
				userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
					return user, nil
				})
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, "bruno@example.com", user.Email)
				assert.Equal(t, domain.RoleClient, user.RoleID)
				assert.False(t, user.Active)
				assert.NotEqual(t, "Str0ng#Pass", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng#Pass")))
			},
		},
		{
			name: "duplicate email is rejected",
			request: &domain.UserRequest{
				Name:     "Bruno",
				Email:    "bruno@example.com",
				Password: "Str0ng#Pass",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("bruno@example.com").Return(&domain.User{ID: "usr002"}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
		{
			name: "missing password is rejected",
			request: &domain.UserRequest{
				Name:  "Bruno",
				Email: "bruno@example.com",
			},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := &Service{userRepo: userRepo, cfg: testConfig()}

			user, err := service.CreateUser(tt.request)
			tt.validate(t, user, err)
		})
	}
}

func TestUpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("activates a disabled user", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID("usr001").Return(&domain.User{
			ID:     "usr001",
			Name:   "Ana",
			Email:  "ana@example.com",
			Active: false,
			RoleID: domain.RoleClient,
		}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			assert.True(t, user.Active)
			assert.Equal(t, "Ana", user.Name)
			return nil
		})

		service := &Service{userRepo: userRepo, cfg: testConfig()}

		active := true
		err := service.UpdateUser(&domain.UpdateUserRequest{ID: "usr001", Active: &active})
		assert.NoError(t, err)
	})

	t.Run("unknown user yields not found", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID("ghost").Return(nil, nil)

		service := &Service{userRepo: userRepo, cfg: testConfig()}

		err := service.UpdateUser(&domain.UpdateUserRequest{ID: "ghost"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		service := &Service{cfg: testConfig()}

		err := service.UpdateUser(&domain.UpdateUserRequest{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currentHash := hashedPassword(t, "Curr3nt#Pass")

	t.Run("changes password when current one matches", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID("usr001").Return(&domain.User{
			ID:           "usr001",
			PasswordHash: currentHash,
		}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("N3w#Password")))
			return nil
		})

		service := &Service{userRepo: userRepo, cfg: testConfig()}

		err := service.ChangePassword("usr001", "Curr3nt#Pass", "N3w#Password")
		assert.NoError(t, err)
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID("usr001").Return(&domain.User{
			ID:           "usr001",
			PasswordHash: currentHash,
		}, nil)

		service := &Service{userRepo: userRepo, cfg: testConfig()}

		err := service.ChangePassword("usr001", "wrong", "N3w#Password")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("rejects weak new password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID("usr001").Return(&domain.User{
			ID:           "usr001",
			PasswordHash: currentHash,
		}, nil)

		service := &Service{userRepo: userRepo, cfg: testConfig()}

		err := service.ChangePassword("usr001", "Curr3nt#Pass", "weak")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("admin resets another user's password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID("admin1").Return(&domain.User{ID: "admin1", RoleID: domain.RoleAdmin}, nil)
		userRepo.EXPECT().GetUserByID("usr002").Return(&domain.User{ID: "usr002", RoleID: domain.RoleClient}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		service := &Service{userRepo: userRepo, cfg: testConfig()}

		password, err := service.GenerateStrongPassword("admin1", "usr002")
		require.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})

	t.Run("non-admin cannot reset passwords", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID("usr001").Return(&domain.User{ID: "usr001", RoleID: domain.RoleSupervisor}, nil)

		service := &Service{userRepo: userRepo, cfg: testConfig()}

		password, err := service.GenerateStrongPassword("usr001", "usr002")
		assert.Empty(t, password)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})
}

func TestListUserCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []*domain.User{
		{ID: "usr001", Name: "Ana", Email: "ana@example.com", Active: true, RoleID: domain.RoleAdmin},
	}

	t.Run("second listing is served from cache", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().ListUser().Return(users, nil).Times(1)

		service := (&Service{userRepo: userRepo, cfg: testConfigWithCache()}).WithCache(tagcache.New())

		first, err := service.ListUser()
		require.NoError(t, err)

		second, err := service.ListUser()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("registering a user drops the cached listing", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().ListUser().Return(users, nil).Times(2)
		userRepo.EXPECT().GetUserByEmail("bruno@example.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			return user, nil
		})

		service := (&Service{userRepo: userRepo, cfg: testConfigWithCache()}).WithCache(tagcache.New())

		_, err := service.ListUser()
		require.NoError(t, err)

		_, err = service.CreateUser(&domain.UserRequest{Name: "Bruno", Email: "bruno@example.com", Password: "Str0ng#Pass"})
		require.NoError(t, err)

		_, err = service.ListUser()
		require.NoError(t, err)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{cfg: testConfig()}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Ab1#defg", wantErr: false},
		{name: "too short", password: "Ab1#d", wantErr: true},
		{name: "no upper case", password: "ab1#defg", wantErr: true},
		{name: "no lower case", password: "AB1#DEFG", wantErr: true},
		{name: "no number", password: "Abc#defg", wantErr: true},
		{name: "no special character", password: "Ab1cdefg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrWeakPassword))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
