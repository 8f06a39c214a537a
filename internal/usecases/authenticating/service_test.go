package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/mocks"
	"github.com/vfg2006/backoffice-api/internal/config"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:          "segredo-de-teste",
			InviteCode:      "CONVITE123",
			TokenTTLMinutes: 60,
		},
	}
}

func TestLoginUserComHashBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	assert.NoError(t, err)

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		FindUsersByUsername(gomock.Any(), "ana").
		Return([]*storedomain.User{
			{ID: 1, Username: "ana", Password: string(hash), Role: "admin"},
		}, nil)

	service := NewService(testConfig(), storeService)

	token, user, err := service.LoginUser(context.Background(), "ana", "senha-forte")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ana", user.Username)
	assert.Empty(t, user.Password, "a senha não pode vazar na resposta")
}

func TestLoginUserAceitaSenhaLegadaEmTextoPuro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Usuários semeados à mão no store guardam a senha sem hash
	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		FindUsersByUsername(gomock.Any(), "bruno").
		Return([]*storedomain.User{
			{ID: 2, Username: "bruno", Password: "123456", Role: "viewer"},
		}, nil)

	service := NewService(testConfig(), storeService)

	token, _, err := service.LoginUser(context.Background(), "bruno", "123456")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginUserSenhaErrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		FindUsersByUsername(gomock.Any(), "ana").
		Return([]*storedomain.User{
			{ID: 1, Username: "ana", Password: "outra-senha"},
		}, nil)

	service := NewService(testConfig(), storeService)

	_, _, err := service.LoginUser(context.Background(), "ana", "senha-errada")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		FindUsersByUsername(gomock.Any(), "fantasma").
		Return([]*storedomain.User{}, nil)

	service := NewService(testConfig(), storeService)

	_, _, err := service.LoginUser(context.Background(), "fantasma", "qualquer")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserSemCredenciais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(testConfig(), mocks.NewMockStoreIntegrator(ctrl))

	_, _, err := service.LoginUser(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestRegisterUserComCodigoDeConviteValido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		FindUsersByUsername(gomock.Any(), "carla").
		Return([]*storedomain.User{}, nil)
	storeService.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *storedomain.User) (*storedomain.User, error) {
			assert.Equal(t, "carla", user.Username)
			assert.Equal(t, "viewer", user.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("senha-nova")))

			user.ID = 9
			return user, nil
		})

	service := NewService(testConfig(), storeService)

	created, err := service.RegisterUser(context.Background(), "carla", "senha-nova", "CONVITE123")

	assert.NoError(t, err)
	assert.Equal(t, 9, created.ID)
	assert.Equal(t, "viewer", created.Role)
}

func TestRegisterUserCodigoDeConviteInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(testConfig(), mocks.NewMockStoreIntegrator(ctrl))

	_, err := service.RegisterUser(context.Background(), "carla", "senha", "ERRADO")

	assert.ErrorIs(t, err, ErrInvalidInviteCode)
}

func TestRegisterUserConviteVemDoStoreQuandoEnvVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Auth.InviteCode = ""

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		GetSettings(gomock.Any()).
		Return(&storedomain.Settings{InviteCode: "DOSTORE"}, nil)
	storeService.EXPECT().
		FindUsersByUsername(gomock.Any(), "davi").
		Return([]*storedomain.User{}, nil)
	storeService.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *storedomain.User) (*storedomain.User, error) {
			user.ID = 11
			return user, nil
		})

	service := NewService(cfg, storeService)

	created, err := service.RegisterUser(context.Background(), "davi", "senha", "DOSTORE")

	assert.NoError(t, err)
	assert.Equal(t, 11, created.ID)
}

func TestRegisterUserUsuarioJaExiste(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		FindUsersByUsername(gomock.Any(), "ana").
		Return([]*storedomain.User{
			{ID: 1, Username: "ana"},
		}, nil)

	service := NewService(testConfig(), storeService)

	_, err := service.RegisterUser(context.Background(), "ana", "senha", "CONVITE123")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestValidateTokenCicloCompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		FindUsersByUsername(gomock.Any(), "ana").
		Return([]*storedomain.User{
			{ID: 1, Username: "ana", Password: "123456", Role: "admin"},
		}, nil)

	service := NewService(testConfig(), storeService)

	token, _, err := service.LoginUser(context.Background(), "ana", "123456")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)

	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenAdulterado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(testConfig(), mocks.NewMockStoreIntegrator(ctrl))

	_, err := service.ValidateToken("cabecalho.corpo.assinatura")

	assert.Error(t, err)
}
