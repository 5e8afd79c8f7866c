package access

import (
	"time"

	"github.com/gmslog/insumos-api/internal/application/dto"
	"github.com/gmslog/insumos-api/internal/domain"
	"github.com/gmslog/insumos-api/internal/domain/catalog"
	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gmslog/insumos-api/internal/domain/repository"
	"github.com/gmslog/insumos-api/pkg/jwt"
	"github.com/gmslog/insumos-api/pkg/logger"
	"github.com/google/uuid"
)

// JWTConfig configuração para geração de tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AccessUseCase autenticação e provisionamento de usuários.
type AccessUseCase struct {
	userRepo repository.UserRepository
	identity IdentityProvider
	cat      *catalog.Catalog
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAccessUseCase constrói o caso de uso de acesso.
func NewAccessUseCase(
	userRepo repository.UserRepository,
	identity IdentityProvider,
	cat *catalog.Catalog,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AccessUseCase {
	return &AccessUseCase{userRepo: userRepo, identity: identity, cat: cat, jwtCfg: jwtCfg, log: log}
}

// Authenticate verifica nome + senha e devolve a sessão explícita (token JWT + usuário).
// A busca por nome não diferencia maiúsculas/minúsculas e precisa casar exatamente um
// usuário. Zero resultados, resultado ambíguo e senha errada colapsam TODOS em
// domain.ErrInvalidCredentials: a resposta nunca revela qual campo estava errado.
func (uc *AccessUseCase) Authenticate(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Nome == "" || in.Senha == "" {
		return nil, domain.ErrInvalidCredentials
	}
	matches, err := uc.userRepo.FindByNome(in.Nome)
	if err != nil {
		return nil, err
	}
	if len(matches) != 1 {
		if len(matches) > 1 {
			uc.log.Warn().Str("nome", in.Nome).Int("matches", len(matches)).
				Msg("nome de usuário ambíguo no login")
		}
		return nil, domain.ErrInvalidCredentials
	}
	user := matches[0]
	if err := uc.identity.Verify(user.Login, in.Senha); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.SessionData{
		UserID: user.ID,
		Nome:   user.Nome,
		Role:   string(user.NivelAcesso),
		Loja:   user.LojaResponsavel,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *toUserResponse(user)}, nil
}

// ProvisionOperador cria um operador: conta no colaborador de identidade primeiro,
// depois o perfil local. Somente admin.
//
// Se o perfil local falhar DEPOIS da conta criada, fica uma conta órfã sem perfil:
// devolvemos domain.ErrInconsistent (distinto de falha total) para reconciliação manual.
// Nomes repetidos geram contas distintas: unicidade de nome não é imposta aqui.
func (uc *AccessUseCase) ProvisionOperador(actorRole entity.Role, in dto.ProvisionRequest) (*dto.UserResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Nome == "" || len(in.Senha) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if !uc.cat.HasLoja(in.LojaResponsavel) {
		return nil, domain.ErrInvalidInput
	}

	login := DeriveLoginKey(in.Nome)
	if login == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := uc.identity.CreateAccount(login, in.Senha); err != nil {
		uc.log.Error().Err(err).Str("login", login).Msg("falha ao criar conta de acesso")
		return nil, domain.ErrProvisioningFailed
	}

	user := &entity.User{
		ID:              uuid.New().String(),
		Nome:            in.Nome,
		Login:           login,
		NivelAcesso:     entity.RoleOperador,
		LojaResponsavel: in.LojaResponsavel,
		CreatedAt:       time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		// Conta de identidade já existe; sem perfil local ela fica órfã.
		uc.log.Error().Err(err).Str("login", login).
			Msg("conta de acesso criada mas perfil local falhou")
		return nil, domain.ErrInconsistent
	}

	uc.log.Info().Str("login", login).Str("loja", in.LojaResponsavel).Msg("operador provisionado")
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Nome:            u.Nome,
		Login:           u.Login,
		NivelAcesso:     string(u.NivelAcesso),
		LojaResponsavel: u.LojaResponsavel,
		CreatedAt:       u.CreatedAt,
	}
}
