package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrForbidden          = errors.New("acesso negado")
	ErrNotLinked          = errors.New("material não vinculado a esta loja")
	ErrAlreadyLinked      = errors.New("material já vinculado a esta loja")
	ErrInsufficientSaldo  = errors.New("saldo insuficiente para essa saída")
	ErrInvalidCredentials = errors.New("dados de acesso incorretos")
	ErrProvisioningFailed = errors.New("falha ao provisionar usuário")
	// ErrInconsistent indica sucesso parcial entre dois escritores (ex.: conta de
	// acesso criada mas perfil local não). Exige reconciliação manual.
	ErrInconsistent = errors.New("estado inconsistente, reconciliação manual necessária")
)
