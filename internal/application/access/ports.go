package access

// IdentityProvider colaborador de identidade: guarda e verifica credenciais.
// O núcleo nunca vê hash nem senha persistida, só esta porta.
type IdentityProvider interface {
	// Verify confere a credencial da chave de login. Erro = rejeitada.
	Verify(login, senha string) error

	// CreateAccount cria a conta de acesso e devolve seu identificador.
	CreateAccount(login, senha string) (string, error)
}
