package repository

import "github.com/pkg/errors"

var (
	// ErrVersaoConflito indica que a linha foi alterada por outra escrita
	// entre a leitura e a atualização condicionada à versão
	ErrVersaoConflito = errors.New("registro alterado por outra atualização concorrente")
)
