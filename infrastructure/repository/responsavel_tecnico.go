package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/database/postgres"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/lib/pq"
)

type ResponsavelTecnicoRepository interface {
	Criar(ctx context.Context, responsavel *domain.ResponsavelTecnico) error
}

type responsavelTecnicoRepository struct {
	conn *postgres.Connection
}

func NewResponsavelTecnicoRepository(conn *postgres.Connection) ResponsavelTecnicoRepository {
	return &responsavelTecnicoRepository{
		conn: conn,
	}
}

func (r *responsavelTecnicoRepository) Criar(ctx context.Context, responsavel *domain.ResponsavelTecnico) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("responsaveis_tecnicos").
		Columns("id", "obra_id", "nome", "cpf_cnpj", "crea", "email", "telefone", "categoria", "area_adicional").
		Values(
			responsavel.ID,
			responsavel.ObraID,
			responsavel.Nome,
			responsavel.CpfCnpj,
			nullableString(responsavel.Crea),
			nullableString(responsavel.Email),
			nullableString(responsavel.Telefone),
			responsavel.Categoria,
			nullableString(responsavel.AreaAdicional),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir responsável técnico: %w", err)
	}

	return nil
}
