package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/database/postgres"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/lib/pq"
)

type FuncionarioRepository interface {
	Exists(ctx context.Context, funcionarioID string) (bool, error)
	AttachToObra(ctx context.Context, obraID string, vinculo *domain.FuncionarioVinculo) error
}

type funcionarioRepository struct {
	conn *postgres.Connection
}

func NewFuncionarioRepository(conn *postgres.Connection) FuncionarioRepository {
	return &funcionarioRepository{
		conn: conn,
	}
}

func (r *funcionarioRepository) Exists(ctx context.Context, funcionarioID string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From("funcionarios f").
		Where(squirrel.Eq{"f.id": funcionarioID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao verificar funcionário: %w", err)
	}

	return count > 0, nil
}

func (r *funcionarioRepository) AttachToObra(ctx context.Context, obraID string, vinculo *domain.FuncionarioVinculo) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("funcionarios_obras").
		Columns("obra_id", "funcionario_id", "cargo", "grua_id", "supervisor").
		Values(
			obraID,
			vinculo.FuncionarioID,
			vinculo.Cargo,
			nullableString(vinculo.GruaID),
			vinculo.Supervisor,
		).
		Suffix("ON CONFLICT (obra_id, funcionario_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao alocar funcionário: %w", err)
	}

	return nil
}
