package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/database/postgres"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/lib/pq"
)

type GruaRepository interface {
	Exists(ctx context.Context, gruaID string) (bool, error)
	AttachToObra(ctx context.Context, obraID string, vinculo *domain.GruaVinculo) error
}

type gruaRepository struct {
	conn *postgres.Connection
}

func NewGruaRepository(conn *postgres.Connection) GruaRepository {
	return &gruaRepository{
		conn: conn,
	}
}

func (r *gruaRepository) Exists(ctx context.Context, gruaID string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From("gruas g").
		Where(squirrel.Eq{"g.id": gruaID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao verificar grua: %w", err)
	}

	return count > 0, nil
}

// AttachToObra grava o vínculo da grua e marca o equipamento como em obra.
// As duas escritas acontecem na mesma transação.
func (r *gruaRepository) AttachToObra(ctx context.Context, obraID string, vinculo *domain.GruaVinculo) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		insertQuery, insertArgs, err := squirrel.StatementBuilder.
			Insert("gruas_obras").
			Columns("obra_id", "grua_id", "valor_locacao_mensal", "tipo_base", "altura_final").
			Values(obraID, vinculo.GruaID, vinculo.ValorLocacaoMensal, vinculo.TipoBase, vinculo.AlturaFinal).
			Suffix("ON CONFLICT (obra_id, grua_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao vincular grua: %w", err)
		}

		updateQuery, updateArgs, err := squirrel.StatementBuilder.
			Update("gruas").
			Set("status", "em_obra").
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": vinculo.GruaID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar status da grua: %w", err)
		}

		return nil
	})
}
