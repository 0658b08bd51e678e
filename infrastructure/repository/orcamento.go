package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/database/postgres"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
)

const (
	orcamentosTable     = "orcamentos orc"
	orcamentoItensTable = "orcamento_itens oi"
)

type OrcamentoRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Orcamento, error)
}

type orcamentoRepository struct {
	conn *postgres.Connection
}

func NewOrcamentoRepository(conn *postgres.Connection) OrcamentoRepository {
	return &orcamentoRepository{
		conn: conn,
	}
}

// GetByID carrega o orçamento com suas linhas mensais, na ordem de cadastro.
// Orçamentos são somente leitura para este serviço.
func (r *orcamentoRepository) GetByID(ctx context.Context, id string) (*domain.Orcamento, error) {
	query, args, err := squirrel.
		Select("orc.id, orc.cliente_id, orc.status, orc.created_at").
		From(orcamentosTable).
		Where(squirrel.Eq{"orc.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	orcamento := &domain.Orcamento{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&orcamento.ID,
		&orcamento.ClienteID,
		&orcamento.Status,
		&orcamento.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear orçamento: %w", err)
	}

	itens, err := r.listItens(ctx, id)
	if err != nil {
		return nil, err
	}
	orcamento.Itens = itens

	return orcamento, nil
}

func (r *orcamentoRepository) listItens(ctx context.Context, orcamentoID string) ([]domain.OrcamentoItem, error) {
	query, args, err := squirrel.
		Select("oi.id, oi.descricao, oi.valor_mensal").
		From(orcamentoItensTable).
		Where(squirrel.Eq{"oi.orcamento_id": orcamentoID}).
		OrderBy("oi.ordem ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	itens := make([]domain.OrcamentoItem, 0)
	for rows.Next() {
		var item domain.OrcamentoItem
		if err := rows.Scan(&item.ID, &item.Descricao, &item.ValorMensal); err != nil {
			return nil, fmt.Errorf("erro ao escanear item do orçamento: %w", err)
		}
		itens = append(itens, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return itens, nil
}
