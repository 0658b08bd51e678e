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

const (
	sinaleirosTable = "sinaleiros s"
)

type SinaleiroRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Sinaleiro, error)
	ListarPorObra(ctx context.Context, obraID string) ([]*domain.Sinaleiro, error)
	Criar(ctx context.Context, sinaleiro *domain.Sinaleiro) error
	VincularLote(ctx context.Context, sinaleiros []*domain.Sinaleiro) error
}

type sinaleiroRepository struct {
	conn *postgres.Connection
}

func NewSinaleiroRepository(conn *postgres.Connection) SinaleiroRepository {
	return &sinaleiroRepository{
		conn: conn,
	}
}

func (r *sinaleiroRepository) GetByID(ctx context.Context, id string) (*domain.Sinaleiro, error) {
	query, args, err := squirrel.
		Select("s.id, s.obra_id, s.nome, s.rg_cpf, s.telefone, s.email, s.tipo, s.afiliacao, s.created_at").
		From(sinaleirosTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	sinaleiro, err := r.scanSinaleiro(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear sinaleiro: %w", err)
	}

	return sinaleiro, nil
}

func (r *sinaleiroRepository) ListarPorObra(ctx context.Context, obraID string) ([]*domain.Sinaleiro, error) {
	query, args, err := squirrel.
		Select("s.id, s.obra_id, s.nome, s.rg_cpf, s.telefone, s.email, s.tipo, s.afiliacao, s.created_at").
		From(sinaleirosTable).
		Where(squirrel.Eq{"s.obra_id": obraID}).
		OrderBy("s.tipo ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sinaleiros := make([]*domain.Sinaleiro, 0)
	for rows.Next() {
		sinaleiro := &domain.Sinaleiro{}
		var telefone, email sql.NullString
		if err := rows.Scan(
			&sinaleiro.ID,
			&sinaleiro.ObraID,
			&sinaleiro.Nome,
			&sinaleiro.RgCpf,
			&telefone,
			&email,
			&sinaleiro.Tipo,
			&sinaleiro.Afiliacao,
			&sinaleiro.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear sinaleiros: %w", err)
		}
		sinaleiro.Telefone = telefone.String
		sinaleiro.Email = email.String
		sinaleiros = append(sinaleiros, sinaleiro)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sinaleiros, nil
}

func (r *sinaleiroRepository) Criar(ctx context.Context, sinaleiro *domain.Sinaleiro) error {
	query, args, err := r.insertQuery(sinaleiro)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir sinaleiro: %w", err)
	}

	return nil
}

// VincularLote insere os sinaleiros do lote em uma única transação, de modo
// que o par principal/reserva nunca fica pela metade.
func (r *sinaleiroRepository) VincularLote(ctx context.Context, sinaleiros []*domain.Sinaleiro) error {
	if len(sinaleiros) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, sinaleiro := range sinaleiros {
			query, args, err := r.insertQuery(sinaleiro)
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao inserir sinaleiro %s: %w", sinaleiro.Nome, err)
			}
		}

		return nil
	})
}

func (r *sinaleiroRepository) insertQuery(sinaleiro *domain.Sinaleiro) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert("sinaleiros").
		Columns("id", "obra_id", "nome", "rg_cpf", "telefone", "email", "tipo", "afiliacao").
		Values(
			sinaleiro.ID,
			sinaleiro.ObraID,
			sinaleiro.Nome,
			sinaleiro.RgCpf,
			nullableString(sinaleiro.Telefone),
			nullableString(sinaleiro.Email),
			sinaleiro.Tipo,
			sinaleiro.Afiliacao,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *sinaleiroRepository) scanSinaleiro(row *sql.Row) (*domain.Sinaleiro, error) {
	sinaleiro := &domain.Sinaleiro{}
	var telefone, email sql.NullString

	err := row.Scan(
		&sinaleiro.ID,
		&sinaleiro.ObraID,
		&sinaleiro.Nome,
		&sinaleiro.RgCpf,
		&telefone,
		&email,
		&sinaleiro.Tipo,
		&sinaleiro.Afiliacao,
		&sinaleiro.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sinaleiro.Telefone = telefone.String
	sinaleiro.Email = email.String

	return sinaleiro, nil
}
