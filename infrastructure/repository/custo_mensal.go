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
	custosMensaisTable = "custos_mensais cm"
)

var custoMensalColumns = "cm.id, cm.obra_id, cm.item, cm.descricao, cm.unidade, " +
	"cm.quantidade_orcamento, cm.valor_unitario, cm.total_orcamento, " +
	"cm.quantidade_realizada, cm.valor_realizado, cm.quantidade_acumulada, " +
	"cm.valor_acumulado, cm.quantidade_saldo, cm.valor_saldo, cm.tipo, cm.mes, " +
	"cm.versao, cm.created_at, cm.updated_at"

type CustoMensalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.CustoMensal, error)
	ListByObraAndMonth(ctx context.Context, obraID, mes string) ([]*domain.CustoMensal, error)
	ListMonths(ctx context.Context, obraID string) ([]string, error)
	ListObrasComCustos(ctx context.Context) ([]string, error)
	ExistsForMonth(ctx context.Context, obraID, mes string) (bool, error)
	LastEntryForLineage(ctx context.Context, obraID, item string, tipo domain.TipoCusto, beforeMes string) (*domain.CustoMensal, error)
	BulkInsert(ctx context.Context, custos []*domain.CustoMensal) error
	UpdateRealizado(ctx context.Context, custo *domain.CustoMensal) error
}

type custoMensalRepository struct {
	conn *postgres.Connection
}

func NewCustoMensalRepository(conn *postgres.Connection) CustoMensalRepository {
	return &custoMensalRepository{
		conn: conn,
	}
}

func (r *custoMensalRepository) GetByID(ctx context.Context, id string) (*domain.CustoMensal, error) {
	query, args, err := squirrel.
		Select(custoMensalColumns).
		From(custosMensaisTable).
		Where(squirrel.Eq{"cm.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	custo, err := r.scanCusto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear custo mensal: %w", err)
	}

	return custo, nil
}

func (r *custoMensalRepository) ListByObraAndMonth(ctx context.Context, obraID, mes string) ([]*domain.CustoMensal, error) {
	queryBuilder := squirrel.
		Select(custoMensalColumns).
		From(custosMensaisTable).
		Where(squirrel.Eq{"cm.obra_id": obraID}).
		OrderBy("cm.item ASC").
		PlaceholderFormat(squirrel.Dollar)

	if mes != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cm.mes": mes})
	}

	query, args, err := queryBuilder.ToSql()
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

	custos := make([]*domain.CustoMensal, 0)
	for rows.Next() {
		custo, err := r.scanCustoRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear custos mensais: %w", err)
		}
		custos = append(custos, custo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return custos, nil
}

// ListMonths retorna os meses distintos com custos para a obra, em ordem
// cronológica. O formato YYYY-MM garante que a ordenação lexicográfica
// coincide com a cronológica.
func (r *custoMensalRepository) ListMonths(ctx context.Context, obraID string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT cm.mes").
		From(custosMensaisTable).
		Where(squirrel.Eq{"cm.obra_id": obraID}).
		OrderBy("cm.mes ASC").
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

	meses := make([]string, 0)
	for rows.Next() {
		var mes string
		if err := rows.Scan(&mes); err != nil {
			return nil, fmt.Errorf("erro ao escanear mês: %w", err)
		}
		meses = append(meses, mes)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return meses, nil
}

// ListObrasComCustos retorna as obras que possuem ao menos um mês no ledger
func (r *custoMensalRepository) ListObrasComCustos(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT cm.obra_id").
		From(custosMensaisTable).
		OrderBy("cm.obra_id ASC").
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

	obras := make([]string, 0)
	for rows.Next() {
		var obraID string
		if err := rows.Scan(&obraID); err != nil {
			return nil, fmt.Errorf("erro ao escanear obra: %w", err)
		}
		obras = append(obras, obraID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return obras, nil
}

func (r *custoMensalRepository) ExistsForMonth(ctx context.Context, obraID, mes string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(custosMensaisTable).
		Where(squirrel.Eq{"cm.obra_id": obraID, "cm.mes": mes}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao contar custos do mês: %w", err)
	}

	return count > 0, nil
}

// LastEntryForLineage busca a entrada mais recente da linhagem (obra + item +
// tipo) anterior ao mês informado. Retorna nil quando a linhagem ainda não
// tem histórico.
func (r *custoMensalRepository) LastEntryForLineage(ctx context.Context, obraID, item string, tipo domain.TipoCusto, beforeMes string) (*domain.CustoMensal, error) {
	query, args, err := squirrel.
		Select(custoMensalColumns).
		From(custosMensaisTable).
		Where(squirrel.Eq{"cm.obra_id": obraID, "cm.item": item, "cm.tipo": tipo}).
		Where(squirrel.Lt{"cm.mes": beforeMes}).
		OrderBy("cm.mes DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	custo, err := r.scanCusto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear custo mensal: %w", err)
	}

	return custo, nil
}

// BulkInsert grava todas as linhas em uma única transação. Qualquer erro
// desfaz o lote inteiro, de modo que um mês nunca fica semi-populado.
func (r *custoMensalRepository) BulkInsert(ctx context.Context, custos []*domain.CustoMensal) error {
	if len(custos) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		queryBuilder := squirrel.StatementBuilder.
			Insert("custos_mensais").
			Columns(
				"id", "obra_id", "item", "descricao", "unidade",
				"quantidade_orcamento", "valor_unitario", "total_orcamento",
				"quantidade_realizada", "valor_realizado",
				"quantidade_acumulada", "valor_acumulado",
				"quantidade_saldo", "valor_saldo", "tipo", "mes", "versao",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, c := range custos {
			queryBuilder = queryBuilder.Values(
				c.ID, c.ObraID, c.Item, c.Descricao, c.Unidade,
				c.QuantidadeOrcamento, c.ValorUnitario, c.TotalOrcamento,
				c.QuantidadeRealizada, c.ValorRealizado,
				c.QuantidadeAcumulada, c.ValorAcumulado,
				c.QuantidadeSaldo, c.ValorSaldo, c.Tipo, c.Mes, c.Versao,
			)
		}

		query, args, err := queryBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao inserir custos mensais: %w", err)
		}

		return nil
	})
}

// UpdateRealizado persiste os campos realizados, acumulados e saldos de uma
// linha. A escrita é condicionada à versão lida, então uma atualização
// concorrente faz o Exec não afetar linha alguma e retorna ErrVersaoConflito.
func (r *custoMensalRepository) UpdateRealizado(ctx context.Context, custo *domain.CustoMensal) error {
	query, args, err := squirrel.StatementBuilder.
		Update("custos_mensais").
		Set("quantidade_realizada", custo.QuantidadeRealizada).
		Set("valor_realizado", custo.ValorRealizado).
		Set("quantidade_acumulada", custo.QuantidadeAcumulada).
		Set("valor_acumulado", custo.ValorAcumulado).
		Set("quantidade_saldo", custo.QuantidadeSaldo).
		Set("valor_saldo", custo.ValorSaldo).
		Set("versao", custo.Versao+1).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": custo.ID, "versao": custo.Versao}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao atualizar custo mensal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return ErrVersaoConflito
	}

	custo.Versao++

	return nil
}

func (r *custoMensalRepository) scanCusto(row *sql.Row) (*domain.CustoMensal, error) {
	custo := &domain.CustoMensal{}

	err := row.Scan(
		&custo.ID,
		&custo.ObraID,
		&custo.Item,
		&custo.Descricao,
		&custo.Unidade,
		&custo.QuantidadeOrcamento,
		&custo.ValorUnitario,
		&custo.TotalOrcamento,
		&custo.QuantidadeRealizada,
		&custo.ValorRealizado,
		&custo.QuantidadeAcumulada,
		&custo.ValorAcumulado,
		&custo.QuantidadeSaldo,
		&custo.ValorSaldo,
		&custo.Tipo,
		&custo.Mes,
		&custo.Versao,
		&custo.CreatedAt,
		&custo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return custo, nil
}

func (r *custoMensalRepository) scanCustoRows(rows *sql.Rows) (*domain.CustoMensal, error) {
	custo := &domain.CustoMensal{}

	err := rows.Scan(
		&custo.ID,
		&custo.ObraID,
		&custo.Item,
		&custo.Descricao,
		&custo.Unidade,
		&custo.QuantidadeOrcamento,
		&custo.ValorUnitario,
		&custo.TotalOrcamento,
		&custo.QuantidadeRealizada,
		&custo.ValorRealizado,
		&custo.QuantidadeAcumulada,
		&custo.ValorAcumulado,
		&custo.QuantidadeSaldo,
		&custo.ValorSaldo,
		&custo.Tipo,
		&custo.Mes,
		&custo.Versao,
		&custo.CreatedAt,
		&custo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return custo, nil
}
