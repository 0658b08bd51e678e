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
	obrasTable = "obras o"
)

type ObraRepository interface {
	Criar(ctx context.Context, obra *domain.Obra) error
	GetByID(ctx context.Context, id string) (*domain.Obra, error)
	AtualizarDocumentos(ctx context.Context, req *domain.AtualizarDocumentosObraRequest) error
	VincularSupervisor(ctx context.Context, obraID string, supervisor *domain.SupervisorObra) error
}

type obraRepository struct {
	conn *postgres.Connection
}

func NewObraRepository(conn *postgres.Connection) ObraRepository {
	return &obraRepository{
		conn: conn,
	}
}

func (r *obraRepository) Criar(ctx context.Context, obra *domain.Obra) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("obras").
		Columns(
			"id", "nome", "cliente_id", "endereco", "cidade", "estado", "cep",
			"tipo", "status", "descricao", "data_inicio", "orcamento_id",
			"cno", "art_numero", "apolice_numero",
		).
		Values(
			obra.ID, obra.Nome, obra.ClienteID, obra.Endereco, obra.Cidade,
			obra.Estado, obra.Cep, obra.Tipo, obra.Status, obra.Descricao,
			obra.DataInicio, nullableString(obra.OrcamentoID),
			obra.Cno, obra.ArtNumero, obra.ApoliceNumero,
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
		return fmt.Errorf("erro ao inserir obra: %w", err)
	}

	return nil
}

func (r *obraRepository) GetByID(ctx context.Context, id string) (*domain.Obra, error) {
	query, args, err := squirrel.
		Select("o.id, o.nome, o.cliente_id, o.endereco, o.cidade, o.estado, o.cep, " +
			"o.tipo, o.status, o.descricao, o.data_inicio, o.data_fim, o.orcamento_id, " +
			"o.cno, o.cno_arquivo, o.art_numero, o.art_arquivo, " +
			"o.apolice_numero, o.apolice_arquivo, o.created_at, o.updated_at").
		From(obrasTable).
		Where(squirrel.Eq{"o.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	obra := &domain.Obra{}
	var cep, descricao, orcamentoID sql.NullString
	var cnoArquivo, artArquivo, apoliceArquivo sql.NullString

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&obra.ID,
		&obra.Nome,
		&obra.ClienteID,
		&obra.Endereco,
		&obra.Cidade,
		&obra.Estado,
		&cep,
		&obra.Tipo,
		&obra.Status,
		&descricao,
		&obra.DataInicio,
		&obra.DataFim,
		&orcamentoID,
		&obra.Cno,
		&cnoArquivo,
		&obra.ArtNumero,
		&artArquivo,
		&obra.ApoliceNumero,
		&apoliceArquivo,
		&obra.CreatedAt,
		&obra.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear obra: %w", err)
	}

	obra.Cep = cep.String
	obra.Descricao = descricao.String
	obra.OrcamentoID = orcamentoID.String
	obra.CnoArquivo = cnoArquivo.String
	obra.ArtArquivo = artArquivo.String
	obra.ApoliceArquivo = apoliceArquivo.String

	return obra, nil
}

// AtualizarDocumentos aplica uma atualização parcial dos identificadores
// regulatórios. Campos nil na requisição são preservados no banco.
func (r *obraRepository) AtualizarDocumentos(ctx context.Context, req *domain.AtualizarDocumentosObraRequest) error {
	updates := map[string]interface{}{}
	if req.Cno != nil {
		updates["cno"] = *req.Cno
	}
	if req.CnoArquivo != nil {
		updates["cno_arquivo"] = *req.CnoArquivo
	}
	if req.ArtNumero != nil {
		updates["art_numero"] = *req.ArtNumero
	}
	if req.ArtArquivo != nil {
		updates["art_arquivo"] = *req.ArtArquivo
	}
	if req.ApoliceNumero != nil {
		updates["apolice_numero"] = *req.ApoliceNumero
	}
	if req.ApoliceArquivo != nil {
		updates["apolice_arquivo"] = *req.ApoliceArquivo
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = squirrel.Expr("NOW()")

	query, args, err := squirrel.StatementBuilder.
		Update("obras").
		SetMap(updates).
		Where(squirrel.Eq{"id": req.ObraID}).
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
		return fmt.Errorf("erro ao atualizar documentos da obra: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *obraRepository) VincularSupervisor(ctx context.Context, obraID string, supervisor *domain.SupervisorObra) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("supervisores_obras").
		Columns("obra_id", "funcionario_id", "nome", "email").
		Values(obraID, supervisor.FuncionarioID, supervisor.Nome, supervisor.Email).
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
		return fmt.Errorf("erro ao vincular supervisor: %w", err)
	}

	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
