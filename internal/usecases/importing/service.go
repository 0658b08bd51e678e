package importing

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/ledger"
	"github.com/gmcamargo/obra-ledger-api/pkg/apiErrors"
	"github.com/gmcamargo/obra-ledger-api/pkg/log"
	"github.com/gmcamargo/obra-ledger-api/pkg/utils"
)

const unidadePadrao = "mês"

type ImportService interface {
	ImportarOrcamento(ctx context.Context, orcamentoID, obraID, mesInicial string) (int, error)
}

type Service struct {
	orcamentoRepository repository.OrcamentoRepository
	custoRepository     repository.CustoMensalRepository
}

func NewService(
	orcamentoRepository repository.OrcamentoRepository,
	custoRepository repository.CustoMensalRepository,
) *Service {
	return &Service{
		orcamentoRepository: orcamentoRepository,
		custoRepository:     custoRepository,
	}
}

// BuildLines converte as linhas mensais de um orçamento aprovado nas entradas
// iniciais do ledger da obra. Cada linha recebe um código posicional, uma
// unidade mensal com quantidade 1, e realizado, acumulado e saldos derivados
// do zero — o orçamento original nunca é alterado.
func BuildLines(orcamento *domain.Orcamento, obraID, mesInicial string) ([]*domain.CustoMensal, error) {
	if orcamento.Status != domain.StatusOrcamentoAprovado {
		return nil, fmt.Errorf("%w: status atual %s", ErrOrcamentoNaoAprovado, orcamento.Status)
	}

	if len(orcamento.Itens) == 0 {
		return nil, ErrOrcamentoVazio
	}

	if _, err := utils.ParseMonth(mesInicial); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMesInvalido, mesInicial)
	}

	custos := make([]*domain.CustoMensal, 0, len(orcamento.Itens))
	for i, item := range orcamento.Itens {
		total, err := ledger.DeriveBudgetedTotal(1, item.ValorMensal)
		if err != nil {
			return nil, err
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do custo: %w", err)
		}

		custo := &domain.CustoMensal{
			ID:                  id,
			ObraID:              obraID,
			Item:                fmt.Sprintf("%02d.%02d", i+1, i+1),
			Descricao:           item.Descricao,
			Unidade:             unidadePadrao,
			QuantidadeOrcamento: 1,
			ValorUnitario:       item.ValorMensal,
			TotalOrcamento:      total,
			Tipo:                domain.TipoCustoContrato,
			Mes:                 mesInicial,
			Versao:              1,
		}
		ledger.RecomputeBalances(custo)

		custos = append(custos, custo)
	}

	return custos, nil
}

// ImportarOrcamento carrega o orçamento, valida a importação e grava as
// linhas iniciais em lote. Retorna quantas linhas foram importadas.
func (s *Service) ImportarOrcamento(ctx context.Context, orcamentoID, obraID, mesInicial string) (int, error) {
	orcamento, err := s.orcamentoRepository.GetByID(ctx, orcamentoID)
	if err != nil {
		return 0, NewImportError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, orcamentoID, "Falha ao consultar orçamento")
	}
	if orcamento == nil {
		return 0, NewImportError(ErrOrcamentoNaoEncontrado, apiErrors.ErrInvalidRequest, orcamentoID, "")
	}

	ocupado, err := s.custoRepository.ExistsForMonth(ctx, obraID, mesInicial)
	if err != nil {
		return 0, NewImportError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, orcamentoID, "Falha ao verificar o mês inicial")
	}
	if ocupado {
		return 0, NewImportError(ErrMesOcupado, apiErrors.ErrMonthConflict, orcamentoID,
			fmt.Sprintf("obra %s já possui custos em %s", obraID, mesInicial))
	}

	custos, err := BuildLines(orcamento, obraID, mesInicial)
	if err != nil {
		if errors.Is(err, ErrOrcamentoNaoAprovado) {
			return 0, NewImportError(err, apiErrors.ErrBudgetNotApproved, orcamentoID, "")
		}
		return 0, NewImportError(err, apiErrors.ErrInvalidRequest, orcamentoID, "")
	}

	if err := s.custoRepository.BulkInsert(ctx, custos); err != nil {
		return 0, NewImportError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, orcamentoID, "Falha ao gravar custos importados")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"orcamento_id": orcamentoID,
		"obra_id":      obraID,
		"mes":          mesInicial,
		"linhas":       len(custos),
	}).Info("Orçamento importado para o ledger da obra")

	return len(custos), nil
}
