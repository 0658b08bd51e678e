package duplicating

import (
	"context"
	"fmt"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/ledger"
	"github.com/gmcamargo/obra-ledger-api/pkg/apiErrors"
	"github.com/gmcamargo/obra-ledger-api/pkg/log"
	"github.com/gmcamargo/obra-ledger-api/pkg/utils"
)

type DuplicationService interface {
	Replicar(ctx context.Context, req *domain.ReplicarCustosRequest) (*domain.ReplicarCustosResponse, error)
}

type Service struct {
	custoRepository repository.CustoMensalRepository
}

func NewService(custoRepository repository.CustoMensalRepository) *Service {
	return &Service{
		custoRepository: custoRepository,
	}
}

// CloneForMonth produz a entrada do mês seguinte a partir de uma linha de
// origem: mesma identidade de linhagem e campos orçados, realizado zerado,
// acumulados carregados da origem e saldos recalculados. A origem não é
// modificada.
func CloneForMonth(origem *domain.CustoMensal, mesDestino string) (*domain.CustoMensal, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do custo: %w", err)
	}

	clone := &domain.CustoMensal{
		ID:                  id,
		ObraID:              origem.ObraID,
		Item:                origem.Item,
		Descricao:           origem.Descricao,
		Unidade:             origem.Unidade,
		QuantidadeOrcamento: origem.QuantidadeOrcamento,
		ValorUnitario:       origem.ValorUnitario,
		TotalOrcamento:      origem.TotalOrcamento,
		QuantidadeRealizada: 0,
		ValorRealizado:      0,
		QuantidadeAcumulada: origem.QuantidadeAcumulada,
		ValorAcumulado:      origem.ValorAcumulado,
		Tipo:                origem.Tipo,
		Mes:                 mesDestino,
		Versao:              1,
	}
	ledger.RecomputeBalances(clone)

	return clone, nil
}

// Replicar clona todas as linhas do mês de origem para o mês de destino em
// uma única transação: ou o mês inteiro passa a existir, ou nada é gravado.
// O destino precisa estar vazio e ser posterior a todos os meses da obra.
func (s *Service) Replicar(ctx context.Context, req *domain.ReplicarCustosRequest) (*domain.ReplicarCustosResponse, error) {
	for _, mes := range []string{req.MesOrigem, req.MesDestino} {
		if _, err := utils.ParseMonth(mes); err != nil {
			return nil, NewDuplicationError(ErrMesInvalido, apiErrors.ErrInvalidFormat, req.ObraID, err.Error())
		}
	}

	meses, err := s.custoRepository.ListMonths(ctx, req.ObraID)
	if err != nil {
		return nil, NewDuplicationError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, req.ObraID, "Falha ao listar meses da obra")
	}

	origemExiste := false
	for _, mes := range meses {
		if mes == req.MesOrigem {
			origemExiste = true
		}
		if mes == req.MesDestino {
			return nil, NewDuplicationError(ErrMesDestinoOcupado, apiErrors.ErrMonthConflict, req.ObraID,
				fmt.Sprintf("mês %s já possui custos", req.MesDestino))
		}
		if mes > req.MesDestino {
			return nil, NewDuplicationError(ErrMesForaDeOrdem, apiErrors.ErrNonSequentialMonth, req.ObraID,
				fmt.Sprintf("obra já possui custos em %s, posterior a %s", mes, req.MesDestino))
		}
	}

	if !origemExiste {
		return nil, NewDuplicationError(ErrMesOrigemVazio, apiErrors.ErrCustoNotFound, req.ObraID,
			fmt.Sprintf("mês %s não possui custos", req.MesOrigem))
	}

	origens, err := s.custoRepository.ListByObraAndMonth(ctx, req.ObraID, req.MesOrigem)
	if err != nil {
		return nil, NewDuplicationError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, req.ObraID, "Falha ao carregar custos de origem")
	}

	clones := make([]*domain.CustoMensal, 0, len(origens))
	for _, origem := range origens {
		clone, err := CloneForMonth(origem, req.MesDestino)
		if err != nil {
			return nil, NewDuplicationError(err, apiErrors.ErrInternalServer, req.ObraID, "")
		}
		clones = append(clones, clone)
	}

	if err := s.custoRepository.BulkInsert(ctx, clones); err != nil {
		return nil, NewDuplicationError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, req.ObraID, "Falha ao gravar custos replicados")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"obra_id":     req.ObraID,
		"mes_origem":  req.MesOrigem,
		"mes_destino": req.MesDestino,
		"linhas":      len(clones),
	}).Info("Custos mensais replicados para o mês seguinte")

	return &domain.ReplicarCustosResponse{
		Replicados: len(clones),
		MesOrigem:  req.MesOrigem,
		MesDestino: req.MesDestino,
		ObraID:     req.ObraID,
	}, nil
}
