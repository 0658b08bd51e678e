package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/pkg/apiErrors"
	"github.com/gmcamargo/obra-ledger-api/pkg/log"
	"github.com/gmcamargo/obra-ledger-api/pkg/utils"
)

type LedgerService interface {
	ListarCustos(ctx context.Context, obraID, mes string) ([]*domain.CustoMensal, error)
	ListarMeses(ctx context.Context, obraID string) ([]string, error)
	AtualizarRealizado(ctx context.Context, custoID string, req *domain.AtualizarRealizadoRequest) (*domain.CustoMensal, error)
}

type Service struct {
	custoRepository repository.CustoMensalRepository
}

func NewService(custoRepository repository.CustoMensalRepository) *Service {
	return &Service{
		custoRepository: custoRepository,
	}
}

// DeriveBudgetedTotal calcula o total orçado de uma linha a partir da
// quantidade e do valor unitário, arredondado a duas casas. Quantidades
// negativas são rejeitadas; zero é legítimo e zera o total.
func DeriveBudgetedTotal(quantidade, valorUnitario float64) (float64, error) {
	if quantidade < 0 {
		return 0, fmt.Errorf("%w: quantidade %.2f", ErrQuantidadeInvalida, quantidade)
	}

	return utils.RoundWithTwoDecimalPlace(quantidade * valorUnitario), nil
}

// RecomputeBalances recalcula os saldos da linha a partir do orçado e do
// acumulado. Não toca o valor realizado, que pode ter sido fixado por um
// override explícito. É idempotente: aplicar duas vezes dá o mesmo resultado,
// já que saldos nunca são insumo do próprio cálculo.
func RecomputeBalances(custo *domain.CustoMensal) {
	custo.QuantidadeSaldo = utils.RoundWithTwoDecimalPlace(custo.QuantidadeOrcamento - custo.QuantidadeAcumulada)
	custo.ValorSaldo = utils.RoundWithTwoDecimalPlace(custo.TotalOrcamento - custo.ValorAcumulado)
}

func (s *Service) ListarCustos(ctx context.Context, obraID, mes string) ([]*domain.CustoMensal, error) {
	if mes != "" {
		if _, err := utils.ParseMonth(mes); err != nil {
			return nil, NewLedgerError(ErrMesInvalido, apiErrors.ErrInvalidFormat, err.Error())
		}
	}

	custos, err := s.custoRepository.ListByObraAndMonth(ctx, obraID, mes)
	if err != nil {
		return nil, NewLedgerError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, "Falha ao listar custos mensais")
	}

	return custos, nil
}

func (s *Service) ListarMeses(ctx context.Context, obraID string) ([]string, error) {
	meses, err := s.custoRepository.ListMonths(ctx, obraID)
	if err != nil {
		return nil, NewLedgerError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, "Falha ao listar meses da obra")
	}

	return meses, nil
}

// AtualizarRealizado aplica uma nova quantidade realizada a uma linha e
// refaz acumulados e saldos sobre o histórico da linhagem. A entrada precisa
// ser o mês imediatamente seguinte ao último registro da linhagem (ou o
// primeiro registro dela); a gravação é condicionada à versão lida.
func (s *Service) AtualizarRealizado(ctx context.Context, custoID string, req *domain.AtualizarRealizadoRequest) (*domain.CustoMensal, error) {
	if req.QuantidadeRealizada < 0 {
		return nil, NewLedgerErrorWithID(ErrQuantidadeInvalida, apiErrors.ErrInvalidRequest, custoID,
			fmt.Sprintf("quantidade realizada %.2f", req.QuantidadeRealizada))
	}

	custo, err := s.custoRepository.GetByID(ctx, custoID)
	if err != nil {
		return nil, NewLedgerErrorWithID(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, custoID, "Falha ao consultar custo mensal")
	}
	if custo == nil {
		return nil, NewLedgerErrorWithID(ErrCustoNaoEncontrado, apiErrors.ErrCustoNotFound, custoID, "")
	}

	anterior, err := s.custoRepository.LastEntryForLineage(ctx, custo.ObraID, custo.Item, custo.Tipo, custo.Mes)
	if err != nil {
		return nil, NewLedgerErrorWithID(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, custoID, "Falha ao consultar histórico da linhagem")
	}

	var baseQuantidade, baseValor float64
	if anterior != nil {
		proximoMes, err := utils.NextMonth(anterior.Mes)
		if err != nil {
			return nil, NewLedgerErrorWithID(ErrMesInvalido, apiErrors.ErrInvalidFormat, custoID, err.Error())
		}
		if proximoMes != custo.Mes {
			return nil, NewLedgerErrorWithID(ErrLinhagemForaDeSequencia, apiErrors.ErrNonSequentialMonth, custoID,
				fmt.Sprintf("último mês da linhagem é %s, esperado %s antes de %s", anterior.Mes, proximoMes, custo.Mes))
		}
		baseQuantidade = anterior.QuantidadeAcumulada
		baseValor = anterior.ValorAcumulado
	}

	custo.QuantidadeRealizada = req.QuantidadeRealizada
	custo.ValorRealizado = utils.RoundWithTwoDecimalPlace(custo.QuantidadeRealizada * custo.ValorUnitario)
	if req.ValorRealizado != nil {
		custo.ValorRealizado = utils.RoundWithTwoDecimalPlace(*req.ValorRealizado)
	}

	custo.QuantidadeAcumulada = utils.RoundWithTwoDecimalPlace(baseQuantidade + custo.QuantidadeRealizada)
	custo.ValorAcumulado = utils.RoundWithTwoDecimalPlace(baseValor + custo.ValorRealizado)
	RecomputeBalances(custo)

	if err := s.custoRepository.UpdateRealizado(ctx, custo); err != nil {
		if errors.Is(err, repository.ErrVersaoConflito) {
			return nil, NewLedgerErrorWithID(ErrAtualizacaoConcorrente, apiErrors.ErrConcurrentUpdate, custoID,
				"O custo foi alterado por outra atualização, recarregue e tente novamente")
		}
		return nil, NewLedgerErrorWithID(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, custoID, "Falha ao gravar custo mensal")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"custo_id": custo.ID,
		"obra_id":  custo.ObraID,
		"mes":      custo.Mes,
	}).Info("Quantidade realizada atualizada")

	return custo, nil
}
