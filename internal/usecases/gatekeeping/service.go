package gatekeeping

import (
	"context"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/integrator/arquivos"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/pkg/apiErrors"
	"github.com/gmcamargo/obra-ledger-api/pkg/log"
)

type GateService interface {
	ValidarDocumentos(ctx context.Context, sinaleiro *domain.Sinaleiro) (*domain.ValidacaoDocumentos, error)
	ValidarDocumentosPorID(ctx context.Context, sinaleiroID string) (*domain.ValidacaoDocumentos, error)
}

type Service struct {
	sinaleiroRepository repository.SinaleiroRepository
	arquivosService     arquivos.Service
}

func NewService(
	sinaleiroRepository repository.SinaleiroRepository,
	arquivosService arquivos.Service,
) *Service {
	return &Service{
		sinaleiroRepository: sinaleiroRepository,
		arquivosService:     arquivosService,
	}
}

// ValidarDocumentos checa se o sinaleiro tem os três documentos exigidos.
// Sinaleiros internos dispensam a checagem. Quando a guarda de arquivos não
// responde, o resultado é erro — nunca um "completo" presumido.
func (s *Service) ValidarDocumentos(ctx context.Context, sinaleiro *domain.Sinaleiro) (*domain.ValidacaoDocumentos, error) {
	if !sinaleiro.Afiliacao.RequerValidacaoDocumentos() {
		return &domain.ValidacaoDocumentos{Completo: true}, nil
	}

	documentos, err := s.arquivosService.ListSinaleiroDocumentos(ctx, sinaleiro.ID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("sinaleiro_id", sinaleiro.ID).
			Warn("Falha ao consultar documentos do sinaleiro, completude não atestada")
		return nil, NewGateError(ErrConsultaDocumentos, apiErrors.ErrExternalService, sinaleiro.ID, err.Error())
	}

	faltando := make([]domain.TipoDocumento, 0, len(domain.DocumentosObrigatorios))
	for _, tipo := range domain.DocumentosObrigatorios {
		if !documentos[tipo] {
			faltando = append(faltando, tipo)
		}
	}

	if len(faltando) > 0 {
		return &domain.ValidacaoDocumentos{Completo: false, Faltando: faltando}, nil
	}

	return &domain.ValidacaoDocumentos{Completo: true}, nil
}

func (s *Service) ValidarDocumentosPorID(ctx context.Context, sinaleiroID string) (*domain.ValidacaoDocumentos, error) {
	sinaleiro, err := s.sinaleiroRepository.GetByID(ctx, sinaleiroID)
	if err != nil {
		return nil, NewGateError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, sinaleiroID, "Falha ao consultar sinaleiro")
	}
	if sinaleiro == nil {
		return nil, NewGateError(ErrSinaleiroNaoEncontrado, apiErrors.ErrSinaleiroNotFound, sinaleiroID, "")
	}

	return s.ValidarDocumentos(ctx, sinaleiro)
}
