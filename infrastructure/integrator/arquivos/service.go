package arquivos

import (
	"context"
	"fmt"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/integrator/arquivos/arquivosclient"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/pkg/log"
)

const (
	ownerTypeObra      = "obra"
	ownerTypeSinaleiro = "sinaleiro"
)

// Service expõe a guarda de arquivos em termos do domínio: documentos de
// obra por categoria e documentos de identidade de sinaleiros
type Service interface {
	UploadObraArquivo(ctx context.Context, obraID string, arquivo *domain.ArquivoUpload) (string, error)
	UploadSinaleiroDocumento(ctx context.Context, sinaleiroID string, tipo domain.TipoDocumento, nome string, conteudo []byte) (string, error)
	ListSinaleiroDocumentos(ctx context.Context, sinaleiroID string) (map[domain.TipoDocumento]bool, error)
}

type service struct {
	client arquivosclient.Client
	logger log.Logger
}

func NewService(client arquivosclient.Client, logger log.Logger) Service {
	return &service{
		client: client,
		logger: logger,
	}
}

func (s *service) UploadObraArquivo(ctx context.Context, obraID string, arquivo *domain.ArquivoUpload) (string, error) {
	response, err := s.client.Upload(ctx, arquivosclient.UploadParams{
		OwnerType: ownerTypeObra,
		OwnerID:   obraID,
		Categoria: string(arquivo.Categoria),
		Nome:      arquivo.Nome,
		Conteudo:  arquivo.Conteudo,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao subir arquivo %s da obra: %w", arquivo.Categoria, err)
	}

	s.logger.Infof("Arquivo %s da obra %s armazenado em %s", arquivo.Categoria, obraID, response.URL)

	return response.URL, nil
}

func (s *service) UploadSinaleiroDocumento(ctx context.Context, sinaleiroID string, tipo domain.TipoDocumento, nome string, conteudo []byte) (string, error) {
	response, err := s.client.Upload(ctx, arquivosclient.UploadParams{
		OwnerType: ownerTypeSinaleiro,
		OwnerID:   sinaleiroID,
		Categoria: string(tipo),
		Nome:      nome,
		Conteudo:  conteudo,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao subir documento %s do sinaleiro: %w", tipo, err)
	}

	return response.URL, nil
}

// ListSinaleiroDocumentos devolve quais tipos de documento o sinaleiro tem
// guardados. Um erro aqui significa que a completude NÃO pode ser atestada.
func (s *service) ListSinaleiroDocumentos(ctx context.Context, sinaleiroID string) (map[domain.TipoDocumento]bool, error) {
	entries, err := s.client.ListDocuments(ctx, ownerTypeSinaleiro, sinaleiroID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar documentos do sinaleiro: %w", err)
	}

	documentos := make(map[domain.TipoDocumento]bool, len(entries))
	for _, entry := range entries {
		documentos[domain.TipoDocumento(entry.Categoria)] = true
	}

	return documentos, nil
}
