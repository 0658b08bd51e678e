package arquivosclient

import (
	"context"
	"net/http"
	"time"

	"github.com/gmcamargo/obra-ledger-api/internal/config"
)

// Client fala com o serviço de guarda de arquivos que armazena os documentos
// de obras e sinaleiros
type Client interface {
	Upload(ctx context.Context, params UploadParams) (*UploadResponse, error)
	ListDocuments(ctx context.Context, ownerType, ownerID string) ([]DocumentEntry, error)
}

type ArquivosClient struct {
	httpClient *http.Client
	config     *config.Arquivos
}

func NewClient(cfg *config.Arquivos) Client {
	return &ArquivosClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
