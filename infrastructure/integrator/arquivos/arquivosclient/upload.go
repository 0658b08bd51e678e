package arquivosclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
)

type UploadParams struct {
	OwnerType string
	OwnerID   string
	Categoria string
	Nome      string
	Conteudo  []byte
}

type UploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type DocumentEntry struct {
	ID        string `json:"id"`
	Categoria string `json:"categoria"`
	Nome      string `json:"nome"`
	URL       string `json:"url"`
}

// Upload envia um arquivo via multipart e devolve a URL pública gerada
func (c *ArquivosClient) Upload(ctx context.Context, params UploadParams) (*UploadResponse, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/arquivos")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"owner_type": params.OwnerType,
		"owner_id":   params.OwnerID,
		"categoria":  params.Categoria,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("erro ao montar o formulário: %w", err)
		}
	}

	part, err := writer.CreateFormFile("arquivo", params.Nome)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(params.Conteudo)); err != nil {
		return nil, fmt.Errorf("erro ao copiar o conteúdo do arquivo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o formulário: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	response := &UploadResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}

// ListDocuments lista os arquivos guardados para um dono (obra ou sinaleiro)
func (c *ArquivosClient) ListDocuments(ctx context.Context, ownerType, ownerID string) ([]DocumentEntry, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/arquivos")

	query := endpoint.Query()
	query.Set("owner_type", ownerType)
	query.Set("owner_id", ownerID)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var entries []DocumentEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return entries, nil
}
