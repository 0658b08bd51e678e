package handler

import (
	"errors"
	"net/http"

	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/gatekeeping"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/provisioning"
	"github.com/gmcamargo/obra-ledger-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CreateObra provisiona uma obra completa com ledger, documentos e vínculos
func CreateObra(service provisioning.ProvisioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateObra")

		w.Header().Set("Content-Type", "application/json")

		var req domain.CriarObraRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.CriarObra(r.Context(), &req)
		if err != nil {
			logrus.Error("Error provisioning obra:", err)

			var provErr *provisioning.ProvisioningError
			if errors.As(err, &provErr) {
				if len(provErr.Issues) > 0 {
					apiErrors.WriteError(w, provErr.Code, "Requisição de provisionamento inválida", provErr.Issues)
					return
				}
				apiErrors.WriteError(w, provErr.Code, provErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao provisionar obra", nil)
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateObraDocumentos anexa identificadores regulatórios a uma obra existente
func UpdateObraDocumentos(service provisioning.ProvisioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateObraDocumentos")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra é obrigatório", nil)
			return
		}

		var req domain.AtualizarDocumentosObraRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		req.ObraID = id

		obra, err := service.AtualizarDocumentosObra(r.Context(), &req)
		if err != nil {
			logrus.Error("Error updating obra documents:", err)
			writeProvisioningError(w, err, "Erro ao atualizar documentos da obra")
			return
		}

		if err := json.NewEncoder(w).Encode(obra); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// LinkSinaleiros vincula um lote de sinaleiros a uma obra existente
func LinkSinaleiros(service provisioning.ProvisioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LinkSinaleiros")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra é obrigatório", nil)
			return
		}

		var req domain.VincularSinaleirosRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		req.ObraID = id

		resp, err := service.VincularSinaleiros(r.Context(), &req)
		if err != nil {
			logrus.Error("Error linking sinaleiros:", err)
			writeProvisioningError(w, err, "Erro ao vincular sinaleiros")
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListSinaleiros lista os sinaleiros vinculados a uma obra
func ListSinaleiros(service provisioning.ProvisioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra é obrigatório", nil)
			return
		}

		sinaleiros, err := service.ListarSinaleiros(r.Context(), id)
		if err != nil {
			logrus.Error("Error listing sinaleiros:", err)
			writeProvisioningError(w, err, "Erro ao listar sinaleiros")
			return
		}

		if err := json.NewEncoder(w).Encode(sinaleiros); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ValidateSinaleiroDocumentos checa a completude dos documentos de um sinaleiro
func ValidateSinaleiroDocumentos(service gatekeeping.GateService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do sinaleiro é obrigatório", nil)
			return
		}

		validacao, err := service.ValidarDocumentosPorID(r.Context(), id)
		if err != nil {
			logrus.Error("Error validating sinaleiro documents:", err)

			var gateErr *gatekeeping.GateError
			if errors.As(err, &gateErr) {
				apiErrors.WriteError(w, gateErr.Code, gateErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar documentos do sinaleiro", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(validacao); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func writeProvisioningError(w http.ResponseWriter, err error, fallback string) {
	var provErr *provisioning.ProvisioningError
	if errors.As(err, &provErr) {
		apiErrors.WriteError(w, provErr.Code, provErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
