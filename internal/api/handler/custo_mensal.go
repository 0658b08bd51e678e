package handler

import (
	"errors"
	"net/http"

	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/duplicating"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/ledger"
	"github.com/gmcamargo/obra-ledger-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// ListCustosMensais lista os custos de uma obra, com filtro opcional de mês
func ListCustosMensais(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		obraID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if obraID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra é obrigatório", nil)
			return
		}

		mes := r.URL.Query().Get("mes")

		custos, err := service.ListarCustos(r.Context(), obraID, mes)
		if err != nil {
			logrus.Error("Error listing monthly costs:", err)
			writeLedgerError(w, err, "Erro ao listar custos mensais")
			return
		}

		if err := json.NewEncoder(w).Encode(custos); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListMesesCustos lista os meses com custos registrados para a obra
func ListMesesCustos(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		obraID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if obraID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra é obrigatório", nil)
			return
		}

		meses, err := service.ListarMeses(r.Context(), obraID)
		if err != nil {
			logrus.Error("Error listing cost months:", err)
			writeLedgerError(w, err, "Erro ao listar meses da obra")
			return
		}

		if err := json.NewEncoder(w).Encode(meses); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateRealizado atualiza a quantidade realizada de uma linha de custo
func UpdateRealizado(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateRealizado")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do custo é obrigatório", nil)
			return
		}

		var req domain.AtualizarRealizadoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		custo, err := service.AtualizarRealizado(r.Context(), id, &req)
		if err != nil {
			logrus.Error("Error updating realized quantity:", err)
			writeLedgerError(w, err, "Erro ao atualizar quantidade realizada")
			return
		}

		if err := json.NewEncoder(w).Encode(custo); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ReplicateCustos replica os custos de um mês para o mês seguinte
func ReplicateCustos(service duplicating.DuplicationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReplicateCustos")

		w.Header().Set("Content-Type", "application/json")

		var req domain.ReplicarCustosRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.ObraID == "" || req.MesOrigem == "" || req.MesDestino == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "obra_id, mes_origem e mes_destino são obrigatórios", nil)
			return
		}

		resp, err := service.Replicar(r.Context(), &req)
		if err != nil {
			logrus.Error("Error replicating monthly costs:", err)

			var dupErr *duplicating.DuplicationError
			if errors.As(err, &dupErr) {
				apiErrors.WriteError(w, dupErr.Code, dupErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao replicar custos mensais", nil)
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func writeLedgerError(w http.ResponseWriter, err error, fallback string) {
	var ledgerErr *ledger.LedgerError
	if errors.As(err, &ledgerErr) {
		apiErrors.WriteError(w, ledgerErr.Code, ledgerErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
