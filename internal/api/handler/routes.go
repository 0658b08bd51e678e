package handler

import (
	"net/http"

	"github.com/gmcamargo/obra-ledger-api/internal/api/handler/router"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/duplicating"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/gatekeeping"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/ledger"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/provisioning"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Obras(provisioningService provisioning.ProvisioningService, gateService gatekeeping.GateService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/obras",
			Method:  http.MethodPost,
			Handler: CreateObra(provisioningService),
		},
		{
			Path:    "/v1/obras/:id/documentos",
			Method:  http.MethodPut,
			Handler: UpdateObraDocumentos(provisioningService),
		},
		{
			Path:    "/v1/obras/:id/sinaleiros",
			Method:  http.MethodPost,
			Handler: LinkSinaleiros(provisioningService),
		},
		{
			Path:    "/v1/obras/:id/sinaleiros",
			Method:  http.MethodGet,
			Handler: ListSinaleiros(provisioningService),
		},
		{
			Path:    "/v1/sinaleiros/:id/validar-documentos",
			Method:  http.MethodGet,
			Handler: ValidateSinaleiroDocumentos(gateService),
		},
	}
}

func CustosMensais(ledgerService ledger.LedgerService, duplicationService duplicating.DuplicationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/obras/:id/custos-mensais",
			Method:  http.MethodGet,
			Handler: ListCustosMensais(ledgerService),
		},
		{
			Path:    "/v1/obras/:id/custos-mensais/meses",
			Method:  http.MethodGet,
			Handler: ListMesesCustos(ledgerService),
		},
		{
			Path:    "/v1/custos-mensais/:id/realizado",
			Method:  http.MethodPatch,
			Handler: UpdateRealizado(ledgerService),
		},
		{
			Path:    "/v1/custos-mensais/replicar",
			Method:  http.MethodPost,
			Handler: ReplicateCustos(duplicationService),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
