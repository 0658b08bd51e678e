package provisioning

import (
	"context"
	"fmt"
	"sync"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/integrator/arquivos"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/gatekeeping"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/importing"
	"github.com/gmcamargo/obra-ledger-api/pkg/apiErrors"
	"github.com/gmcamargo/obra-ledger-api/pkg/log"
	"github.com/gmcamargo/obra-ledger-api/pkg/utils"
)

// maxSinaleiros é o limite por obra: um principal e um reserva
const maxSinaleiros = 2

type ProvisioningService interface {
	CriarObra(ctx context.Context, req *domain.CriarObraRequest) (*domain.ProvisioningResult, error)
	AtualizarDocumentosObra(ctx context.Context, req *domain.AtualizarDocumentosObraRequest) (*domain.Obra, error)
	VincularSinaleiros(ctx context.Context, req *domain.VincularSinaleirosRequest) (*domain.VincularSinaleirosResponse, error)
	ListarSinaleiros(ctx context.Context, obraID string) ([]*domain.Sinaleiro, error)
}

type Service struct {
	obraRepository        repository.ObraRepository
	sinaleiroRepository   repository.SinaleiroRepository
	gruaRepository        repository.GruaRepository
	funcionarioRepository repository.FuncionarioRepository
	responsavelRepository repository.ResponsavelTecnicoRepository
	arquivosService       arquivos.Service
	gateService           gatekeeping.GateService
	importService         importing.ImportService
}

func NewService(
	obraRepository repository.ObraRepository,
	sinaleiroRepository repository.SinaleiroRepository,
	gruaRepository repository.GruaRepository,
	funcionarioRepository repository.FuncionarioRepository,
	responsavelRepository repository.ResponsavelTecnicoRepository,
	arquivosService arquivos.Service,
	gateService gatekeeping.GateService,
	importService importing.ImportService,
) *Service {
	return &Service{
		obraRepository:        obraRepository,
		sinaleiroRepository:   sinaleiroRepository,
		gruaRepository:        gruaRepository,
		funcionarioRepository: funcionarioRepository,
		responsavelRepository: responsavelRepository,
		arquivosService:       arquivosService,
		gateService:           gateService,
		importService:         importService,
	}
}

// CriarObra provisiona uma obra completa a partir do orçamento aprovado.
//
// A validação e a criação do registro da obra são fatais. Tudo que vem
// depois — importação do ledger, upload de documentos e vínculos de
// entidades — tolera falhas parciais: cada problema vira uma entrada em
// Falhas ou Pendencias e o provisionamento segue adiante. O chamador recebe
// o retrato completo do que existe e do que precisa de atenção.
func (s *Service) CriarObra(ctx context.Context, req *domain.CriarObraRequest) (*domain.ProvisioningResult, error) {
	if issues := validateRequest(req); len(issues) > 0 {
		return nil, NewValidationError(apiErrors.ErrMissingRequiredData, issues)
	}

	obra, err := buildObra(req)
	if err != nil {
		return nil, NewProvisioningError(ErrCriacaoObra, apiErrors.ErrInternalServer, err.Error())
	}

	if err := s.obraRepository.Criar(ctx, obra); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar obra")
		return nil, NewProvisioningError(ErrCriacaoObra, apiErrors.ErrDatabaseOperation, "Falha ao gravar a obra")
	}

	result := &domain.ProvisioningResult{
		ObraID:     obra.ID,
		Documentos: make(map[domain.CategoriaArquivo]string),
		Falhas:     make([]domain.FalhaProvisionamento, 0),
		Pendencias: make([]domain.PendenciaConformidade, 0),
	}

	s.importarOrcamento(ctx, req, obra.ID, result)
	s.subirArquivos(ctx, req, obra.ID, result)
	s.vincularEntidades(ctx, req, obra.ID, result)

	if len(result.Falhas) > 0 || len(result.Pendencias) > 0 {
		result.Status = domain.ProvisionamentoDegradado
	} else {
		result.Status = domain.ProvisionamentoConcluido
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"obra_id":    obra.ID,
		"status":     result.Status,
		"falhas":     len(result.Falhas),
		"pendencias": len(result.Pendencias),
	}).Info("Provisionamento de obra finalizado")

	return result, nil
}

func buildObra(req *domain.CriarObraRequest) (*domain.Obra, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da obra: %w", err)
	}

	return &domain.Obra{
		ID:            id,
		Nome:          req.Nome,
		ClienteID:     req.ClienteID,
		Endereco:      req.Endereco,
		Cidade:        req.Cidade,
		Estado:        req.Estado,
		Cep:           req.Cep,
		Tipo:          req.Tipo,
		Status:        domain.StatusObraPlanejamento,
		Descricao:     req.Descricao,
		DataInicio:    req.DataInicio,
		OrcamentoID:   req.OrcamentoID,
		Cno:           req.Cno,
		ArtNumero:     req.ArtNumero,
		ApoliceNumero: req.ApoliceNumero,
	}, nil
}

// validateRequest checa a requisição inteira e devolve todos os problemas
// encontrados de uma vez
func validateRequest(req *domain.CriarObraRequest) []ValidationIssue {
	issues := make([]ValidationIssue, 0)

	required := map[string]string{
		"nome":           req.Nome,
		"cliente_id":     req.ClienteID,
		"endereco":       req.Endereco,
		"cidade":         req.Cidade,
		"estado":         req.Estado,
		"tipo":           req.Tipo,
		"cno":            req.Cno,
		"art_numero":     req.ArtNumero,
		"apolice_numero": req.ApoliceNumero,
	}
	for campo, valor := range required {
		if valor == "" {
			issues = append(issues, ValidationIssue{Campo: campo, Motivo: "campo obrigatório"})
		}
	}

	if req.Tipo != "" && !contains(domain.TiposObra, req.Tipo) {
		issues = append(issues, ValidationIssue{Campo: "tipo", Motivo: fmt.Sprintf("tipo de obra desconhecido: %s", req.Tipo)})
	}

	// ART e apólice só valem acompanhadas dos respectivos certificados
	categorias := make(map[domain.CategoriaArquivo]bool, len(req.Arquivos))
	for i := range req.Arquivos {
		categorias[req.Arquivos[i].Categoria] = true
	}
	if !categorias[domain.ArquivoArt] {
		issues = append(issues, ValidationIssue{Campo: "art_arquivo", Motivo: "certificado da ART obrigatório"})
	}
	if !categorias[domain.ArquivoApolice] {
		issues = append(issues, ValidationIssue{Campo: "apolice_arquivo", Motivo: "certificado da apólice obrigatório"})
	}

	if req.OrcamentoID != "" {
		if req.MesInicial == "" {
			issues = append(issues, ValidationIssue{Campo: "mes_inicial", Motivo: "obrigatório quando há orçamento a importar"})
		} else if _, err := utils.ParseMonth(req.MesInicial); err != nil {
			issues = append(issues, ValidationIssue{Campo: "mes_inicial", Motivo: "formato esperado YYYY-MM"})
		}
	}

	if len(req.Sinaleiros) > maxSinaleiros {
		issues = append(issues, ValidationIssue{
			Campo:  "sinaleiros",
			Motivo: fmt.Sprintf("máximo de %d sinaleiros por obra", maxSinaleiros),
		})
	}

	tiposVistos := make(map[domain.TipoSinaleiro]bool)
	for i, sin := range req.Sinaleiros {
		campo := fmt.Sprintf("sinaleiros[%d]", i)
		if sin.Nome == "" {
			issues = append(issues, ValidationIssue{Campo: campo + ".nome", Motivo: "campo obrigatório"})
		}
		if sin.Tipo != domain.SinaleiroPrincipal && sin.Tipo != domain.SinaleiroReserva {
			issues = append(issues, ValidationIssue{Campo: campo + ".tipo", Motivo: "deve ser principal ou reserva"})
		} else if tiposVistos[sin.Tipo] {
			issues = append(issues, ValidationIssue{Campo: campo + ".tipo", Motivo: fmt.Sprintf("sinaleiro %s duplicado", sin.Tipo)})
		} else {
			tiposVistos[sin.Tipo] = true
		}
	}

	for i, resp := range req.Responsaveis {
		campo := fmt.Sprintf("responsaveis[%d]", i)
		issues = append(issues, validateResponsavel(campo, &resp)...)
	}
	if req.ResponsavelCliente != nil {
		issues = append(issues, validateResponsavel("responsavel_cliente", req.ResponsavelCliente)...)
	}

	for i, grua := range req.Gruas {
		if grua.GruaID == "" {
			issues = append(issues, ValidationIssue{Campo: fmt.Sprintf("gruas[%d].grua_id", i), Motivo: "campo obrigatório"})
		}
	}

	for i, funcionario := range req.Funcionarios {
		campo := fmt.Sprintf("funcionarios[%d]", i)
		if funcionario.FuncionarioID == "" {
			issues = append(issues, ValidationIssue{Campo: campo + ".funcionario_id", Motivo: "campo obrigatório"})
		}
		if funcionario.Cargo == "" {
			issues = append(issues, ValidationIssue{Campo: campo + ".cargo", Motivo: "campo obrigatório"})
		}
	}

	for i, sup := range req.Supervisores {
		if sup.FuncionarioID == "" {
			issues = append(issues, ValidationIssue{Campo: fmt.Sprintf("supervisores[%d].funcionario_id", i), Motivo: "campo obrigatório"})
		}
	}

	return issues
}

func validateResponsavel(campo string, resp *domain.ResponsavelTecnicoCandidato) []ValidationIssue {
	issues := make([]ValidationIssue, 0)

	if resp.Nome == "" {
		issues = append(issues, ValidationIssue{Campo: campo + ".nome", Motivo: "campo obrigatório"})
	}
	if resp.CpfCnpj == "" {
		issues = append(issues, ValidationIssue{Campo: campo + ".cpf_cnpj", Motivo: "campo obrigatório"})
	}

	switch resp.Categoria {
	case domain.CategoriaEquipamento, domain.CategoriaManutencao, domain.CategoriaMontagemOperacao:
	case domain.CategoriaAdicional:
		if resp.AreaAdicional == "" {
			issues = append(issues, ValidationIssue{Campo: campo + ".area_adicional", Motivo: "obrigatório para a categoria adicional"})
		}
	default:
		issues = append(issues, ValidationIssue{Campo: campo + ".categoria", Motivo: fmt.Sprintf("categoria desconhecida: %s", resp.Categoria)})
	}

	return issues
}

// importarOrcamento semeia o ledger da obra; uma falha aqui degrada o
// provisionamento mas não o interrompe
func (s *Service) importarOrcamento(ctx context.Context, req *domain.CriarObraRequest, obraID string, result *domain.ProvisioningResult) {
	if req.OrcamentoID == "" {
		return
	}

	importados, err := s.importService.ImportarOrcamento(ctx, req.OrcamentoID, obraID, req.MesInicial)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("obra_id", obraID).Error("Erro ao importar orçamento no provisionamento")
		result.Falhas = append(result.Falhas, domain.FalhaProvisionamento{
			Etapa:    domain.EtapaImportacaoOrcamento,
			Entidade: req.OrcamentoID,
			Motivo:   err.Error(),
		})
		return
	}

	result.CustosImportados = importados
}

// subirArquivos envia cada documento de forma independente; um upload que
// falha não impede os demais
func (s *Service) subirArquivos(ctx context.Context, req *domain.CriarObraRequest, obraID string, result *domain.ProvisioningResult) {
	if len(req.Arquivos) == 0 {
		return
	}

	update := &domain.AtualizarDocumentosObraRequest{ObraID: obraID}
	temArquivoRegulatorio := false

	for i := range req.Arquivos {
		arquivo := &req.Arquivos[i]

		url, err := s.arquivosService.UploadObraArquivo(ctx, obraID, arquivo)
		if err != nil {
			result.Falhas = append(result.Falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaUploadDocumentos,
				Entidade: string(arquivo.Categoria),
				Motivo:   err.Error(),
			})
			continue
		}

		result.Documentos[arquivo.Categoria] = url

		switch arquivo.Categoria {
		case domain.ArquivoCno:
			update.CnoArquivo = &url
			temArquivoRegulatorio = true
		case domain.ArquivoArt:
			update.ArtArquivo = &url
			temArquivoRegulatorio = true
		case domain.ArquivoApolice:
			update.ApoliceArquivo = &url
			temArquivoRegulatorio = true
		}
	}

	if temArquivoRegulatorio {
		if err := s.obraRepository.AtualizarDocumentos(ctx, update); err != nil {
			result.Falhas = append(result.Falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaUploadDocumentos,
				Entidade: obraID,
				Motivo:   fmt.Sprintf("erro ao gravar URLs dos documentos: %v", err),
			})
		}
	}
}

// grupoResultado acumula o desfecho de um grupo de vínculos processado em
// paralelo com os demais
type grupoResultado struct {
	falhas     []domain.FalhaProvisionamento
	pendencias []domain.PendenciaConformidade
}

// vincularEntidades processa os grupos de vínculo em paralelo. Cada grupo é
// sequencial por dentro e escreve apenas no seu próprio resultado; a fusão
// acontece depois do wait, na ordem fixa dos grupos.
func (s *Service) vincularEntidades(ctx context.Context, req *domain.CriarObraRequest, obraID string, result *domain.ProvisioningResult) {
	grupos := []func(context.Context, *grupoResultado){
		func(ctx context.Context, r *grupoResultado) { s.vincularGruas(ctx, obraID, req.Gruas, r) },
		func(ctx context.Context, r *grupoResultado) { s.vincularFuncionarios(ctx, obraID, req.Funcionarios, r) },
		func(ctx context.Context, r *grupoResultado) { s.criarResponsaveis(ctx, obraID, req, r) },
		func(ctx context.Context, r *grupoResultado) { s.vincularSinaleiros(ctx, obraID, req.Sinaleiros, r) },
		func(ctx context.Context, r *grupoResultado) { s.vincularSupervisores(ctx, obraID, req.Supervisores, r) },
	}

	resultados := make([]grupoResultado, len(grupos))
	var wg sync.WaitGroup

	for i, grupo := range grupos {
		wg.Add(1)
		go func(slot int, run func(context.Context, *grupoResultado)) {
			defer wg.Done()
			run(ctx, &resultados[slot])
		}(i, grupo)
	}

	wg.Wait()

	for _, r := range resultados {
		result.Falhas = append(result.Falhas, r.falhas...)
		result.Pendencias = append(result.Pendencias, r.pendencias...)
	}
}

func (s *Service) vincularGruas(ctx context.Context, obraID string, gruas []domain.GruaVinculo, r *grupoResultado) {
	for i := range gruas {
		if ctx.Err() != nil {
			return
		}
		grua := &gruas[i]

		existe, err := s.gruaRepository.Exists(ctx, grua.GruaID)
		if err == nil && !existe {
			err = fmt.Errorf("grua %s não cadastrada", grua.GruaID)
		}
		if err == nil {
			err = s.gruaRepository.AttachToObra(ctx, obraID, grua)
		}
		if err != nil {
			r.falhas = append(r.falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaVinculoGruas,
				Entidade: grua.GruaID,
				Motivo:   err.Error(),
			})
		}
	}
}

func (s *Service) vincularFuncionarios(ctx context.Context, obraID string, funcionarios []domain.FuncionarioVinculo, r *grupoResultado) {
	for i := range funcionarios {
		if ctx.Err() != nil {
			return
		}
		funcionario := &funcionarios[i]

		existe, err := s.funcionarioRepository.Exists(ctx, funcionario.FuncionarioID)
		if err == nil && !existe {
			err = fmt.Errorf("funcionário %s não cadastrado", funcionario.FuncionarioID)
		}
		if err == nil {
			err = s.funcionarioRepository.AttachToObra(ctx, obraID, funcionario)
		}
		if err != nil {
			r.falhas = append(r.falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaVinculoFuncionarios,
				Entidade: funcionario.FuncionarioID,
				Motivo:   err.Error(),
			})
		}
	}
}

func (s *Service) criarResponsaveis(ctx context.Context, obraID string, req *domain.CriarObraRequest, r *grupoResultado) {
	candidatos := make([]domain.ResponsavelTecnicoCandidato, 0, len(req.Responsaveis)+1)
	candidatos = append(candidatos, req.Responsaveis...)
	if req.ResponsavelCliente != nil {
		candidatos = append(candidatos, *req.ResponsavelCliente)
	}

	for i := range candidatos {
		if ctx.Err() != nil {
			return
		}
		candidato := &candidatos[i]

		id, err := utils.GenerateID()
		if err == nil {
			err = s.responsavelRepository.Criar(ctx, &domain.ResponsavelTecnico{
				ID:            id,
				ObraID:        obraID,
				Nome:          candidato.Nome,
				CpfCnpj:       candidato.CpfCnpj,
				Crea:          candidato.Crea,
				Email:         candidato.Email,
				Telefone:      candidato.Telefone,
				Categoria:     candidato.Categoria,
				AreaAdicional: candidato.AreaAdicional,
			})
		}
		if err != nil {
			r.falhas = append(r.falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaVinculoResponsaveis,
				Entidade: candidato.Nome,
				Motivo:   err.Error(),
			})
		}
	}
}

func (s *Service) vincularSupervisores(ctx context.Context, obraID string, supervisores []domain.SupervisorObra, r *grupoResultado) {
	for i := range supervisores {
		if ctx.Err() != nil {
			return
		}
		supervisor := &supervisores[i]

		if err := s.obraRepository.VincularSupervisor(ctx, obraID, supervisor); err != nil {
			r.falhas = append(r.falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaVinculoSupervisores,
				Entidade: supervisor.FuncionarioID,
				Motivo:   err.Error(),
			})
		}
	}
}

// vincularSinaleiros normaliza, limita e grava o lote de sinaleiros, e em
// seguida checa a documentação dos não-internos. Um candidato com documento
// inválido é descartado com falha registrada; os demais seguem. Documentação
// incompleta não desfaz o vínculo: vira pendência de conformidade.
func (s *Service) vincularSinaleiros(ctx context.Context, obraID string, candidatos []domain.SinaleiroCandidato, r *grupoResultado) {
	if len(candidatos) == 0 {
		return
	}

	existentes, err := s.sinaleiroRepository.ListarPorObra(ctx, obraID)
	if err != nil {
		r.falhas = append(r.falhas, domain.FalhaProvisionamento{
			Etapa:    domain.EtapaVinculoSinaleiros,
			Entidade: obraID,
			Motivo:   "erro ao consultar sinaleiros existentes: " + err.Error(),
		})
		return
	}

	vagas := maxSinaleiros - len(existentes)
	aceitos := make([]*domain.Sinaleiro, 0, len(candidatos))

	for i := range candidatos {
		if ctx.Err() != nil {
			return
		}
		candidato := &candidatos[i]

		if len(aceitos) >= vagas {
			r.falhas = append(r.falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaVinculoSinaleiros,
				Entidade: candidato.Nome,
				Motivo:   ErrLimiteSinaleiros.Error(),
			})
			continue
		}

		rgCpf, err := utils.NormalizeRgCpf(candidato.RgCpf)
		if err != nil {
			r.falhas = append(r.falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaVinculoSinaleiros,
				Entidade: candidato.Nome,
				Motivo:   fmt.Sprintf("documento %q inválido", candidato.RgCpf),
			})
			continue
		}

		afiliacao := candidato.Afiliacao
		if afiliacao == "" {
			afiliacao = domain.AfiliacaoDesconhecida
		}

		id, err := utils.GenerateID()
		if err != nil {
			r.falhas = append(r.falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaVinculoSinaleiros,
				Entidade: candidato.Nome,
				Motivo:   err.Error(),
			})
			continue
		}

		aceitos = append(aceitos, &domain.Sinaleiro{
			ID:        id,
			ObraID:    obraID,
			Nome:      candidato.Nome,
			RgCpf:     rgCpf,
			Telefone:  candidato.Telefone,
			Email:     candidato.Email,
			Tipo:      candidato.Tipo,
			Afiliacao: afiliacao,
		})
	}

	if len(aceitos) == 0 {
		return
	}

	if err := s.sinaleiroRepository.VincularLote(ctx, aceitos); err != nil {
		for _, sinaleiro := range aceitos {
			r.falhas = append(r.falhas, domain.FalhaProvisionamento{
				Etapa:    domain.EtapaVinculoSinaleiros,
				Entidade: sinaleiro.Nome,
				Motivo:   err.Error(),
			})
		}
		return
	}

	for _, sinaleiro := range aceitos {
		if ctx.Err() != nil {
			return
		}
		if !sinaleiro.Afiliacao.RequerValidacaoDocumentos() {
			continue
		}

		validacao, err := s.gateService.ValidarDocumentos(ctx, sinaleiro)
		if err != nil {
			// Sem resposta da guarda de arquivos a completude não pode ser
			// atestada, então todos os documentos contam como pendentes
			r.pendencias = append(r.pendencias, domain.PendenciaConformidade{
				SinaleiroID:   sinaleiro.ID,
				SinaleiroNome: sinaleiro.Nome,
				Faltando:      domain.DocumentosObrigatorios,
			})
			continue
		}

		if !validacao.Completo {
			r.pendencias = append(r.pendencias, domain.PendenciaConformidade{
				SinaleiroID:   sinaleiro.ID,
				SinaleiroNome: sinaleiro.Nome,
				Faltando:      validacao.Faltando,
			})
		}
	}
}

// VincularSinaleiros expõe o vínculo em lote fora do provisionamento, para
// obras já criadas
func (s *Service) VincularSinaleiros(ctx context.Context, req *domain.VincularSinaleirosRequest) (*domain.VincularSinaleirosResponse, error) {
	obra, err := s.obraRepository.GetByID(ctx, req.ObraID)
	if err != nil {
		return nil, NewProvisioningError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, "Falha ao consultar obra")
	}
	if obra == nil {
		return nil, NewProvisioningError(ErrObraNaoEncontrada, apiErrors.ErrObraNotFound, req.ObraID)
	}

	resultado := &grupoResultado{}
	s.vincularSinaleiros(ctx, req.ObraID, req.Sinaleiros, resultado)

	vinculados, err := s.sinaleiroRepository.ListarPorObra(ctx, req.ObraID)
	if err != nil {
		return nil, NewProvisioningError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, "Falha ao listar sinaleiros da obra")
	}

	return &domain.VincularSinaleirosResponse{
		Vinculados: vinculados,
		Falhas:     resultado.falhas,
		Pendencias: resultado.pendencias,
	}, nil
}

// AtualizarDocumentosObra anexa identificadores regulatórios a uma obra já
// criada, sem tocar nos campos ausentes da requisição
func (s *Service) AtualizarDocumentosObra(ctx context.Context, req *domain.AtualizarDocumentosObraRequest) (*domain.Obra, error) {
	obra, err := s.obraRepository.GetByID(ctx, req.ObraID)
	if err != nil {
		return nil, NewProvisioningError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, "Falha ao consultar obra")
	}
	if obra == nil {
		return nil, NewProvisioningError(ErrObraNaoEncontrada, apiErrors.ErrObraNotFound, req.ObraID)
	}

	if err := s.obraRepository.AtualizarDocumentos(ctx, req); err != nil {
		return nil, NewProvisioningError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, "Falha ao atualizar documentos da obra")
	}

	atualizada, err := s.obraRepository.GetByID(ctx, req.ObraID)
	if err != nil {
		return nil, NewProvisioningError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, "Falha ao recarregar obra")
	}

	return atualizada, nil
}

func (s *Service) ListarSinaleiros(ctx context.Context, obraID string) ([]*domain.Sinaleiro, error) {
	sinaleiros, err := s.sinaleiroRepository.ListarPorObra(ctx, obraID)
	if err != nil {
		return nil, NewProvisioningError(ErrOperacaoBanco, apiErrors.ErrDatabaseOperation, "Falha ao listar sinaleiros da obra")
	}

	return sinaleiros, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
