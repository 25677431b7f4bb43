package workflow

// ===============================
// OS Status
// ===============================

// Status é o estado de uma OS dentro do fluxo de produção.
type Status string

const (
	StatusOrcamento  Status = "orcamento"
	StatusAprovado   Status = "aprovado"
	StatusArte       Status = "arte"
	StatusProducao   Status = "producao"
	StatusAcabamento Status = "acabamento"
	StatusRevisao    Status = "revisao"
	StatusEntrega    Status = "entrega"
	StatusConcluido  Status = "concluido"
	StatusCancelado  Status = "cancelado"
)

// Sequence é a progressão linear do fluxo de produção.
// Cancelado fica fora da sequência: é terminal e alcançável
// de qualquer estado não terminal.
var Sequence = []Status{
	StatusOrcamento,
	StatusAprovado,
	StatusArte,
	StatusProducao,
	StatusAcabamento,
	StatusRevisao,
	StatusEntrega,
	StatusConcluido,
}

type StatusConfig struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusConfigs = map[Status]StatusConfig{
	StatusOrcamento:  {Label: "Orçamento", Color: "status-pending"},
	StatusAprovado:   {Label: "Aprovado", Color: "status-approved"},
	StatusArte:       {Label: "Em Arte", Color: "status-art"},
	StatusProducao:   {Label: "Produção", Color: "status-production"},
	StatusAcabamento: {Label: "Acabamento", Color: "status-finishing"},
	StatusRevisao:    {Label: "Revisão", Color: "status-review"},
	StatusEntrega:    {Label: "Entrega", Color: "status-delivery"},
	StatusConcluido:  {Label: "Concluído", Color: "status-delivery"},
	StatusCancelado:  {Label: "Cancelado", Color: "status-cancelled"},
}

func (s Status) Valid() bool {
	_, ok := statusConfigs[s]
	return ok
}

// Config retorna label e cor do status. Para valores desconhecidos
// devolve o próprio valor cru como label, para não quebrar listagens.
func (s Status) Config() StatusConfig {
	if cfg, ok := statusConfigs[s]; ok {
		return cfg
	}
	return StatusConfig{Label: string(s)}
}

func (s Status) String() string {
	return string(s)
}

// Terminal indica que o status não possui próximo passo no fluxo.
func (s Status) Terminal() bool {
	return s == StatusConcluido || s == StatusCancelado
}

// NextStatus devolve o próximo status da sequência linear.
// Para concluido e cancelado (ou valores fora da sequência)
// retorna ok=false.
func NextStatus(current Status) (Status, bool) {
	if current == StatusCancelado {
		return "", false
	}
	for i, s := range Sequence {
		if s == current {
			if i == len(Sequence)-1 {
				return "", false
			}
			return Sequence[i+1], true
		}
	}
	return "", false
}

// ProgressFraction devolve o avanço do fluxo em [0,1], usado na
// barra de progresso da OS. Cancelado (e valores desconhecidos)
// contam como 0.
func ProgressFraction(current Status) float64 {
	for i, s := range Sequence {
		if s == current {
			return float64(i+1) / float64(len(Sequence))
		}
	}
	return 0
}
