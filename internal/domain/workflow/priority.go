package workflow

// ===============================
// Prioridade
// ===============================

// Priority é o nível de urgência de uma OS,
// ordenado por severidade: baixa < normal < alta < urgente.
type Priority string

const (
	PriorityBaixa   Priority = "baixa"
	PriorityNormal  Priority = "normal"
	PriorityAlta    Priority = "alta"
	PriorityUrgente Priority = "urgente"
)

type PriorityConfig struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var priorityConfigs = map[Priority]PriorityConfig{
	PriorityBaixa:   {Label: "Baixa", Color: "text-muted-foreground"},
	PriorityNormal:  {Label: "Normal", Color: "text-foreground"},
	PriorityAlta:    {Label: "Alta", Color: "text-orange-600"},
	PriorityUrgente: {Label: "Urgente", Color: "text-red-600"},
}

var priorityRanks = map[Priority]int{
	PriorityBaixa:   0,
	PriorityNormal:  1,
	PriorityAlta:    2,
	PriorityUrgente: 3,
}

func (p Priority) Valid() bool {
	_, ok := priorityConfigs[p]
	return ok
}

func (p Priority) Config() PriorityConfig {
	if cfg, ok := priorityConfigs[p]; ok {
		return cfg
	}
	return PriorityConfig{Label: string(p)}
}

// Rank devolve a severidade numérica para ordenação.
// Valores desconhecidos contam como -1.
func (p Priority) Rank() int {
	if r, ok := priorityRanks[p]; ok {
		return r
	}
	return -1
}

func (p Priority) String() string {
	return string(p)
}
