package workflow

// ===============================
// Tipo de produto
// ===============================

// ProductType identifica o tipo de serviço gráfico da OS.
type ProductType string

const (
	ProductPlacaSinalizacao ProductType = "placa_sinalizacao"
	ProductAdesivo          ProductType = "adesivo"
	ProductFachada          ProductType = "fachada"
	ProductBanner           ProductType = "banner"
	ProductBrinde           ProductType = "brinde"
	ProductOutdoor          ProductType = "outdoor"
	ProductImpressaoDigital ProductType = "impressao_digital"
	ProductOutros           ProductType = "outros"
)

type ProductTypeConfig struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var productTypeConfigs = map[ProductType]ProductTypeConfig{
	ProductPlacaSinalizacao: {Label: "Placa de Sinalização", Icon: "🪧"},
	ProductAdesivo:          {Label: "Adesivo", Icon: "🏷️"},
	ProductFachada:          {Label: "Fachada", Icon: "🏢"},
	ProductBanner:           {Label: "Banner", Icon: "🎌"},
	ProductBrinde:           {Label: "Brinde", Icon: "🎁"},
	ProductOutdoor:          {Label: "Outdoor", Icon: "📺"},
	ProductImpressaoDigital: {Label: "Impressão Digital", Icon: "🖨️"},
	ProductOutros:           {Label: "Outros", Icon: "📦"},
}

func (t ProductType) Valid() bool {
	_, ok := productTypeConfigs[t]
	return ok
}

func (t ProductType) Config() ProductTypeConfig {
	if cfg, ok := productTypeConfigs[t]; ok {
		return cfg
	}
	return ProductTypeConfig{Label: string(t)}
}

func (t ProductType) String() string {
	return string(t)
}
