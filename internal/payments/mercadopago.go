package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/centurialsign/sgpg-api/internal/models"
)

type PaymentLink struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// MercadoPago gera links de pagamento para orçamentos aprovados.
type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{prefs: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) Enabled() bool {
	return m != nil
}

func (m *MercadoPago) CreateLink(
	ctx context.Context,
	o *models.ServiceOrder,
) (*PaymentLink, error) {

	req := preference.Request{
		ExternalReference: fmt.Sprintf("OS-%d", o.OsNumber),
		Items: []preference.ItemRequest{
			{
				ID:          o.ID,
				Title:       o.Title,
				Description: o.Description,
				Quantity:    o.Quantity,
				CurrencyID:  "BRL",
				UnitPrice:   o.UnitPrice,
			},
		},
	}

	resp, err := m.prefs.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &PaymentLink{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}
