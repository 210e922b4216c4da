package enum

import "encoding/json"

// CampaignType tags the four kinds of promotional campaigns
type CampaignType int

const (
	CampaignTypeBuyNGetN        CampaignType = 0
	CampaignTypeCombo           CampaignType = 1
	CampaignTypeDiscount        CampaignType = 2
	CampaignTypeReceiptDiscount CampaignType = 3
)

func (t CampaignType) String() string {
	return [...]string{"buy_n_get_n", "combo", "discount", "receipt_discount"}[t]
}

func (t CampaignType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CampaignType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "buy_n_get_n":
		*t = CampaignTypeBuyNGetN
	case "combo":
		*t = CampaignTypeCombo
	case "discount":
		*t = CampaignTypeDiscount
	case "receipt_discount":
		*t = CampaignTypeReceiptDiscount
	}
	return nil
}
