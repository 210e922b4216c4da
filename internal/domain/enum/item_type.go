package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ItemType discriminates the three receipt line item variants
type ItemType int

const (
	ItemTypeProduct ItemType = 0
	ItemTypeCombo   ItemType = 1
	ItemTypeGift    ItemType = 2
)

func (t ItemType) String() string {
	return [...]string{"product", "combo", "gift"}[t]
}

func (t ItemType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ItemType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = ItemType(i)
		return nil
	}
	switch str {
	case "product":
		*t = ItemTypeProduct
	case "combo":
		*t = ItemTypeCombo
	case "gift":
		*t = ItemTypeGift
	}
	return nil
}

func (t ItemType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ItemType) Scan(value interface{}) error {
	if value == nil {
		*t = ItemTypeProduct
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = ItemType(v)
	case int:
		*t = ItemType(v)
	}
	return nil
}
