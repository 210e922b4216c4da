package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ReceiptStatus represents the lifecycle status of a receipt
type ReceiptStatus int

const (
	ReceiptStatusOpen   ReceiptStatus = 0
	ReceiptStatusClosed ReceiptStatus = 1
)

func (s ReceiptStatus) String() string {
	return [...]string{"open", "closed"}[s]
}

func (s ReceiptStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ReceiptStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ReceiptStatus(i)
		return nil
	}
	switch str {
	case "open":
		*s = ReceiptStatusOpen
	case "closed":
		*s = ReceiptStatusClosed
	}
	return nil
}

func (s ReceiptStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ReceiptStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReceiptStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ReceiptStatus(v)
	case int:
		*s = ReceiptStatus(v)
	}
	return nil
}
