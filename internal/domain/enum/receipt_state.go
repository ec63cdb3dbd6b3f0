package enum

import (
	"encoding/json"
)

// ReceiptState represents where a receipt is in its lifecycle.
// The only transition is Open -> CheckedOut.
type ReceiptState int

const (
	ReceiptStateOpen       ReceiptState = 0
	ReceiptStateCheckedOut ReceiptState = 1
)

func (s ReceiptState) String() string {
	switch s {
	case ReceiptStateCheckedOut:
		return "CheckedOut"
	default:
		return "Open"
	}
}

func (s ReceiptState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ReceiptState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ReceiptState(i)
		return nil
	}
	switch str {
	case "CheckedOut":
		*s = ReceiptStateCheckedOut
	default:
		*s = ReceiptStateOpen
	}
	return nil
}
