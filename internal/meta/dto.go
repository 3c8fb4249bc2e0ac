package meta

// MaskDefaultsResponse describes the options applied when a mask request
// names no preset and sends no overrides.
type MaskDefaultsResponse struct {
	MaskChar        string `json:"maskChar"`
	UnmaskedStart   int    `json:"unmaskedStart"`
	UnmaskedEnd     int    `json:"unmaskedEnd"`
	PreserveSpacing bool   `json:"preserveSpacing"`
	ShowLength      bool   `json:"showLength"`
	ValidateInput   bool   `json:"validateInput"`
	MaxBatch        int    `json:"maxBatch"`
	MinCardDigits   int    `json:"minCardDigits"`
	MaxCardDigits   int    `json:"maxCardDigits"`
}
