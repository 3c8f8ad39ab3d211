package model

import "time"

// Setting keys stored in the portfolio_setting table.
const (
	SettingInitialBalance = "initial_balance"
	SettingAPIKey         = "alphavantage_api_key"
)

// Setting represents a single portfolio-level configuration value.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
