package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/fernet/fernet-go"

	"github.com/antigravity/Trading-Journal-Backend/internal/apperrors"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/repository"
)

// SettingsService handles portfolio-level settings: the initial cash
// balance anchoring the equity curve, and the AlphaVantage API key.
//
// When a fernet key is configured, the API key is encrypted at rest and
// decrypted on read; without one it is stored in plaintext.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	fernetKeys   []*fernet.Key
	envAPIKey    string
}

// NewSettingsService creates a new SettingsService. fernetKey is the
// base64 encryption key ("" disables encryption); envAPIKey is the
// bootstrap AlphaVantage key from the environment, used until a key is
// stored through the API.
func NewSettingsService(settingsRepo *repository.SettingsRepository, fernetKey, envAPIKey string) (*SettingsService, error) {
	s := &SettingsService{
		settingsRepo: settingsRepo,
		envAPIKey:    envAPIKey,
	}

	if fernetKey != "" {
		keys, err := fernet.DecodeKeys(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("invalid fernet key: %w", err)
		}
		s.fernetKeys = keys
	}

	return s, nil
}

// GetInitialBalance returns the configured initial cash balance,
// defaulting to 0 when never set.
func (s *SettingsService) GetInitialBalance() (float64, error) {
	return s.settingsRepo.GetFloatSetting(model.SettingInitialBalance, 0)
}

// SetInitialBalance stores the initial cash balance.
func (s *SettingsService) SetInitialBalance(balance float64) error {
	if balance < 0 {
		return apperrors.ErrNegativeAmount
	}
	return s.settingsRepo.SetFloatSetting(model.SettingInitialBalance, balance)
}

// SetAPIKey stores the AlphaVantage API key, encrypting it when a
// fernet key is configured.
func (s *SettingsService) SetAPIKey(apiKey string) error {
	stored := apiKey
	if len(s.fernetKeys) > 0 {
		token, err := fernet.EncryptAndSign([]byte(apiKey), s.fernetKeys[0])
		if err != nil {
			return fmt.Errorf("failed to encrypt API key: %w", err)
		}
		stored = string(token)
	}
	return s.settingsRepo.SetSetting(model.SettingAPIKey, stored)
}

// APIKey returns the AlphaVantage key to use for quote requests: the
// stored key when present, otherwise the environment bootstrap key.
// Lookup or decryption failures fall back to the environment key so a
// corrupt setting never takes the quote chain down.
func (s *SettingsService) APIKey() string {
	stored, err := s.settingsRepo.GetSetting(model.SettingAPIKey)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			log.Printf("Failed to read stored API key: %v", err)
		}
		return s.envAPIKey
	}

	if len(s.fernetKeys) > 0 {
		plain := fernet.VerifyAndDecrypt([]byte(stored), 0, s.fernetKeys)
		if plain == nil {
			log.Printf("Stored API key failed decryption, falling back to environment key")
			return s.envAPIKey
		}
		return string(plain)
	}

	return stored
}

// HasStoredAPIKey reports whether an API key has been stored through
// the settings API, without revealing it.
func (s *SettingsService) HasStoredAPIKey() (bool, error) {
	_, err := s.settingsRepo.GetSetting(model.SettingAPIKey)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
