// Package entity contains the core business objects of the project.
package entity

import (
	domainerrors "brewlog/internal/domain/errors"
)

// ProviderID identifies a vision provider a caller may ask for.
type ProviderID string

const (
	// ProviderHouseBlend is the platform-funded alias that routes to a configured backend.
	ProviderHouseBlend ProviderID = "house-blend"
	// ProviderOpenAI is the OpenAI vision backend.
	ProviderOpenAI ProviderID = "openai"
	// ProviderAnthropic is the Anthropic vision backend.
	ProviderAnthropic ProviderID = "anthropic"
	// ProviderGemini is the Google Gemini vision backend.
	ProviderGemini ProviderID = "gemini"
)

// BackendProviders lists the real backends in stable alphabetical order.
var BackendProviders = []ProviderID{ProviderAnthropic, ProviderGemini, ProviderOpenAI}

// String returns the string representation of the ProviderID.
func (p ProviderID) String() string {
	return string(p)
}

// IsValid checks if the ProviderID is part of the enumeration.
func (p ProviderID) IsValid() bool {
	switch p {
	case ProviderHouseBlend, ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		return true
	default:
		return false
	}
}

// IsBackend reports whether p is a real backend rather than the routing alias.
func (p ProviderID) IsBackend() bool {
	return p.IsValid() && p != ProviderHouseBlend
}

// ParseProviderID converts raw input to a ProviderID, failing with ErrUnknownProvider.
func ParseProviderID(raw string) (ProviderID, error) {
	id := ProviderID(raw)
	if !id.IsValid() {
		return "", domainerrors.ErrUnknownProvider.WrapMessage("provider " + raw)
	}

	return id, nil
}

// ProviderDescriptor describes a provider for presentation.
type ProviderDescriptor struct {
	ID                     ProviderID `json:"id"`
	DisplayName            string     `json:"display_name"`
	Model                  string     `json:"model"`
	RequiresUserCredential bool       `json:"requires_user_credential"`
}
