package service

import (
	"context"

	"brewlog/internal/domain/entity"
)

// VisionClient analyzes a coffee bag photo with one vision backend.
// Implementations are immutable after construction and safe for concurrent use.
type VisionClient interface {
	// ValidateKeyFormat performs a local shape check on a candidate key. It never calls the network.
	ValidateKeyFormat(candidate string) bool

	// TestConnection makes one minimal live call. Any failure yields false.
	TestConnection(ctx context.Context, credential string) bool

	// AnalyzeImage sends the photo to the backend and returns the normalized result.
	// Failures are ErrInvalidCredential, ErrRateLimited, ErrMalformedResponse or ErrUpstreamFailure.
	AnalyzeImage(ctx context.Context, imageDataURL, credential string) (*entity.AnalysisResult, error)
}

// ProviderRegistry maps provider identities to clients and descriptors.
type ProviderRegistry interface {
	// Resolve returns the client for a provider, the same instance on every call.
	Resolve(id entity.ProviderID) (VisionClient, error)

	// DescribeAll lists every provider, house-blend first.
	DescribeAll() []entity.ProviderDescriptor

	// RequiresUserCredential reports whether analyses through id need a user-supplied key.
	RequiresUserCredential(id entity.ProviderID) (bool, error)
}
