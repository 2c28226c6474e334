package gateway

import (
	"context"

	"edubrief/domain"
	"edubrief/driver/verify"
)

// VerifyDriver is the driver-level verification interface this gateway
// adapts.
type VerifyDriver interface {
	Verify(ctx context.Context, token, remoteIP string) (*verify.Result, error)
}

// VerifyGateway maps verification outcomes into the domain error
// taxonomy: rejected tokens become VerificationError, transport failures
// become UpstreamError.
type VerifyGateway struct {
	driver VerifyDriver
}

func NewVerifyGateway(driver VerifyDriver) *VerifyGateway {
	return &VerifyGateway{driver: driver}
}

func (g *VerifyGateway) Verify(ctx context.Context, token, remoteIP string) error {
	result, err := g.driver.Verify(ctx, token, remoteIP)
	if err != nil {
		return &domain.UpstreamError{Service: "turnstile", Op: "Verify", Err: err.Error()}
	}
	if !result.Success {
		return &domain.VerificationError{Codes: result.ErrorCodes}
	}
	return nil
}
