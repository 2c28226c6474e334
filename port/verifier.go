package port

import "context"

// BotVerifier validates a client-supplied bot-challenge token server-side.
// A rejected token surfaces as *domain.VerificationError; an unreachable
// verification service surfaces as *domain.UpstreamError.
type BotVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}
