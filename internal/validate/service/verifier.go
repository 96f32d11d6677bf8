package service

import (
	"context"

	"github.com/mcnijman/go-emailaddress"
)

// DNSVerifier verifies address domains against live DNS: the domain must
// carry an ICANN-managed suffix and resolve to at least one MX or A host.
// Verification does network I/O; keep it behind the VerifyHosts config flag.
type DNSVerifier struct{}

// NewDNSVerifier constructs the DNS-backed host verifier.
func NewDNSVerifier() *DNSVerifier {
	return &DNSVerifier{}
}

func (*DNSVerifier) Verify(ctx context.Context, addrSpec string) error {
	parsed, err := emailaddress.Parse(addrSpec)
	if err != nil {
		return err
	}
	if err := parsed.ValidateIcanSuffix(); err != nil {
		return err
	}
	return parsed.ValidateHost()
}
