package handler

import (
	"time"

	"mailcheck/pkg/convert"
	dErrors "mailcheck/pkg/domain-errors"
)

// CheckRequest is the body of POST /v1/check. Address is a pointer so a
// missing field can be told apart from a present-but-blank one: the former
// is a malformed request, the latter a checkable (invalid) input.
type CheckRequest struct {
	Address *string `json:"address"`
}

func (r CheckRequest) Validate() error {
	if r.Address == nil {
		return dErrors.New(dErrors.CodeBadRequest, "address is required")
	}
	return nil
}

// NormalizeRequest is the body of POST /v1/normalize.
type NormalizeRequest struct {
	Address *string `json:"address"`
}

func (r NormalizeRequest) Validate() error {
	if r.Address == nil {
		return dErrors.New(dErrors.CodeBadRequest, "address is required")
	}
	return nil
}

// BlockDomainRequest is the body of POST /v1/domains. TTL uses Go duration
// syntax ("24h", "30m"); empty means the entry never expires.
type BlockDomainRequest struct {
	Domain string `json:"domain"`
	Reason string `json:"reason,omitempty"`
	TTL    string `json:"ttl,omitempty"`
}

// ParsedTTL converts the TTL field, treating empty as absent.
func (r BlockDomainRequest) ParsedTTL() (*time.Duration, error) {
	if r.TTL == "" {
		return nil, nil
	}
	ttl, err := convert.Duration().FromString(r.TTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "ttl must be a duration like \"24h\"")
	}
	if ttl <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "ttl must be positive")
	}
	return &ttl, nil
}
