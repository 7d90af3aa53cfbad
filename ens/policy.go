package ens

// ResolutionMode is the caller-chosen strictness of a resolution call.
type ResolutionMode int

const (
	// OnChainOnly answers from on-chain state only; an offchain redirect
	// signal from a resolver is a terminal failure.
	OnChainOnly ResolutionMode = iota
	// AllowOffchainLookup follows EIP-3668 offchain redirects, up to the
	// engine's configured maximum.
	AllowOffchainLookup
)

func (m ResolutionMode) String() string {
	switch m {
	case OnChainOnly:
		return "onchain-only"
	case AllowOffchainLookup:
		return "allow-offchain-lookup"
	}
	return "unknown"
}

// CallPolicy is the execution policy a resolver handle is bound to. It is
// a closed two-variant value: either offchain lookups are forbidden and
// hitting one fails the call, or they are allowed up to maxRedirects
// hops. Only derivePolicy constructs it; adding a mode means adding a
// variant here too.
type CallPolicy struct {
	offchainAllowed      bool
	maxRedirects         int
	failOnExecutionError bool
}

func derivePolicy(mode ResolutionMode, maxRedirects int) CallPolicy {
	if mode == AllowOffchainLookup {
		return CallPolicy{
			offchainAllowed: true,
			maxRedirects:    maxRedirects,
		}
	}
	return CallPolicy{
		failOnExecutionError: true,
	}
}
