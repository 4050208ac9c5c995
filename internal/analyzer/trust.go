package analyzer

import "github.com/berckan/lookalike/internal/model"

// TrustBucket is a pure function of (registered, ageDays, threshold):
// identical inputs always produce identical (trustLevel, riskScore)
// outputs. ageDays is nil when the domain is registered but its age
// could not be determined (WHOIS failed or had no creation_date).
func TrustBucket(registered bool, ageDays *int, threshold int) (model.TrustLevel, int) {
	if !registered {
		return model.TrustUnregistered, 0
	}
	if ageDays == nil {
		return model.TrustUnknown, 50
	}

	age := *ageDays
	switch {
	case age < 30:
		return model.TrustCritical, 95
	case age < 90:
		return model.TrustHighRisk, 85
	case age < 180:
		return model.TrustSuspicious, 70
	case age < 365:
		return model.TrustLowTrust, 55
	case age < threshold:
		return model.TrustModerate, 35
	default:
		return model.TrustEstablished, 15
	}
}
