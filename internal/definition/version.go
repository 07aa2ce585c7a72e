package definition

import (
	"crypto/sha256"
	"fmt"
)

// Fingerprint identifies the content of a definition.
// Priority: user-provided Version, else SHA256(YAML encoding)[:8] in hex.
func (d *Definition) Fingerprint() string {
	if d.Version != "" {
		return d.Version
	}

	data, err := d.Marshal()
	if err != nil {
		// Fallback (should not happen for plain string fields)
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
