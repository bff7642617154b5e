// Package entity contains the core business objects of the project.
package entity

// IdentityKind distinguishes anonymous device-scoped principals from
// authenticated ones.
type IdentityKind string

const (
	// IdentityAnonymous is a device-scoped identity created at first launch.
	IdentityAnonymous IdentityKind = "anonymous"
	// IdentityAuthenticated is a signed-in principal issued by the identity provider.
	IdentityAuthenticated IdentityKind = "authenticated"
)

// Identity is the principal a scan is attributed to. It selects which history
// and entitlement stores are authoritative. Anonymous history is never migrated
// to an authenticated identity after sign-in.
type Identity struct {
	Kind     IdentityKind `json:"kind"`                // Anonymous or authenticated.
	DeviceID string       `json:"device_id,omitempty"` // Stable device handle (anonymous only).
	UID      string       `json:"uid,omitempty"`       // Principal ID from the identity provider (authenticated only).
}

// NewAnonymousIdentity creates a device-scoped identity.
func NewAnonymousIdentity(deviceID string) Identity {
	return Identity{Kind: IdentityAnonymous, DeviceID: deviceID}
}

// NewAuthenticatedIdentity creates an identity for a signed-in principal.
func NewAuthenticatedIdentity(uid string) Identity {
	return Identity{Kind: IdentityAuthenticated, UID: uid}
}

// IsAuthenticated reports whether the identity belongs to a signed-in principal.
func (i Identity) IsAuthenticated() bool {
	return i.Kind == IdentityAuthenticated
}

// Key returns a stable storage key scoped to the identity.
func (i Identity) Key() string {
	if i.IsAuthenticated() {
		return "user-" + i.UID
	}

	return "device-" + i.DeviceID
}
