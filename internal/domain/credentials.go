package domain

import "fmt"

// CredentialKey names one field of the persisted credentials document.
type CredentialKey string

const (
	CredentialAccessToken    CredentialKey = "accessToken"
	CredentialDefaultTeamID  CredentialKey = "defaultTeamId"
	CredentialDefaultSpaceID CredentialKey = "defaultSpaceId"
)

func CredentialKeys() []CredentialKey {
	return []CredentialKey{CredentialAccessToken, CredentialDefaultTeamID, CredentialDefaultSpaceID}
}

func ParseCredentialKey(raw string) (CredentialKey, error) {
	key := CredentialKey(raw)
	switch key {
	case CredentialAccessToken, CredentialDefaultTeamID, CredentialDefaultSpaceID:
		return key, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownCredentialKey, raw)
	}
}

// Credentials is the on-disk document. An empty string means the key is absent.
type Credentials struct {
	AccessToken    string `json:"accessToken,omitempty"`
	DefaultTeamID  string `json:"defaultTeamId,omitempty"`
	DefaultSpaceID string `json:"defaultSpaceId,omitempty"`
}

func (c Credentials) Value(key CredentialKey) (string, error) {
	switch key {
	case CredentialAccessToken:
		return c.AccessToken, nil
	case CredentialDefaultTeamID:
		return c.DefaultTeamID, nil
	case CredentialDefaultSpaceID:
		return c.DefaultSpaceID, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownCredentialKey, key)
	}
}

// CredentialsPatch is a partial document for shallow merges.
// A nil field leaves the stored key untouched; a pointer to "" removes it.
type CredentialsPatch struct {
	AccessToken    *string
	DefaultTeamID  *string
	DefaultSpaceID *string
}

func PatchFor(key CredentialKey, value string) (CredentialsPatch, error) {
	switch key {
	case CredentialAccessToken:
		return CredentialsPatch{AccessToken: &value}, nil
	case CredentialDefaultTeamID:
		return CredentialsPatch{DefaultTeamID: &value}, nil
	case CredentialDefaultSpaceID:
		return CredentialsPatch{DefaultSpaceID: &value}, nil
	default:
		return CredentialsPatch{}, fmt.Errorf("%w %q", ErrUnknownCredentialKey, key)
	}
}

// Fields returns only the keys present in the patch.
func (p CredentialsPatch) Fields() map[CredentialKey]*string {
	fields := make(map[CredentialKey]*string, 3)
	if p.AccessToken != nil {
		fields[CredentialAccessToken] = p.AccessToken
	}
	if p.DefaultTeamID != nil {
		fields[CredentialDefaultTeamID] = p.DefaultTeamID
	}
	if p.DefaultSpaceID != nil {
		fields[CredentialDefaultSpaceID] = p.DefaultSpaceID
	}
	return fields
}

// MaskToken keeps a short prefix so users can tell tokens apart without
// revealing them.
func MaskToken(token string) string {
	const visible = 7
	if token == "" {
		return ""
	}
	runes := []rune(token)
	if len(runes) <= visible+4 {
		return "****"
	}
	return string(runes[:visible]) + "…"
}
