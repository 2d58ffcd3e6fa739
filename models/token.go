// File: digitalmindset/models/token.go
package models

import "strings"

// MasterTokenPrefix marks a token of the elevated master class.
const MasterTokenPrefix = "MASTER-"

// AccessToken is one entry of the administrator-managed token list.
type AccessToken struct {
	Token        string    `json:"token" yaml:"token"`
	Active       bool      `json:"active" yaml:"active"`
	UsedByDevice string    `json:"usedByDevice" yaml:"usedByDevice"`
	LastUsed     Timestamp `json:"lastUsed" yaml:"-"`
}

// IsMaster reports whether the token value carries the master prefix.
func IsMaster(token string) bool {
	return strings.HasPrefix(token, MasterTokenPrefix)
}

// VerifyResult is returned to a client that presented a valid token.
type VerifyResult struct {
	Valid    bool   `json:"valid"`
	IsMaster bool   `json:"isMaster"`
	Message  string `json:"message"`
}
