package credentials

import (
	"golang.org/x/oauth2"
)

// TokenResponse is the body returned by /auth/login and /auth/refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
}

// Token converts the response into an oauth2 token, recovering the expiry
// from the access token's exp claim when it has one.
func (tr TokenResponse) Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
	}
	if exp, ok := AccessTokenExpiry(tr.AccessToken); ok {
		tok.Expiry = exp
	}
	return tok
}
