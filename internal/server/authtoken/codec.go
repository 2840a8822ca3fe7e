// Package authtoken issues and inspects the mock bearer tokens handed out on
// login.
//
// Tokens have the three-segment JWT shape with an HS256 header, but the
// signature segment is a fixed placeholder and is never verified. Anyone can
// forge a token; this codec only exists so a frontend can exercise its
// session handling.
package authtoken

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/timex"
	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTTL = time.Hour

	placeholderSignature = "fake-signature"
)

type Codec struct {
	ttl   time.Duration
	clock timex.Clock
}

type Option func(*Codec)

func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithClock(clock timex.Clock) Option {
	return func(c *Codec) { c.clock = clock }
}

func NewCodec(opts ...Option) *Codec {
	c := &Codec{ttl: DefaultTTL, clock: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue builds claims for user valid for the codec TTL and encodes them.
func (c *Codec) Issue(user models.User) (string, Claims, error) {
	now := c.clock()
	claims := Claims{
		Sub:       user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(c.ttl).Unix(),
	}
	token, err := c.Encode(claims)
	return token, claims, err
}

// Encode produces header.payload.signature with base64url segments and no
// padding.
func (c *Codec) Encode(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	unsigned, err := token.SigningString()
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}
	return unsigned + "." + token.EncodeSegment([]byte(placeholderSignature)), nil
}

// Decode parses the payload segment without checking the signature.
func (c *Codec) Decode(token string) (Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", common.ErrTokenMalformed, err)
	}
	return *claims, nil
}

// IsExpired reports whether token's exp lies in the past. A token is still
// valid during the second named by exp. Tokens that cannot be decoded count
// as expired.
func (c *Codec) IsExpired(token string) bool {
	claims, err := c.Decode(token)
	if err != nil {
		return true
	}
	return c.expired(claims)
}

// Session decodes token and rejects it when expired.
func (c *Codec) Session(token string) (Claims, error) {
	claims, err := c.Decode(token)
	if err != nil {
		return Claims{}, err
	}
	if c.expired(claims) {
		return Claims{}, common.ErrTokenExpired
	}
	return claims, nil
}

func (c *Codec) expired(claims Claims) bool {
	return c.clock().Unix() > claims.ExpiresAt
}
