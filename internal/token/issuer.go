package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// IssuerName is the iss claim stamped on every vendor token.
	IssuerName = "JulineMart"

	// TTL bounds token validity. Consumers reject anything older.
	TTL = 12 * time.Hour
)

var (
	ErrNoSecret     = errors.New("signing secret is required")
	ErrInvalidToken = errors.New("invalid token")
)

// VendorClaims is the payload of a vendor claim token.
type VendorClaims struct {
	VendorCode string `json:"vendor_code"`
	jwt.RegisteredClaims
}

// Issuer mints signed vendor claim tokens. It is deterministic given the
// secret and the clock; it performs no I/O.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Issuer{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

// Issue returns a signed token asserting the vendor code, and its expiry.
func (i *Issuer) Issue(vendorCode string) (string, time.Time, error) {
	issuedAt := i.now().UTC()
	expiresAt := issuedAt.Add(TTL)

	claims := VendorClaims{
		VendorCode: vendorCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    IssuerName,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies signature, expiry and issuer and returns the claims.
func (i *Issuer) Parse(raw string) (*VendorClaims, error) {
	claims := &VendorClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithIssuer(IssuerName), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
