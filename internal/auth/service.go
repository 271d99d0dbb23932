package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spruceid/siwe-go"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/config"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims identify a wallet. Whether it may administer the contract is
// decided on-chain, not here.
type Claims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

type Service struct {
	secret    []byte
	ttl       time.Duration
	nonces    *nonceStore
	domain    string
	uri       string
	statement string
	chainID   uint64
	now       func() time.Time
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		secret:    []byte(cfg.JWTSecret),
		ttl:       cfg.JWTTTL,
		nonces:    newNonceStore(cfg.NonceTTL),
		domain:    strings.TrimSpace(cfg.SIWEDomain),
		uri:       strings.TrimSpace(cfg.SIWEURI),
		statement: strings.TrimSpace(cfg.SIWEStatement),
		chainID:   cfg.SIWEChainID,
		now:       time.Now,
	}
}

func (s *Service) IssueNonce() (string, error) {
	return s.nonces.Issue()
}

// LoginWithSIWE verifies a signed Sign-In-With-Ethereum message and returns
// an HS256 token for the signing address. Nonces are single use.
func (s *Service) LoginWithSIWE(ctx context.Context, message, signature string) (string, *Claims, error) {
	if strings.TrimSpace(message) == "" || strings.TrimSpace(signature) == "" {
		return "", nil, ErrInvalidCredentials
	}
	parsed, err := siwe.ParseMessage(message)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	nonce := parsed.GetNonce()
	if !s.nonces.Has(nonce) {
		return "", nil, ErrInvalidCredentials
	}
	if err := s.checkFields(parsed); err != nil {
		return "", nil, err
	}
	var domain *string
	if s.domain != "" {
		d := s.domain
		domain = &d
	}
	if _, err := parsed.Verify(signature, domain, &nonce, nil); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	s.nonces.Consume(nonce)

	addr := store.NormalizeAddress(parsed.GetAddress().Hex())
	token, claims, err := s.Issue(addr)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

func (s *Service) checkFields(msg *siwe.Message) error {
	if s.uri != "" {
		uri := msg.GetURI()
		if uri.String() != s.uri {
			return ErrInvalidCredentials
		}
	}
	if s.statement != "" {
		if stmt := msg.GetStatement(); stmt == nil || strings.TrimSpace(*stmt) != s.statement {
			return ErrInvalidCredentials
		}
	}
	if s.chainID > 0 && msg.GetChainID() != int(s.chainID) {
		return ErrInvalidCredentials
	}
	return nil
}

// Issue signs a token for addr without a SIWE round trip; ftctl and tests use it.
func (s *Service) Issue(addr string) (string, *Claims, error) {
	addr = store.NormalizeAddress(store.SanitizeAddress(addr))
	if addr == "" {
		return "", nil, ErrInvalidCredentials
	}
	now := s.now()
	claims := &Claims{
		Address: addr,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   addr,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (s *Service) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Address != "" {
		return claims, nil
	}
	return nil, ErrInvalidCredentials
}
