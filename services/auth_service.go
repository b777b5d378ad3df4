package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Krypton102019/dk-deli/entity"
	"github.com/Krypton102019/dk-deli/store"
	"github.com/Krypton102019/dk-deli/utils"
)

var (
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrNameRequired = errors.New("name is required")
)

// AuthService handles the phone + name login. There is no password and no
// OTP round trip; a valid login sets the user and issues a JWT.
type AuthService struct {
	Store     *store.Store
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(st *store.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Store: st, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Login(phone, name string) (string, *entity.User, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)

	if len(phone) < 9 {
		return "", nil, ErrInvalidPhone
	}
	if name == "" {
		return "", nil, ErrNameRequired
	}

	user := &entity.User{Phone: phone, Name: name}
	// same phone logging back in keeps the saved addresses
	if cur := s.Store.User(); cur != nil && cur.Phone == phone {
		user.Addresses = cur.Addresses
	}
	s.Store.SetUser(user)

	token, err := utils.GenerateToken(phone, name, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// Logout clears the user; cart and order history stay.
func (s *AuthService) Logout() {
	s.Store.SetUser(nil)
}
