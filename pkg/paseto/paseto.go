package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-HR/models"
)

// Maker membungkus PASETO v2 local dengan secret dan masa berlaku dari config.
type Maker struct {
	paseto       *paseto.V2
	symmetricKey []byte
	duration     time.Duration
}

func NewPasetoMaker(secretBase64 string, duration time.Duration) (*Maker, error) {
	decodedKey, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("secret bukan string Base64 URL-encoded yang valid: %w", err)
	}

	if len(decodedKey) != 32 {
		return nil, fmt.Errorf("secret harus tepat 32 byte setelah decode, dapat %d byte", len(decodedKey))
	}

	return &Maker{
		paseto:       paseto.NewV2(),
		symmetricKey: decodedKey,
		duration:     duration,
	}, nil
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: now.Add(m.duration),
		NotBefore:  now,
	}

	// Custom claims disimpan sebagai string
	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return m.paseto.Encrypt(m.symmetricKey, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userIDStr := token.Get("user_id")
	objectID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id format: %v", err)
	}

	return &models.Claims{
		UserID: objectID,
		Email:  token.Get("email"),
		Role:   token.Get("role"),
	}, nil
}
