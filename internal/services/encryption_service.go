package services

import "wellnest/internal/crypto"

// EncryptionService encrypts journal text at rest. The sentiment score is
// computed before encryption, so analytics never need the plaintext back.
type EncryptionService struct {
	cipher *crypto.Cipher
}

// NewEncryptionService creates the service; key must be 32 bytes.
func NewEncryptionService(key []byte) (*EncryptionService, error) {
	c, err := crypto.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &EncryptionService{cipher: c}, nil
}

// EncryptEntry encrypts journal text before it is stored.
func (s *EncryptionService) EncryptEntry(plaintext string) (string, error) {
	return s.cipher.Encrypt(plaintext)
}

// DecryptEntry decrypts journal text after it is read back.
func (s *EncryptionService) DecryptEntry(ciphertext string) (string, error) {
	return s.cipher.Decrypt(ciphertext)
}
