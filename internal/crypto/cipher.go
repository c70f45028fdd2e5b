package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

const (
	// NonceSize - размер nonce для AES-GCM (12 bytes стандартный размер)
	NonceSize = 12
)

// Convergent - детерминированный AES-256-GCM шифратор.
// Nonce выводится как HMAC-SHA256(key, plaintext)[:12], поэтому одинаковый
// plaintext под одним ключом всегда дает одинаковый ciphertext. Это
// сознательный размен: контент-адресация и дедупликация в удаленном
// хранилище продолжают работать поверх шифртекста, ценой утечки факта
// "эти две записи одинаковы". Для синхронизации собственных заметок
// пользователя такая утечка приемлема.
type Convergent struct {
	aead cipher.AEAD
	key  []byte
}

// NewConvergent создает шифратор поверх 32-байтного ключа (см. DeriveKey)
func NewConvergent(key []byte) (*Convergent, error) {
	if len(key) != Argon2KeyLen {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", Argon2KeyLen, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Convergent{
		aead: aead,
		key:  append([]byte(nil), key...),
	}, nil
}

// nonceFor детерминированно выводит nonce из plaintext.
// HMAC ключом защищает от подбора контента по известному nonce.
func (c *Convergent) nonceFor(plaintext []byte) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write(plaintext)
	return mac.Sum(nil)[:NonceSize]
}

// Seal шифрует данные.
// Формат результата: nonce (12 bytes) + ciphertext + auth_tag (16 bytes)
func (c *Convergent) Seal(plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("plaintext cannot be empty")
	}

	nonce := c.nonceFor(plaintext)

	// GCM автоматически добавляет authentication tag в конец
	ciphertext := c.aead.Seal(nil, nonce, plaintext, nil)

	result := make([]byte, 0, len(nonce)+len(ciphertext))
	result = append(result, nonce...)
	result = append(result, ciphertext...)

	return result, nil
}

// Open дешифрует данные, зашифрованные с помощью Seal.
// Ожидает формат: nonce (12 bytes) + ciphertext + auth_tag (16 bytes)
func (c *Convergent) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < NonceSize {
		return nil, fmt.Errorf("sealed data too short")
	}

	nonce := sealed[:NonceSize]
	ciphertext := sealed[NonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: authentication failed or corrupted data: %w", err)
	}

	// Nonce обязан соответствовать plaintext
	if !hmac.Equal(nonce, c.nonceFor(plaintext)) {
		return nil, fmt.Errorf("failed to decrypt: nonce does not match content")
	}

	return plaintext, nil
}
