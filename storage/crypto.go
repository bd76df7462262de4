// C:\Users\seoro\OneDrive\바탕 화면\SEROE\storage\crypto.go
package storage

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

// 집계 결과는 외부 저장소에 올리기 전에 반드시 암호화합니다.
// 키는 base64 로 인코딩된 32바이트입니다.

func decodeKey(encoded string) (*[32]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("암호화 키 디코딩 실패: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("암호화 키는 32바이트여야 합니다 (현재 %d바이트)", len(raw))
	}
	var key [32]byte
	copy(key[:], raw)
	return &key, nil
}

// EncryptResults는 집계 결과를 JSON 직렬화 후 암호화해 base64 문자열로
// 반환합니다. 난수 nonce 24바이트를 암호문 앞에 붙입니다.
func EncryptResults(results interface{}, encodedKey string) (string, error) {
	key, err := decodeKey(encodedKey)
	if err != nil {
		return "", err
	}

	plaintext, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("집계 결과 직렬화 실패: %w", err)
	}

	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("nonce 생성 실패: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptResults는 암호화된 base64 문자열을 복호화해 out 에 역직렬화합니다.
func DecryptResults(encrypted string, encodedKey string, out interface{}) error {
	key, err := decodeKey(encodedKey)
	if err != nil {
		return err
	}

	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return fmt.Errorf("암호문 디코딩 실패: %w", err)
	}
	if len(sealed) < 24 {
		return fmt.Errorf("암호문이 너무 짧습니다")
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])

	plaintext, ok := secretbox.Open(nil, sealed[24:], &nonce, key)
	if !ok {
		return fmt.Errorf("복호화에 실패했습니다 (키가 다르거나 데이터가 손상됨)")
	}
	return json.Unmarshal(plaintext, out)
}
