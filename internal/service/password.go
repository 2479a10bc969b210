package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"study_helper/internal/model"

	"golang.org/x/crypto/pbkdf2"
)

// パスワードハッシュのパラメータ。
// ダイジェスト形式: pbkdf2-sha256$<iterations>$<salt-b64>$<key-b64>
const (
	pbkdf2Scheme     = "pbkdf2-sha256"
	pbkdf2Iterations = 260000
	pbkdf2SaltLen    = 16
	pbkdf2KeyLen     = 32
)

// HashPassword は平文パスワードをソルト付きPBKDF2-SHA256でハッシュ化します。
// ソルトは呼び出しごとにランダム生成されるため、同じ入力でも出力は毎回異なる。
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", model.NewAppError("INVALID_PASSWORD", "パスワードが空です。", "password", model.ErrInvalidInput)
	}

	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
	}

	key := pbkdf2.Key([]byte(plain), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)

	digest := fmt.Sprintf("%s$%d$%s$%s",
		pbkdf2Scheme,
		pbkdf2Iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return digest, nil
}

// VerifyPassword は平文パスワードをダイジェストと照合します。
// 比較は一定時間で行い、ダイジェストが不正な形式でもpanicせずfalseを返す。
func VerifyPassword(plain, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 4 || parts[0] != pbkdf2Scheme {
		return false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(expected) == 0 {
		return false
	}

	key := pbkdf2.Key([]byte(plain), salt, iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
