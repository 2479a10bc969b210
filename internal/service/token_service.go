package service

import (
	"time"

	"study_helper/internal/config"
	"study_helper/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService は署名付き・期限付きのアイデンティティトークンを発行・検証します。
// サーバー側セッションは持たない (ステートレス発行)。
// Validate はトークンに埋め込まれた subject を返すだけで、ユーザーの
// 現在の有効性 (is_active) は確認しない。それはAccess Control Gate側の責務。
type TokenService interface {
	Issue(user *model.User) (string, error)
	Validate(tokenString string) (uuid.UUID, error)
}

type tokenService struct {
	issuer string
	cfg    config.JWTConfig
	now    func() time.Time // テスト用に注入可能なクロック
}

func NewTokenService(issuer string, cfg config.JWTConfig, now func() time.Time) TokenService {
	if now == nil {
		now = time.Now
	}
	return &tokenService{
		issuer: issuer,
		cfg:    cfg,
		now:    now,
	}
}

func (s *tokenService) Issue(user *model.User) (string, error) {
	issuedAt := s.now()
	claims := &jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   user.UserID.String(),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.cfg.AccessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}
	return signedToken, nil
}

func (s *tokenService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.SecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
	}

	// 有効期限は now >= exp を失格とする (ちょうど期限時刻のトークンも無効)
	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil || !s.now().Before(expiresAt.Time) {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンの有効期限が切れています。", "", model.ErrUnauthorized)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrUnauthorized)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthorized)
	}

	return userID, nil
}
