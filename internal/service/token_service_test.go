package service

import (
	"testing"
	"time"

	"study_helper/internal/config"
	"study_helper/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() config.JWTConfig {
	return config.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenTTL: time.Hour,
	}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	cfg := newTestTokenConfig()
	user := &model.User{UserID: uuid.New(), Username: "alice"}

	t.Run("正常系: 発行したトークンが検証できる", func(t *testing.T) {
		ts := NewTokenService("study_helper", cfg, nil)

		token, err := ts.Issue(user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := ts.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, user.UserID, userID)
	})

	t.Run("正常系: 同一ユーザーに複数の有効なトークンを発行できる", func(t *testing.T) {
		// ステートレス発行のため、発行済みトークンは他の発行で失効しない
		base := time.Now()
		clock := func() time.Time { return base }
		ts := NewTokenService("study_helper", cfg, clock)

		token1, err := ts.Issue(user)
		require.NoError(t, err)

		base = base.Add(time.Second)
		token2, err := ts.Issue(user)
		require.NoError(t, err)

		for _, token := range []string{token1, token2} {
			userID, err := ts.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, user.UserID, userID)
		}
	})

	t.Run("異常系: 有効期限切れのトークン", func(t *testing.T) {
		now := time.Now()
		clock := func() time.Time { return now }
		ts := NewTokenService("study_helper", cfg, clock)

		token, err := ts.Issue(user)
		require.NoError(t, err)

		// TTLを超えて時計を進める
		now = now.Add(cfg.AccessTokenTTL + time.Minute)
		_, err = ts.Validate(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("異常系: ちょうど有効期限時刻のトークンも無効", func(t *testing.T) {
		now := time.Unix(1700000000, 0)
		clock := func() time.Time { return now }
		ts := NewTokenService("study_helper", cfg, clock)

		token, err := ts.Issue(user)
		require.NoError(t, err)

		now = now.Add(cfg.AccessTokenTTL)
		_, err = ts.Validate(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("異常系: 別のシークレットで署名されたトークン", func(t *testing.T) {
		ts := NewTokenService("study_helper", cfg, nil)
		otherCfg := newTestTokenConfig()
		otherCfg.SecretKey = "another-secret-key"
		otherTs := NewTokenService("study_helper", otherCfg, nil)

		token, err := otherTs.Issue(user)
		require.NoError(t, err)

		_, err = ts.Validate(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("異常系: 改ざんされたトークン", func(t *testing.T) {
		ts := NewTokenService("study_helper", cfg, nil)

		token, err := ts.Issue(user)
		require.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		_, err = ts.Validate(tampered)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("異常系: トークンですらない文字列", func(t *testing.T) {
		ts := NewTokenService("study_helper", cfg, nil)

		_, err := ts.Validate("not-a-token")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}
