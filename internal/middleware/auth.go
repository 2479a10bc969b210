package middleware

import (
	"context"
	"net/http"
	"strings"

	"study_helper/internal/model"
	"study_helper/internal/webutil"
)

// UserResolver はトークンを検証し、現在有効なユーザーに解決します。
// 実装はservice層 (AuthService) が担う。
type UserResolver interface {
	ResolveToken(ctx context.Context, tokenString string) (*model.User, error)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// ユーザーをコンテキストに格納するミドルウェア。
// トークンの署名・有効期限の検証に加えて、ユーザーの現在の状態を
// DBで再確認するため、無効化 (BAN) は次のリクエストから即座に効く。
func JWTAuthMiddleware(resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			user, err := resolver.ResolveToken(r.Context(), headerParts[1])
			if err != nil {
				logger.Warn("JWT auth failed: token resolution failed", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// AdminOnlyMiddleware は管理者権限チェックを適用するミドルウェア。
// 判定そのものはservice層の述語 (AuthService.RequireAdmin) に委ねる。
func AdminOnlyMiddleware(requireAdmin func(user *model.User) error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			user, err := GetUserFromContext(r.Context())
			if err != nil {
				webutil.HandleError(w, logger, err)
				return
			}
			if err := requireAdmin(user); err != nil {
				logger.Warn("Admin check failed", "user_id", user.UserID.String())
				webutil.HandleError(w, logger, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ContextWithUser は認証済みユーザーをコンテキストに格納します。
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, model.UserKey, user)
}

// GetUserFromContext はコンテキストから認証済みユーザーを取得します。
func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(model.UserKey).(*model.User)
	if !ok || user == nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからユーザー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return user, nil
}
