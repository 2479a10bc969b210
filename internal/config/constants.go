// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "StudyHelper"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultAccessTokenTTL = 7 * 24 * time.Hour
	DefaultMasteryDecay   = 0.9
	DefaultUserListLimit  = 100
)
