package config

import (
	"image/color"

	"github.com/xshoji/go-img-bordercut/utils"
)

// 環境変数名
const (
	EnvSourceDir = "BORDERCROP_SRC"
	EnvDestDir   = "BORDERCROP_DST"
	EnvTolerance = "BORDERCROP_TOLERANCE"
	EnvRenameDir = "RENAMER_DIR"
)

// AppConfig は境界検出・切り抜きとリネーム処理の設定を保持する構造体
type AppConfig struct {
	// 切り抜き処理の入出力
	SourceDir  string   // 処理対象の画像があるディレクトリ
	DestDir    string   // 出力先ディレクトリ（存在しなければ作成）
	Extensions []string // 処理対象とする拡張子（小文字、ドット付き）

	// 境界検出のための設定
	TargetColor color.RGBA // 境界帯の色（アルファは無視）
	Tolerance   int        // チャンネルごとの許容差 (0-255)

	// 出力の設定
	JPEGQuality int  // JPEG保存時の品質 (1-100)
	DryRun      bool // trueならファイルを書き込まない

	// リネーム処理の設定
	RenameDir       string // リネーム対象のディレクトリ
	RenameFrom      int    // 連番の開始値
	RenameTo        int    // 連番の終了値（この値を含む）
	RenameOffset    int    // 新しい番号 = 連番 + オフセット
	RenameOldFormat string // 旧ファイル名の書式
	RenameNewFormat string // 新ファイル名の書式
	RenameOverwrite bool   // 既存ファイルへの上書きを許可するか
}

// NewDefaultConfig はデフォルト設定を持つ新しいAppConfigを返す
func NewDefaultConfig() *AppConfig {
	return &AppConfig{
		SourceDir:       "../9Passo-JuntarQuestoes",
		DestDir:         ".",
		Extensions:      []string{".png", ".jpg", ".jpeg", ".bmp", ".tiff"},
		TargetColor:     color.RGBA{64, 193, 243, 255}, // #40c1f3
		Tolerance:       15,
		JPEGQuality:     90,
		DryRun:          false,
		RenameDir:       "questoes-paginas-29a31",
		RenameFrom:      1,
		RenameTo:        11,
		RenameOffset:    78,
		RenameOldFormat: "parte_%03d.png",
		RenameNewFormat: "questao-%d.png",
		RenameOverwrite: false,
	}
}

// LoadFromEnv は環境変数で設定値を上書きする
// 未設定の項目は現在の値のまま
func (c *AppConfig) LoadFromEnv() *AppConfig {
	c.SourceDir = utils.GetEnvOrDefault(EnvSourceDir, c.SourceDir)
	c.DestDir = utils.GetEnvOrDefault(EnvDestDir, c.DestDir)
	c.Tolerance = utils.Clamp(utils.GetEnvIntOrDefault(EnvTolerance, c.Tolerance), 0, 255)
	c.RenameDir = utils.GetEnvOrDefault(EnvRenameDir, c.RenameDir)
	return c
}
