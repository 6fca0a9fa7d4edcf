// imageutil パッケージは画像下部の境界検出と切り抜きのためのユーティリティを提供します
package imageutil

// このファイルは、imageutil パッケージのエントリーポイントとして機能し、
// 各ファイルに分割された機能へのアクセスポイントを提供します。
//
// 機能は以下のファイルに分割されています：
// - detector.go: 中央列を下から走査する境界パターンの検出
// - color_utils.go: 許容差付きの色の一致判定
// - imageloader.go: 画像の読み込み・保存・切り抜き
