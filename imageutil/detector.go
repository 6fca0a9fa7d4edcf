package imageutil

import (
	"image"
	"image/color"
)

// 境界パターンの形状
const (
	// 1つの帯の高さ（行数）
	BandHeight = 4
	// 対象色・白・対象色の3帯
	PatternHeight = BandHeight * 3
	// 走査する最小の行（これより上の行は候補にしない）
	MinScanRow = PatternHeight + BandHeight
)

// BorderDetector は画像下部にある「対象色4行・白4行・対象色4行」の境界を検出する
type BorderDetector struct {
	target    color.RGBA
	tolerance int
}

// NewBorderDetector 対象色と許容差をもとに新しいBorderDetectorを作成
func NewBorderDetector(target color.RGBA, tolerance int) *BorderDetector {
	if tolerance < 0 {
		tolerance = 0
	}
	return &BorderDetector{
		target:    target,
		tolerance: tolerance,
	}
}

// FindCutPosition は画像の中央列を下から上へ走査し、最も下にある境界パターンを探す
// 見つかった場合はパターン上端の行（画像上端からの相対位置）を返す
// 高さが MinScanRow 以下の画像は走査せずに見つからなかったとして扱う
func (bd *BorderDetector) FindCutPosition(img image.Image) (int, bool) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 1 || height < MinScanRow {
		return 0, false
	}

	x := bounds.Min.X + width/2

	for y := height - 1; y >= MinScanRow; y-- {
		top := y - (PatternHeight - 1)

		// 上から対象色 → 白 → 対象色
		if !bd.bandMatches(img, x, top, bd.target) {
			continue
		}
		if !bd.bandMatches(img, x, top+BandHeight, White) {
			continue
		}
		if !bd.bandMatches(img, x, top+2*BandHeight, bd.target) {
			continue
		}

		return top, true
	}

	return 0, false
}

// bandMatches は列xの行 [top, top+BandHeight) がすべて指定色に一致するかを判定する
// top は画像上端からの相対行で、負の行を含む帯は一致しない
func (bd *BorderDetector) bandMatches(img image.Image, x, top int, want color.RGBA) bool {
	if top < 0 {
		return false
	}
	minY := img.Bounds().Min.Y
	for dy := 0; dy < BandHeight; dy++ {
		if !ColorWithinTolerance(img.At(x, minY+top+dy), want, bd.tolerance) {
			return false
		}
	}
	return true
}
