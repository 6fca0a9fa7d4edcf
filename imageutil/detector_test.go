package imageutil

import (
	"image"
	"image/color"
	"testing"
)

var (
	testTarget     = color.RGBA{64, 193, 243, 255}
	testBackground = color.RGBA{30, 30, 30, 255}
)

// createTestImageWithPattern は指定されたパターンでテスト画像を作成する
func createTestImageWithPattern(width, height int, background color.RGBA, pattern func(x, y int) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if pattern != nil {
				img.SetRGBA(x, y, pattern(x, y))
			} else {
				img.SetRGBA(x, y, background)
			}
		}
	}
	return img
}

// drawBorder は列xに、行 bottom で終わる「対象色・白・対象色」の12行パターンを描く
func drawBorder(img *image.RGBA, x, bottom int, target, white color.RGBA) {
	top := bottom - (PatternHeight - 1)
	for dy := 0; dy < PatternHeight; dy++ {
		c := target
		if dy >= BandHeight && dy < 2*BandHeight {
			c = white
		}
		img.SetRGBA(x, top+dy, c)
	}
}

func TestFindCutPosition(t *testing.T) {
	detector := NewBorderDetector(testTarget, 15)

	t.Run("中央列のパターンを検出", func(t *testing.T) {
		img := createTestImageWithPattern(41, 600, testBackground, nil)
		drawBorder(img, 20, 500, testTarget, White)

		cut, found := detector.FindCutPosition(img)
		if !found {
			t.Fatalf("Expected border to be found")
		}
		if cut != 500-11 {
			t.Errorf("Expected cut at %d, but got %d", 500-11, cut)
		}
	})

	t.Run("他の領域のピクセルに影響されない", func(t *testing.T) {
		// 中央列以外をすべて対象色で塗る
		img := createTestImageWithPattern(40, 300, testBackground, func(x, y int) color.RGBA {
			if x == 20 {
				return testBackground
			}
			return testTarget
		})
		drawBorder(img, 20, 250, testTarget, White)

		cut, found := detector.FindCutPosition(img)
		if !found || cut != 250-11 {
			t.Errorf("Expected cut at %d, but got %d (found=%v)", 250-11, cut, found)
		}
	})

	t.Run("パターンがない画像", func(t *testing.T) {
		img := createTestImageWithPattern(40, 200, color.RGBA{255, 255, 255, 255}, nil)

		if cut, found := detector.FindCutPosition(img); found {
			t.Errorf("Expected no border, but got cut at %d", cut)
		}
	})

	t.Run("中央以外の列のパターンは無視", func(t *testing.T) {
		img := createTestImageWithPattern(40, 200, testBackground, nil)
		drawBorder(img, 5, 150, testTarget, White)

		if cut, found := detector.FindCutPosition(img); found {
			t.Errorf("Expected no border for off-centre pattern, but got cut at %d", cut)
		}
	})

	t.Run("高さ15以下の画像は走査しない", func(t *testing.T) {
		for _, h := range []int{1, 12, 15} {
			img := createTestImageWithPattern(10, h, testTarget, nil)
			if cut, found := detector.FindCutPosition(img); found {
				t.Errorf("height %d: expected no border, but got cut at %d", h, cut)
			}
		}
	})

	t.Run("幅0の画像", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 0, 100))
		if _, found := detector.FindCutPosition(img); found {
			t.Errorf("Expected no border for zero-width image")
		}
	})

	t.Run("行16より上で終わるパターンは候補にしない", func(t *testing.T) {
		// 行15で終わるパターンは走査範囲外
		img := createTestImageWithPattern(10, 100, testBackground, nil)
		drawBorder(img, 5, 15, testTarget, White)

		if cut, found := detector.FindCutPosition(img); found {
			t.Errorf("Expected no border, but got cut at %d", cut)
		}

		// 行16で終わるパターンは検出され、切り取り位置は5
		img = createTestImageWithPattern(10, 100, testBackground, nil)
		drawBorder(img, 5, 16, testTarget, White)

		cut, found := detector.FindCutPosition(img)
		if !found || cut != 5 {
			t.Errorf("Expected cut at 5, but got %d (found=%v)", cut, found)
		}
	})

	t.Run("最下行で終わるパターン", func(t *testing.T) {
		img := createTestImageWithPattern(10, 40, testBackground, nil)
		drawBorder(img, 5, 39, testTarget, White)

		cut, found := detector.FindCutPosition(img)
		if !found || cut != 28 {
			t.Errorf("Expected cut at 28, but got %d (found=%v)", cut, found)
		}
	})

	t.Run("複数のパターンは最も下を採用", func(t *testing.T) {
		img := createTestImageWithPattern(20, 400, testBackground, nil)
		drawBorder(img, 10, 100, testTarget, White)
		drawBorder(img, 10, 300, testTarget, White)

		cut, found := detector.FindCutPosition(img)
		if !found || cut != 300-11 {
			t.Errorf("Expected cut at %d, but got %d (found=%v)", 300-11, cut, found)
		}
	})

	t.Run("帯の一部が欠けている", func(t *testing.T) {
		img := createTestImageWithPattern(20, 100, testBackground, nil)
		drawBorder(img, 10, 80, testTarget, White)
		// 白帯の1行だけ背景色に戻す
		img.SetRGBA(10, 80-5, testBackground)

		if cut, found := detector.FindCutPosition(img); found {
			t.Errorf("Expected no border, but got cut at %d", cut)
		}
	})

	t.Run("対象色の帯が4行より長い場合は最も下の一致を採用", func(t *testing.T) {
		img := createTestImageWithPattern(20, 100, testBackground, nil)
		drawBorder(img, 10, 60, testTarget, White)
		// 下側の対象色帯を2行延長
		img.SetRGBA(10, 61, testTarget)
		img.SetRGBA(10, 62, testTarget)

		cut, found := detector.FindCutPosition(img)
		if !found || cut != 49 {
			t.Errorf("Expected cut at 49, but got %d (found=%v)", cut, found)
		}
	})
}

func TestFindCutPositionTolerance(t *testing.T) {
	tolerance := 15

	tests := []struct {
		name   string
		target color.RGBA
		white  color.RGBA
		found  bool
	}{
		{
			name:   "許容差ちょうど",
			target: color.RGBA{64 + 15, 193 - 15, 243 + 12, 255},
			white:  color.RGBA{240, 240, 240, 255},
			found:  true,
		},
		{
			name:   "対象色が許容差+1",
			target: color.RGBA{64 + 16, 193, 243, 255},
			white:  White,
			found:  false,
		},
		{
			name:   "白が許容差+1",
			target: testTarget,
			white:  color.RGBA{255, 239, 255, 255},
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewBorderDetector(testTarget, tolerance)
			img := createTestImageWithPattern(9, 64, testBackground, nil)
			drawBorder(img, 4, 50, tt.target, tt.white)

			cut, found := detector.FindCutPosition(img)
			if found != tt.found {
				t.Fatalf("found = %v, want %v (cut=%d)", found, tt.found, cut)
			}
			if found && cut != 39 {
				t.Errorf("Expected cut at 39, but got %d", cut)
			}
		})
	}
}

func TestFindCutPositionIgnoresAlpha(t *testing.T) {
	detector := NewBorderDetector(testTarget, 0)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 0})
		}
	}
	for dy := 0; dy < PatternHeight; dy++ {
		c := color.NRGBA{64, 193, 243, 10}
		if dy >= BandHeight && dy < 2*BandHeight {
			c = color.NRGBA{255, 255, 255, 0}
		}
		img.SetNRGBA(1, 20+dy, c)
	}

	cut, found := detector.FindCutPosition(img)
	if !found || cut != 20 {
		t.Errorf("Expected cut at 20, but got %d (found=%v)", cut, found)
	}
}

func TestFindCutPositionSubImage(t *testing.T) {
	detector := NewBorderDetector(testTarget, 15)

	base := createTestImageWithPattern(100, 200, testBackground, nil)
	// サブ画像 (40,50)-(60,150) の中央列は x=50
	drawBorder(base, 50, 120, testTarget, White)
	sub := base.SubImage(image.Rect(40, 50, 60, 150))

	cut, found := detector.FindCutPosition(sub)
	if !found {
		t.Fatalf("Expected border to be found in sub image")
	}
	// 切り取り位置はサブ画像上端からの相対行
	if cut != 120-11-50 {
		t.Errorf("Expected cut at %d, but got %d", 120-11-50, cut)
	}
}

func TestNewBorderDetectorNegativeTolerance(t *testing.T) {
	detector := NewBorderDetector(testTarget, -5)

	img := createTestImageWithPattern(9, 64, testBackground, nil)
	drawBorder(img, 4, 50, testTarget, White)

	cut, found := detector.FindCutPosition(img)
	if !found || cut != 39 {
		t.Errorf("Expected exact match with tolerance clamped to 0, got %d (found=%v)", cut, found)
	}
}
