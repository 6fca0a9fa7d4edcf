package imageutil

import (
	"image/color"

	"github.com/xshoji/go-img-bordercut/utils"
)

// White は境界パターン中央の帯の色
var White = color.RGBA{255, 255, 255, 255}

// rgb8 は色をアルファ乗算前の8ビットRGBに変換する
// アルファ値は判定に使わないため捨てる
func rgb8(c color.Color) (r, g, b int) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}

// ColorWithinTolerance はR,G,Bの各チャンネルの差がすべて許容差以内かを返す
// 許容差ちょうどの差は一致とみなす
func ColorWithinTolerance(c color.Color, target color.RGBA, tolerance int) bool {
	r, g, b := rgb8(c)
	return utils.AbsInt(r-int(target.R)) <= tolerance &&
		utils.AbsInt(g-int(target.G)) <= tolerance &&
		utils.AbsInt(b-int(target.B)) <= tolerance
}
