package processor

// Outcome は1ファイルの処理結果
type Outcome int

const (
	// OutcomeCropped 境界を検出して切り抜いた
	OutcomeCropped Outcome = iota
	// OutcomeCopied 境界が見つからず元ファイルをコピーした
	OutcomeCopied
	// OutcomeCopiedAfterError 処理に失敗したが元ファイルはコピーできた
	OutcomeCopiedAfterError
	// OutcomeFailed 処理もコピーも失敗した
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCropped:
		return "cropped"
	case OutcomeCopied:
		return "copied"
	case OutcomeCopiedAfterError:
		return "copied_after_error"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult は1ファイル分の処理結果
type FileResult struct {
	Name    string
	Outcome Outcome
	Cut     int   // 切り取り位置（切り抜いた場合のみ）
	Err     error // 処理中に発生したエラー
}

// Report は一括処理全体の結果
type Report struct {
	Results []FileResult
	DryRun  bool
}

// Count は指定した結果のファイル数を返す
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Failed は処理もコピーもできなかったファイル名を返す
func (r *Report) Failed() []string {
	var names []string
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			names = append(names, res.Name)
		}
	}
	return names
}
