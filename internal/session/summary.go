package session

// Summary holds the data displayed on the result screen.
type Summary struct {
	WorkKey   string
	PartKey   string
	Score     int
	Total     int
	Percent   int
	Message   string
	Completed bool
}

// Percent returns score/total as a rounded percentage, 0 for an empty round.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (score*200 + total) / (total * 2)
}

// ResultMessage returns the closing remark for a round score.
func ResultMessage(score, total int) string {
	if total <= 0 {
		total = 1
	}
	// Tiers compare the exact ratio, not the rounded percentage.
	p := score * 100
	switch {
	case score == total:
		return "全問正解！見事な読解力です。"
	case p >= 80*total:
		return "素晴らしい！あと一歩で満点です。"
	case p >= 60*total:
		return "よくできました。間違えた問題を復習しましょう。"
	case p >= 40*total:
		return "もう少し！解説を読み返してみましょう。"
	}
	return "まずは本文をじっくり読み直してみましょう。"
}
