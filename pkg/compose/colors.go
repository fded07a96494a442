package compose

// 色設定用ANSIエスケープシーケンスの省略表記
const (
	// Faint は低輝度
	Faint = "\x1b[2m"
	// Bold は太字
	Bold = "\x1b[1m"
	// Blue は青・太字
	Blue = "\x1b[1;34m"
	// Green は緑・太字
	Green = "\x1b[1;32m"
	// Yellow は黄・太字
	Yellow = "\x1b[1;33m"
	// Red は赤・太字
	Red = "\x1b[1;31m"
	// Reset は既定のスタイルに戻す
	Reset = "\x1b[0m"
)
