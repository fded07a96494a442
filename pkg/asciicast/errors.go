package asciicast

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader はヘッダ行が存在しない場合のエラー
	ErrMissingHeader = errors.New("missing header line")

	// ErrInvalidHeader はヘッダが不正な場合のエラー
	ErrInvalidHeader = errors.New("invalid header")

	// ErrEventArity はイベント行の要素数が3でない場合のエラー
	ErrEventArity = errors.New("event line must be a 3-element array")

	// ErrInvalidTimestamp はタイムスタンプが数値でないか負の場合のエラー
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrOutOfOrder はタイムスタンプが昇順でない場合のエラー
	ErrOutOfOrder = errors.New("timestamps must be non-decreasing")

	// ErrUnknownEventType はストリーム種別が未知の場合のエラー
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrInvalidPayload はペイロードが文字列でない場合のエラー
	ErrInvalidPayload = errors.New("payload must be a string")

	// ErrInvalidResize はリサイズイベントのペイロードが不正な場合のエラー
	ErrInvalidResize = errors.New("invalid resize payload")

	// ErrSplitIndex は分割位置が範囲外の場合のエラー
	ErrSplitIndex = errors.New("split index out of range")

	// ErrOpenFile はcastファイルを開けなかった場合のエラー
	ErrOpenFile = errors.New("failed to open cast file")

	// ErrCreateFile はcastファイルを作成できなかった場合のエラー
	ErrCreateFile = errors.New("failed to create cast file")

	// ErrCreateDirectory は出力先ディレクトリを作成できなかった場合のエラー
	ErrCreateDirectory = errors.New("failed to create output directory")

	// ErrWriteFile はcastファイルへの書き込みに失敗した場合のエラー
	ErrWriteFile = errors.New("failed to write cast file")
)

// FormatError はcastフォーマット関連のエラー。
// Lineは問題のあった行番号（1始まり）で、0の場合は行が特定できないことを表します
type FormatError struct {
	Line int   // 行番号
	Err  error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

// Unwrap は元のエラーを返します
func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError は新しいFormatErrorを作成します
func NewFormatError(line int, err error) *FormatError {
	return &FormatError{Line: line, Err: err}
}

// wrapSplitIndex は分割位置エラーの詳細を組み立てます
func wrapSplitIndex(i, n int) error {
	return fmt.Errorf("%w: index=%d len=%d", ErrSplitIndex, i, n)
}
