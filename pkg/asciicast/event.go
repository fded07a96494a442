package asciicast

import (
	"fmt"
	"regexp"
	"strconv"
)

// EventType はイベントのストリーム種別を表します
type EventType string

const (
	// Output は標準出力への書き込みイベント
	Output EventType = "o"
	// Input は標準入力からの読み込みイベント
	Input EventType = "i"
	// Resize は端末サイズの変更イベント（ペイロードは "<cols>x<rows>"）
	Resize EventType = "r"
	// Marker は注釈マーカーイベント（ペイロードはラベル文字列）
	Marker EventType = "m"
)

// Valid はストリーム種別が既知のものか判定します
func (t EventType) Valid() bool {
	switch t {
	case Output, Input, Resize, Marker:
		return true
	}
	return false
}

// Event はcastの1レコード（1行）を表します。
// 録画開始からの経過秒、ストリーム種別、ペイロードを保持します
type Event struct {
	Time float64
	Type EventType
	Data string
}

// resizePattern はリサイズイベントのペイロード "<cols>x<rows>" のパターン
var resizePattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// Size はリサイズイベントのペイロードを解析して端末サイズを返します
func (e Event) Size() (cols, rows int, err error) {
	m := resizePattern.FindStringSubmatch(e.Data)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidResize, e.Data)
	}
	cols, _ = strconv.Atoi(m[1])
	rows, _ = strconv.Atoi(m[2])
	if cols == 0 || rows == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidResize, e.Data)
	}
	return cols, rows, nil
}

// checkEvent はイベント単体の不変条件を検証します。
// prev には直前のイベントのタイムスタンプを渡します
func checkEvent(e Event, prev float64) error {
	if e.Time < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimestamp, e.Time)
	}
	if e.Time < prev {
		return fmt.Errorf("%w: %v < %v", ErrOutOfOrder, e.Time, prev)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, string(e.Type))
	}
	if e.Type == Resize {
		if _, _, err := e.Size(); err != nil {
			return err
		}
	}
	return nil
}
