// Package asciicast は asciinema cast v2 形式（行区切りのイベントログ）の
// 解析・編集・出力を行います
package asciicast

// Cast は1つの録画を表します。ヘッダと、タイムスタンプ昇順の
// イベント列を保持します
type Cast struct {
	Header Header
	Events []Event
}

// New はヘッダだけを持つ空のCastを作成します
func New(header Header) *Cast {
	return &Cast{Header: header.Clone()}
}

// Duration は録画の長さ（最後のイベントのタイムスタンプ）を返します。
// イベントがない場合は0を返します
func (c *Cast) Duration() float64 {
	if len(c.Events) == 0 {
		return 0
	}
	return c.Events[len(c.Events)-1].Time
}

// Clone はCastの深いコピーを作成します
func (c *Cast) Clone() *Cast {
	clone := New(c.Header)
	if c.Events != nil {
		clone.Events = make([]Event, len(c.Events))
		copy(clone.Events, c.Events)
	}
	return clone
}

// SplitAt は指定したインデックスの直前で録画を2つに分割します。
// 有効な値は 0...len(Events) で、負のインデックスは末尾から数えます。
// 分割後もタイムスタンプは元の値のまま保持されます
func (c *Cast) SplitAt(i int) (*Cast, *Cast, error) {
	idx := i
	if idx < 0 {
		idx += len(c.Events)
	}
	if idx < 0 || idx > len(c.Events) {
		return nil, nil, &FormatError{Err: wrapSplitIndex(i, len(c.Events))}
	}

	a := New(c.Header)
	a.Events = append(a.Events, c.Events[:idx]...)
	b := New(c.Header)
	b.Events = append(b.Events, c.Events[idx:]...)
	return a, b, nil
}

// Text は出力イベントのペイロードを連結した文字列を返します
func (c *Cast) Text() string {
	var s string
	for _, e := range c.Events {
		if e.Type == Output {
			s += e.Data
		}
	}
	return s
}

// Validate はCastが不変条件を満たすか検証します。
// ヘッダが有効であること、イベントがタイムスタンプ昇順であること、
// 各イベントのペイロードが種別に対して有効であることを確認します
func (c *Cast) Validate() error {
	if err := c.Header.Validate(); err != nil {
		return &FormatError{Line: 1, Err: err}
	}
	prev := 0.0
	for i, e := range c.Events {
		if err := checkEvent(e, prev); err != nil {
			// ヘッダが1行目なのでイベントは i+2 行目に相当する
			return &FormatError{Line: i + 2, Err: err}
		}
		prev = e.Time
	}
	return nil
}
