package edit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shiroemons/go-castedit/pkg/asciicast"
)

// Trim は Start <= t <= End のイベントだけを残し、
// タイムスタンプをStartだけ引いて0始まりに詰め直します
type Trim struct {
	Start float64
	End   float64
}

// Name は操作名を返します
func (op Trim) Name() string { return "trim" }

// Validate はパラメータを検証します
func (op Trim) Validate() error {
	return checkRange(op.Name(), op.Start, op.End)
}

// Apply は操作を適用した新しいCastを返します
func (op Trim) Apply(c *asciicast.Cast) (*asciicast.Cast, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	out := asciicast.New(c.Header)
	for _, e := range c.Events {
		if e.Time < op.Start || e.Time > op.End {
			continue
		}
		e.Time -= op.Start
		out.Events = append(out.Events, e)
	}
	return out, nil
}

// Cut は Start <= t < End のイベントを取り除き、End以降の
// タイムスタンプを左に詰めてタイムラインを連続にします
type Cut struct {
	Start float64
	End   float64
}

// Name は操作名を返します
func (op Cut) Name() string { return "cut" }

// Validate はパラメータを検証します
func (op Cut) Validate() error {
	return checkRange(op.Name(), op.Start, op.End)
}

// Apply は操作を適用した新しいCastを返します
func (op Cut) Apply(c *asciicast.Cast) (*asciicast.Cast, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	width := op.End - op.Start
	out := asciicast.New(c.Header)
	for _, e := range c.Events {
		switch {
		case e.Time < op.Start:
			out.Events = append(out.Events, e)
		case e.Time < op.End:
			// 範囲内のイベントは捨てる（マーカーも区別しない）
		default:
			e.Time -= width
			out.Events = append(out.Events, e)
		}
	}
	return out, nil
}

// Shift は全イベントのタイムスタンプにOffsetを加えます。
// Offsetは負でもかまいませんが、結果が負になる場合は失敗します
type Shift struct {
	Offset float64
}

// Name は操作名を返します
func (op Shift) Name() string { return "shift" }

// Validate はパラメータを検証します
func (op Shift) Validate() error { return nil }

// Apply は操作を適用した新しいCastを返します
func (op Shift) Apply(c *asciicast.Cast) (*asciicast.Cast, error) {
	// イベントは昇順なので先頭だけ確認すればよい
	if len(c.Events) > 0 && c.Events[0].Time+op.Offset < 0 {
		return nil, newRangeError(op.Name(),
			fmt.Errorf("%w: offset=%v first=%v", ErrNegativeTime, op.Offset, c.Events[0].Time))
	}
	out := c.Clone()
	for i := range out.Events {
		out.Events[i].Time += op.Offset
	}
	return out, nil
}

// Splice は別の録画のイベント列を位置Atに挿入します。
// 挿入するイベントは先頭がAtに来るようずらし、ホスト側の
// t >= At のイベントは挿入分の長さだけ右にずらします。
// 同一タイムスタンプでは挿入イベントがホスト側より前に並びます
type Splice struct {
	Other *asciicast.Cast
	At    float64
}

// Name は操作名を返します
func (op Splice) Name() string { return "splice" }

// Validate はパラメータを検証します
func (op Splice) Validate() error {
	if op.Other == nil {
		return newRangeError(op.Name(), ErrNilCast)
	}
	if op.At < 0 {
		return newRangeError(op.Name(), fmt.Errorf("%w: at=%v", ErrNegativePosition, op.At))
	}
	return nil
}

// Apply は操作を適用した新しいCastを返します
func (op Splice) Apply(c *asciicast.Cast) (*asciicast.Cast, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	if op.At > c.Duration() {
		return nil, newRangeError(op.Name(),
			fmt.Errorf("%w: at=%v duration=%v", ErrOutOfRange, op.At, c.Duration()))
	}

	width := op.Other.Duration()
	shift := 0.0
	if len(op.Other.Events) > 0 {
		shift = op.At - op.Other.Events[0].Time
	}

	// ホスト側で右にずらす最初のイベントの位置
	split := sort.Search(len(c.Events), func(i int) bool {
		return c.Events[i].Time >= op.At
	})

	out := asciicast.New(c.Header)
	out.Events = append(out.Events, c.Events[:split]...)
	for _, e := range op.Other.Events {
		e.Time += shift
		out.Events = append(out.Events, e)
	}
	for _, e := range c.Events[split:] {
		e.Time += width
		out.Events = append(out.Events, e)
	}
	return out, nil
}

// InsertMarker は位置Atにラベル付きのマーカーイベントを挿入します。
// 他のイベントのタイムスタンプは変更しません。
// 同一タイムスタンプの既存イベントの後ろに挿入されます
type InsertMarker struct {
	At    float64
	Label string
}

// Name は操作名を返します
func (op InsertMarker) Name() string { return "insert-marker" }

// Validate はパラメータを検証します
func (op InsertMarker) Validate() error {
	if op.At < 0 {
		return newRangeError(op.Name(), fmt.Errorf("%w: at=%v", ErrNegativePosition, op.At))
	}
	return nil
}

// Apply は操作を適用した新しいCastを返します
func (op InsertMarker) Apply(c *asciicast.Cast) (*asciicast.Cast, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	idx := sort.Search(len(c.Events), func(i int) bool {
		return c.Events[i].Time > op.At
	})
	marker := asciicast.Event{Time: op.At, Type: asciicast.Marker, Data: op.Label}

	out := asciicast.New(c.Header)
	out.Events = make([]asciicast.Event, 0, len(c.Events)+1)
	out.Events = append(out.Events, c.Events[:idx]...)
	out.Events = append(out.Events, marker)
	out.Events = append(out.Events, c.Events[idx:]...)
	return out, nil
}

// Speed は再生速度をFactor倍にします（タイムスタンプをFactorで割ります）
type Speed struct {
	Factor float64
}

// Name は操作名を返します
func (op Speed) Name() string { return "speed" }

// Validate はパラメータを検証します
func (op Speed) Validate() error {
	if op.Factor <= 0 {
		return newRangeError(op.Name(), fmt.Errorf("%w: factor=%v", ErrBadFactor, op.Factor))
	}
	return nil
}

// Apply は操作を適用した新しいCastを返します
func (op Speed) Apply(c *asciicast.Cast) (*asciicast.Cast, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	out := c.Clone()
	for i := range out.Events {
		out.Events[i].Time /= op.Factor
	}
	return out, nil
}

// Replace は出力・入力イベントのペイロードに対して
// 単純な文字列置換を行います。リサイズとマーカーは変更しません
type Replace struct {
	Old string
	New string
}

// Name は操作名を返します
func (op Replace) Name() string { return "replace" }

// Validate はパラメータを検証します
func (op Replace) Validate() error { return nil }

// Apply は操作を適用した新しいCastを返します
func (op Replace) Apply(c *asciicast.Cast) (*asciicast.Cast, error) {
	out := c.Clone()
	for i := range out.Events {
		switch out.Events[i].Type {
		case asciicast.Output, asciicast.Input:
			out.Events[i].Data = strings.ReplaceAll(out.Events[i].Data, op.Old, op.New)
		}
	}
	return out, nil
}

// Append は別の録画をホストの末尾に連結します。
// 連結するイベントはホストの長さだけ右にずらします
type Append struct {
	Other *asciicast.Cast
}

// Name は操作名を返します
func (op Append) Name() string { return "append" }

// Validate はパラメータを検証します
func (op Append) Validate() error {
	if op.Other == nil {
		return newRangeError(op.Name(), ErrNilCast)
	}
	return nil
}

// Apply は操作を適用した新しいCastを返します
func (op Append) Apply(c *asciicast.Cast) (*asciicast.Cast, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	base := c.Duration()
	out := c.Clone()
	for _, e := range op.Other.Events {
		e.Time += base
		out.Events = append(out.Events, e)
	}
	return out, nil
}

// checkRange はTrim/Cutの範囲パラメータを検証します
func checkRange(op string, start, end float64) error {
	if start < 0 {
		return newRangeError(op, fmt.Errorf("%w: start=%v", ErrNegativeStart, start))
	}
	if start > end {
		return newRangeError(op, fmt.Errorf("%w: start=%v end=%v", ErrStartAfterEnd, start, end))
	}
	return nil
}
