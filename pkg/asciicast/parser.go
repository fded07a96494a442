package asciicast

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxLineSize は1行の最大長。長時間の録画では1イベントが
// 数MBになることがあるため、bufio.Scannerの既定値より大きくとります
const maxLineSize = 4 * 1024 * 1024

// Parser は行区切りのcastストリームをCastに変換します
type Parser struct{}

// NewParser は新しいParserを作成します
func NewParser() *Parser {
	return &Parser{}
}

// Parse はcastストリームを読み込んでCastを構築します。
// 1行目はヘッダオブジェクト、2行目以降は [time, type, data] 形式の
// イベントでなければなりません。空行は無視します。
// 不正な入力は修復せず、行番号付きのFormatErrorを返します
func (p *Parser) Parse(r io.Reader) (*Cast, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var cast *Cast
	prev := 0.0
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		if cast == nil {
			header, err := parseHeader(text)
			if err != nil {
				return nil, NewFormatError(line, err)
			}
			cast = New(header)
			continue
		}

		event, err := parseEvent(text)
		if err != nil {
			return nil, NewFormatError(line, err)
		}
		if err := checkEvent(event, prev); err != nil {
			return nil, NewFormatError(line, err)
		}
		cast.Events = append(cast.Events, event)
		prev = event.Time
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan cast stream: %w", err)
	}
	if cast == nil {
		return nil, NewFormatError(0, ErrMissingHeader)
	}

	return cast, nil
}

// ParseString は文字列からCastを構築します
func (p *Parser) ParseString(s string) (*Cast, error) {
	return p.Parse(strings.NewReader(s))
}

// parseHeader はヘッダ行を解析します
func parseHeader(line string) (Header, error) {
	var header Header
	if err := json.Unmarshal([]byte(line), &header); err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if err := header.Validate(); err != nil {
		return Header{}, err
	}
	return header, nil
}

// parseEvent はイベント行を解析します
func parseEvent(line string) (Event, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrEventArity, err)
	}
	if len(fields) != 3 {
		return Event{}, fmt.Errorf("%w: got %d elements", ErrEventArity, len(fields))
	}

	var event Event
	if err := json.Unmarshal(fields[0], &event.Time); err != nil {
		return Event{}, fmt.Errorf("%w: %s", ErrInvalidTimestamp, fields[0])
	}
	var eventType string
	if err := json.Unmarshal(fields[1], &eventType); err != nil {
		return Event{}, fmt.Errorf("%w: %s", ErrUnknownEventType, fields[1])
	}
	event.Type = EventType(eventType)
	if err := json.Unmarshal(fields[2], &event.Data); err != nil {
		return Event{}, fmt.Errorf("%w: %s", ErrInvalidPayload, fields[2])
	}
	return event, nil
}
