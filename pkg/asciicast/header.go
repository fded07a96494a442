package asciicast

import "fmt"

// Version はサポートするcastフォーマットのバージョン
const Version = 2

// Header は録画のメタデータ（castファイルの1行目）を表します
type Header struct {
	Version       int               `json:"version"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	Timestamp     int64             `json:"timestamp,omitempty"`
	Duration      float64           `json:"duration,omitempty"`
	IdleTimeLimit float64           `json:"idle_time_limit,omitempty"`
	Command       string            `json:"command,omitempty"`
	Title         string            `json:"title,omitempty"`
	Env           map[string]string `json:"env,omitempty"`
}

// Clone はヘッダの深いコピーを作成します
func (h Header) Clone() Header {
	clone := h
	if h.Env != nil {
		clone.Env = make(map[string]string, len(h.Env))
		for k, v := range h.Env {
			clone.Env[k] = v
		}
	}
	return clone
}

// Validate はヘッダが有効か検証します
func (h Header) Validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: version=%d", ErrInvalidHeader, h.Version)
	}
	if h.Width <= 0 || h.Height <= 0 {
		return fmt.Errorf("%w: width=%d height=%d", ErrInvalidHeader, h.Width, h.Height)
	}
	return nil
}
