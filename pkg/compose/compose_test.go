package compose

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shiroemons/go-castedit/pkg/asciicast"
)

func TestWait(t *testing.T) {
	cast := Wait(6)
	if len(cast.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(cast.Events))
	}
	e := cast.Events[0]
	if e.Time != 6 || e.Type != asciicast.Output || e.Data != "" {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestEnd(t *testing.T) {
	cast := End(10)
	if len(cast.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(cast.Events))
	}
	e := cast.Events[0]
	if e.Time != 10 || e.Data != "\r\r\n" {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestFromEvent(t *testing.T) {
	e := asciicast.Event{Time: 99, Type: asciicast.Input, Data: "x"}
	cast := FromEvent(e, 1.5)
	if cast.Events[0].Time != 1.5 {
		t.Errorf("Time = %v, want 1.5", cast.Events[0].Time)
	}
	if cast.Events[0].Data != "x" || cast.Events[0].Type != asciicast.Input {
		t.Errorf("unexpected event: %+v", cast.Events[0])
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		machine  string
		opts     PromptOptions
		expected string
	}{
		{
			name:     "既定のスタイル",
			user:     "jlvdb",
			machine:  "yaw",
			expected: Red + "jlvdb@yaw" + Reset + " " + Blue + "~ $ " + Reset,
		},
		{
			name:     "ディレクトリとプロンプト記号を指定",
			user:     "alice",
			machine:  "dev",
			opts:     PromptOptions{Dir: "/srv", Prompt: " % "},
			expected: Red + "alice@dev" + Reset + " " + Blue + "/srv % " + Reset,
		},
		{
			name:     "環境名付き",
			user:     "alice",
			machine:  "dev",
			opts:     PromptOptions{Env: "venv"},
			expected: "(venv) " + Red + "alice@dev" + Reset + " " + Blue + "~ $ " + Reset,
		},
		{
			name:     "色を指定",
			user:     "alice",
			machine:  "dev",
			opts:     PromptOptions{UserColor: Green, DirColor: Yellow},
			expected: Green + "alice@dev" + Reset + " " + Yellow + "~ $ " + Reset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cast := PromptWithOptions(tt.user, tt.machine, tt.opts)
			if len(cast.Events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(cast.Events))
			}
			if cast.Events[0].Data != tt.expected {
				t.Errorf("Data = %q, want %q", cast.Events[0].Data, tt.expected)
			}
		})
	}
}

func TestPrompt_Delay(t *testing.T) {
	cast := PromptWithOptions("a", "b", PromptOptions{Delay: 2})
	if cast.Events[0].Time != 2 {
		t.Errorf("Time = %v, want 2", cast.Events[0].Time)
	}
}

func TestTypeText_Deterministic(t *testing.T) {
	// 揺らぎを無効にすると一定間隔でタイプされる
	cast := TypeTextWithOptions("abc", TypeOptions{Speed: 0.25, Jitter: -1})
	if len(cast.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(cast.Events))
	}
	for i, e := range cast.Events {
		want := 0.25 * float64(i+1)
		if math.Abs(e.Time-want) > 1e-9 {
			t.Errorf("events[%d].Time = %v, want %v", i, e.Time, want)
		}
		if e.Data != string([]rune("abc")[i]) {
			t.Errorf("events[%d].Data = %q", i, e.Data)
		}
		if e.Type != asciicast.Output {
			t.Errorf("events[%d].Type = %q, want %q", i, e.Type, asciicast.Output)
		}
	}
}

func TestTypeText_MultibyteRunes(t *testing.T) {
	cast := TypeTextWithOptions("こんにちは", TypeOptions{Jitter: -1})
	if len(cast.Events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(cast.Events))
	}
	if cast.Events[0].Data != "こ" {
		t.Errorf("events[0].Data = %q, want %q", cast.Events[0].Data, "こ")
	}
}

func TestTypeText_JitterBounds(t *testing.T) {
	// 既定の揺らぎは速度の30%以内に収まり、タイムスタンプは昇順を保つ
	r := rand.New(rand.NewSource(42))
	cast := TypeTextWithOptions("hello world", TypeOptions{Speed: 0.04, Rand: r})

	prev := 0.0
	for i, e := range cast.Events {
		delta := e.Time - prev
		if delta < 0.04*0.7-1e-9 || delta > 0.04*1.3+1e-9 {
			t.Errorf("events[%d] delta = %v, want within 30%% of 0.04", i, delta)
		}
		if e.Time < prev {
			t.Errorf("events[%d] is out of order: %v < %v", i, e.Time, prev)
		}
		prev = e.Time
	}
}

func TestTypeText_Reproducible(t *testing.T) {
	// 同じシードなら同じ結果になる
	a := TypeTextWithOptions("same", TypeOptions{Rand: rand.New(rand.NewSource(7))})
	b := TypeTextWithOptions("same", TypeOptions{Rand: rand.New(rand.NewSource(7))})
	for i := range a.Events {
		if a.Events[i] != b.Events[i] {
			t.Errorf("events[%d] differ: %+v != %+v", i, a.Events[i], b.Events[i])
		}
	}
}

func TestTypeText_InputStream(t *testing.T) {
	cast := TypeTextWithOptions("ls", TypeOptions{Stream: asciicast.Input, Jitter: -1})
	for i, e := range cast.Events {
		if e.Type != asciicast.Input {
			t.Errorf("events[%d].Type = %q, want %q", i, e.Type, asciicast.Input)
		}
	}
}
