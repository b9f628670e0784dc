package rainrun

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ScriptEvent is one scripted input, delivered before the given frame.
type ScriptEvent struct {
	Frame  int    `yaml:"frame"`
	Action string `yaml:"action"`
}

// Script is a fixed input sequence for headless runs and replays.
type Script struct {
	Events []ScriptEvent
}

// Script actions and the Controls call each one maps to.
var scriptActions = map[string]func(*Controls){
	"boost":  (*Controls).Tap,
	"jump":   (*Controls).Jump,
	"crouch": (*Controls).CrouchDown,
	"stand":  (*Controls).CrouchUp,
	"faster": (*Controls).Faster,
	"slower": (*Controls).Slower,
	"pause":  (*Controls).Pause,
}

// ParseScript decodes a YAML list of {frame, action} events.
func ParseScript(data []byte) (Script, error) {
	var events []ScriptEvent
	if err := yaml.Unmarshal(data, &events); err != nil {
		return Script{}, fmt.Errorf("rainrun: failed to parse script: %w", err)
	}
	for i, ev := range events {
		if ev.Frame < 0 {
			return Script{}, fmt.Errorf("rainrun: script event %d: negative frame %d", i, ev.Frame)
		}
		if _, ok := scriptActions[ev.Action]; !ok {
			return Script{}, fmt.Errorf("rainrun: script event %d: unknown action %q", i, ev.Action)
		}
	}
	slices.SortStableFunc(events, func(a, b ScriptEvent) int {
		return a.Frame - b.Frame
	})
	return Script{Events: events}, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("rainrun: failed to read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// Apply feeds every event scheduled for frame into c and returns how many
// were delivered.
func (s Script) Apply(frame int, c *Controls) int {
	start, _ := slices.BinarySearchFunc(s.Events, frame, func(ev ScriptEvent, f int) int {
		return ev.Frame - f
	})
	n := 0
	for i := start; i < len(s.Events) && s.Events[i].Frame == frame; i++ {
		scriptActions[s.Events[i].Action](c)
		n++
	}
	return n
}

// Len returns the number of events.
func (s Script) Len() int {
	return len(s.Events)
}
