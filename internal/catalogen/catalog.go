package catalogen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Event is one entry of events.json.
type Event struct {
	ID          string `json:"id"`
	Cancellable bool   `json:"cancellable"`
}

// GameValue is one entry of game_values.json.
type GameValue struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Action is one entry of actions.json.
type Action struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Object string `json:"object"`
	Args   []Arg  `json:"args"`
}

// Arg is one argument of an action.
type Arg struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Documents holds the three catalog documents.
type Documents struct {
	Events     []Event
	GameValues []GameValue
	Actions    []Action
}

// Load reads events.json, game_values.json and actions.json from dir.
func Load(dir string) (*Documents, error) {
	docs := &Documents{}
	for _, f := range []struct {
		name string
		dst  any
	}{
		{"events.json", &docs.Events},
		{"game_values.json", &docs.GameValues},
		{"actions.json", &docs.Actions},
	} {
		data, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		if err := json.Unmarshal(data, f.dst); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", f.name, err)
		}
	}
	return docs, nil
}

// Enum is one identifier set to generate.
type Enum struct {
	Type  string
	Doc   string
	Width uint32 // 0 means the default tag width
	IDs   []string
}

// Options controls which declarations Enums produces.
type Options struct {
	// ActionWidth is the declared tag width of ActionID.
	ActionWidth uint32
}

// Enums collects the identifier sets of docs. Every set is deduplicated and
// sorted by raw id.
func Enums(docs *Documents, opts Options) []Enum {
	events := newIDSet()
	for _, e := range docs.Events {
		events.add(e.ID)
	}

	gameValues, valueTypes := newIDSet(), newIDSet()
	for _, v := range docs.GameValues {
		gameValues.add(v.ID)
		valueTypes.add(v.Type)
	}

	actions, actionTypes, objects, argTypes := newIDSet(), newIDSet(), newIDSet(), newIDSet()
	for _, a := range docs.Actions {
		actions.add(a.ID)
		actionTypes.add(a.Type)
		objects.add(a.Object)
		for _, arg := range a.Args {
			argTypes.add(arg.Type)
		}
	}

	return []Enum{
		{Type: "EventID", Doc: "identifies an event a line can handle.", IDs: events.sorted()},
		{Type: "GameValueID", Doc: "identifies a value read from the game.", IDs: gameValues.sorted()},
		{Type: "ValueType", Doc: "is the kind of value a game value yields.", IDs: valueTypes.sorted()},
		{Type: "ActionID", Doc: "identifies an action an operation performs.", Width: opts.ActionWidth, IDs: actions.sorted()},
		{Type: "ActionType", Doc: "is the category of an action.", IDs: actionTypes.sorted()},
		{Type: "ActionObject", Doc: "is the object an action applies to.", IDs: objects.sorted()},
		{Type: "ArgType", Doc: "is the kind of an action argument.", IDs: argTypes.sorted()},
	}
}

type idSet map[string]struct{}

func newIDSet() idSet { return idSet{} }

func (s idSet) add(id string) { s[id] = struct{}{} }

func (s idSet) sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
