package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/batatacode/internal/app"
	"github.com/vk/batatacode/internal/bytecode"
	"github.com/vk/batatacode/internal/catalog"
	"github.com/vk/batatacode/internal/model"
)

const moduleJSON = `{
  "handlers": [
    {
      "type": "event",
      "position": 3,
      "operations": [
        {
          "action": "player_send_message",
          "values": [
            {"name": "messages", "value": {"type": "text", "text": "hello", "parsing": "plain"}},
            {"name": "count", "value": {"type": "number", "number": 2.5}},
            {"name": "calc", "value": {"type": "number", "number": "%math(1+1)"}}
          ]
        },
        {
          "action": "player_teleport",
          "values": [
            {"name": "target", "value": {"type": "location", "x": 1, "y": 64, "z": -1, "yaw": 90, "pitch": 0}},
            {"name": "who", "value": {"type": "game_value", "game_value": "player_name", "selection": "default"}}
          ]
        }
      ]
    },
    {
      "type": "function",
      "position": 0,
      "operations": [
        {
          "action": "set_variable_value",
          "values": [
            {"name": "variable", "value": {"type": "variable", "variable": "hello", "scope": "save"}},
            {"name": "items", "value": {"type": "array", "values": [
              {"type": "item", "item": "stone"},
              {"type": "block", "block": "dirt"}
            ]}},
            {"name": "mode", "value": {"type": "enum", "enum": "add_to_end"}},
            {"name": "broken", "value": {"type": "vector", "x": 1}}
          ]
        }
      ]
    }
  ]
}`

const moduleHCL = `
line "event" {
  position = 3
  operation "player_send_message" {
    argument "messages" {
      type    = "text"
      text    = "hello"
      parsing = "plain"
    }
    argument "count" {
      type   = "number"
      number = 2.5
    }
    argument "calc" {
      type   = "number"
      number = "%math(1+1)"
    }
  }
  operation "player_teleport" {
    argument "target" {
      type  = "location"
      x     = 1
      y     = 64
      z     = -1
      yaw   = 90
      pitch = 0
    }
    argument "who" {
      type       = "game_value"
      game_value = "player_name"
      selection  = "default"
    }
  }
}

line "function" {
  position = 0
  operation "set_variable_value" {
    argument "variable" {
      type     = "variable"
      variable = "hello"
      scope    = "save"
    }
    argument "items" {
      type   = "array"
      values = [
        { type = "item", item = "stone" },
        { type = "block", block = "dirt" },
      ]
    }
    argument "mode" {
      type = "enum"
      enum = "add_to_end"
    }
    argument "broken" {
      type = "vector"
      x    = 1
    }
  }
}
`

// expectedModule is the value graph both module files describe.
func expectedModule() *model.Module {
	return &model.Module{Handlers: []model.Line{
		{
			Type:     model.LineTypeEvent,
			Position: 3,
			Operations: []model.Operation{
				{Action: catalog.ActionIDPlayerSendMessage, Arguments: []model.NamedArgument{
					{Name: "messages", Value: model.Text{Text: "hello", Parsing: model.TextParsingPlain}},
					{Name: "count", Value: model.Literal(2.5)},
					{Name: "calc", Value: model.Calc("%math(1+1)")},
				}},
				{Action: catalog.ActionIDPlayerTeleport, Arguments: []model.NamedArgument{
					{Name: "target", Value: model.Location{X: 1, Y: 64, Z: -1, Yaw: 90}},
					{Name: "who", Value: model.GameValue{GameValue: catalog.GameValueIDPlayerName, Selection: "default"}},
				}},
			},
		},
		{
			Type: model.LineTypeFunction,
			Operations: []model.Operation{
				{Action: catalog.ActionIDSetVariableValue, Arguments: []model.NamedArgument{
					{Name: "variable", Value: model.Variable{Variable: "hello", Scope: model.VariableScopeSave}},
					{Name: "items", Value: model.Array{Values: []model.Value{
						model.Item{Item: "stone"},
						model.Block{Block: "dirt"},
					}}},
					{Name: "mode", Value: model.EnumValue{Value: "AddToEnd"}},
					{Name: "broken", Value: model.Error{}},
				}},
			},
		},
	}}
}

// TestPipeline_FormatsCompileIdentically compiles the same module written as
// JSON and as HCL through the file sink and checks both programs match the
// program of the value graph they describe.
func TestPipeline_FormatsCompileIdentically(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	srcDir, outDir := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "from_json.json"), []byte(moduleJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "from_hcl.hcl"), []byte(moduleHCL), 0o644))

	cfg, err := app.NewConfig(app.Config{
		ModulePath:  srcDir,
		OutPath:     outDir,
		Sink:        "file",
		LogFormat:   "text",
		WorkerCount: 2,
		Timeout:     app.DefaultTimeout,
	})
	require.NoError(t, err)
	testApp, _, logs := app.SetupAppTest(t, cfg)

	want, err := bytecode.Encode(expectedModule())
	require.NoError(t, err)

	// --- Act ---
	err = testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, logs.String(), "modules=2")
	require.Equal(t, []string{"%math(1+1)", "default", "dirt", "hello", "stone"}, want.Strings)
	require.EqualValues(t, 3, want.IndexWidth)

	for _, name := range []string{"from_json.bin", "from_hcl.bin"} {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		if diff := cmp.Diff(want.Data, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// TestPipeline_EventScenario checks the dump of the smallest event module
// through the stdout sink.
func TestPipeline_EventScenario(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "scenario.json")
	src := `{"handlers":[{"type":"event","position":0,"operations":[
	  {"action":"if_variable_equals","values":[
	    {"name":"v","value":{"type":"text","text":"go","parsing":"legacy"}}
	  ]}
	]}]}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := app.NewConfig(app.Config{
		ModulePath:  path,
		Sink:        "stdout",
		LogFormat:   "text",
		WorkerCount: 1,
		Timeout:     app.DefaultTimeout,
	})
	require.NoError(t, err)
	testApp, out, _ := app.SetupAppTest(t, cfg)

	// --- Act ---
	err = testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "scenario: ")
	require.Contains(t, out.String(), "1 strings, 0-bit string index")
	require.Contains(t, out.String(), "00000000  02 00 67 6f")
}
