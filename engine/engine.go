package engine

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"

	"go.starlark.net/starlark"
)

// InputDigest fingerprints a script evaluation so callers can skip
// re-running a preset when neither the script nor its inputs changed.
func InputDigest(script string, inputs map[string]interface{}) string {
	data := map[string]interface{}{
		"script": script,
		"inputs": inputs,
	}
	jsonData, _ := json.Marshal(data)
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%x", hash)
}

// RunScript executes a Starlark script with the inputs bound as
// predeclared globals and returns every global the script defined,
// converted back to native Go values.
func RunScript(threadName, script string, inputs map[string]interface{}) (map[string]interface{}, error) {
	thread := &starlark.Thread{
		Name:  threadName,
		Print: func(_ *starlark.Thread, msg string) { log.Println(threadName+":", msg) },
	}

	predeclared := starlark.StringDict{}
	for k, v := range inputs {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", k, err)
		}
		predeclared[k] = val
	}

	globals, err := starlark.ExecFile(thread, threadName, script, predeclared)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for k, v := range globals {
		out[k] = FromStarlarkValue(v)
	}
	return out, nil
}

func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	}
	return nil
}
