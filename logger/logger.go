package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// InitLogs prepares the logs directory, clearing .json output from
// earlier runs.
func InitLogs(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}
	files, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
			_ = os.Remove(path + "/" + f.Name())
		}
	}
	return nil
}

// LogJSON writes data as indented JSON to <path>/<id>.json.
func LogJSON(path, id string, data interface{}) error {
	file := fmt.Sprintf("%s/%s.json", path, id)
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, bytes, 0644)
}
