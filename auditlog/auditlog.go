// Package auditlog writes a small JSON record of the invocation so a run can
// be reproduced later.
package auditlog

import (
	"encoding/json"
	"os"
	"time"

	"github.com/carbocation/pfx"
)

// Stamp is the local-time, second-precision timestamp layout used in audit
// records. No zone; runs are reproduced on the machine that made them.
const Stamp = "2006-01-02T15:04:05"

// Entry is the serialized shape of one audit record.
type Entry struct {
	Timestamp string            `json:"timestamp"`
	Cmd       string            `json:"cmd"`
	Args      map[string]string `json:"args"`
}

// Write records the subcommand name and its full argument map at path,
// overwriting any existing file.
func Write(path, cmd string, args map[string]string) error {
	entry := Entry{
		Timestamp: time.Now().Format(Stamp),
		Cmd:       cmd,
		Args:      args,
	}

	b, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(os.WriteFile(path, b, 0o644))
}
