package sscommon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tempfile "github.com/mash/go-tempfile-suffix"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/internal/logging"
)

// WriteRcData writes the given block into the rc file between our markers,
// replacing any block written by an earlier run
func WriteRcData(data string, rcPath string) error {
	if err := fileutils.TouchFileUnlessExists(rcPath); err != nil {
		return err
	}

	if err := CleanRcFile(rcPath); err != nil {
		return err
	}

	block := strings.Join([]string{
		constants.RCAppendStartLine,
		strings.TrimRight(data, "\n"),
		constants.RCAppendStopLine,
	}, "\n")

	logging.Debug("Writing managed block to %s", rcPath)
	return fileutils.AppendToFile(rcPath, []byte("\n"+block+"\n"))
}

// CleanRcFile removes our managed block from the rc file, if present
func CleanRcFile(rcPath string) error {
	if !fileutils.FileExists(rcPath) {
		return nil
	}

	data, err := fileutils.ReadFile(rcPath)
	if err != nil {
		return err
	}

	var kept []string
	inBlock := false
	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.TrimSpace(line) == constants.RCAppendStartLine:
			inBlock = true
		case strings.TrimSpace(line) == constants.RCAppendStopLine:
			inBlock = false
		case !inBlock:
			kept = append(kept, line)
		}
	}
	if inBlock {
		return errs.New("Unterminated %s block in %s", constants.RCAppendStartLine, rcPath)
	}

	result := strings.TrimRight(strings.Join(kept, "\n"), "\n")
	if result != "" {
		result += "\n"
	}
	return fileutils.WriteFile(rcPath, []byte(result))
}

// WriteSessionRcFile writes a throwaway rc file that a single subshell session
// is started from
func WriteSessionRcFile(suffix, contents string) (string, error) {
	tmpFile, err := tempfile.TempFileWithSuffix(os.TempDir(), fmt.Sprintf("%s-subshell-rc", constants.CommandName), suffix)
	if err != nil {
		return "", errs.Wrap(err, "Could not create session rc file")
	}
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(contents); err != nil {
		return "", errs.Wrap(err, "Could not write session rc file")
	}

	return tmpFile.Name(), nil
}

// ExportsSh renders sh-style export statements for the given escaped
// environment, in stable order
func ExportsSh(env map[string]string) string {
	var sb strings.Builder
	for _, kv := range envPairs(env) {
		sb.WriteString(fmt.Sprintf("export %s=\"%s\"\n", kv[0], kv[1]))
	}
	return sb.String()
}

// ExportsFish renders fish-style export statements for the given escaped
// environment, in stable order
func ExportsFish(env map[string]string) string {
	var sb strings.Builder
	for _, kv := range envPairs(env) {
		if kv[0] == "PATH" {
			// fish wants PATH as a list
			sb.WriteString(fmt.Sprintf("set -gx PATH (string split \":\" \"%s\")\n", kv[1]))
			continue
		}
		sb.WriteString(fmt.Sprintf("set -gx %s \"%s\"\n", kv[0], kv[1]))
	}
	return sb.String()
}

func envPairs(env map[string]string) [][2]string {
	var keys []string
	for k := range env {
		keys = append(keys, k)
	}
	// PATH goes last so the variables it is composed from read first
	var pairs [][2]string
	for _, k := range sortedWithPathLast(keys) {
		pairs = append(pairs, [2]string{k, env[k]})
	}
	return pairs
}

func sortedWithPathLast(keys []string) []string {
	var rest []string
	hasPath := false
	for _, k := range keys {
		if k == "PATH" {
			hasPath = true
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	if hasPath {
		rest = append(rest, "PATH")
	}
	return rest
}
