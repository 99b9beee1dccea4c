// Copyright © 2025 Oneprompt

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneprompt/promptmon/pkg/collect"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const fixtureCommit = "5c5a4c2dbd22b1c9ea9a4d86d30736c67b1f4263"

type exitRecorder struct {
	fatalCalls int
	exitCodes  []int
	messages   []string
}

// patchExits reroutes the fatal handlers so commands under test return
// instead of terminating the test binary.
func patchExits(t *testing.T) *exitRecorder {
	t.Helper()
	rec := &exitRecorder{}
	savedLn, savedF, savedExit := logFatalln, logFatalf, osExit
	logFatalln = func(v ...interface{}) {
		rec.fatalCalls++
		rec.messages = append(rec.messages, fmt.Sprintln(v...))
	}
	logFatalf = func(format string, v ...interface{}) {
		rec.fatalCalls++
		rec.messages = append(rec.messages, fmt.Sprintf(format, v...))
	}
	osExit = func(code int) {
		rec.fatalCalls++
		rec.exitCodes = append(rec.exitCodes, code)
	}
	t.Cleanup(func() {
		logFatalln, logFatalf, osExit = savedLn, savedF, savedExit
	})
	return rec
}

// captureOutput redirects every output channel of the commands into one
// buffer.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	savedOut := promptOut
	savedStdOut := logStdOut
	promptOut = buf
	infoLogger.SetOutput(buf)
	logStdOut = func(format string, args ...interface{}) (int, error) {
		return fmt.Fprintf(buf, format, args...)
	}
	t.Cleanup(func() {
		promptOut = savedOut
		logStdOut = savedStdOut
		infoLogger.SetOutput(os.Stdout)
	})
	return buf
}

// isolateEnv severs the commands from the real environment: option lookups
// see nothing and the config file search lands on an empty file.
func isolateEnv(t *testing.T) {
	t.Helper()
	saved := envLookup
	envLookup = func(string) (string, bool) { return "", false }
	t.Cleanup(func() { envLookup = saved })
	cfg := filepath.Join(t.TempDir(), "promptmon.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte{}, 0600))
	t.Setenv("PROMPTMON_CONFIG", cfg)
}

func allFlagCommands() []*cobra.Command {
	return []*cobra.Command{rootCmd, promptCmd, detectCmd, inspectCmd, watchCmd, configShow, configList}
}

// resetFlags clears flag state left behind by earlier tests. Flag values
// live in package globals and cobra remembers which ones were changed.
func resetFlags(t *testing.T) {
	t.Helper()
	promptmonFlags = flagsT{}
	for _, c := range allFlagCommands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				require.NoError(t, f.Value.Set(f.DefValue))
				f.Changed = false
			}
		})
	}
}

type failRunner struct{}

func (failRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return nil, errors.New("runner disabled")
}

func patchRunner(t *testing.T, r collect.Runner) {
	t.Helper()
	saved := promptRunner
	promptRunner = r
	t.Cleanup(func() { promptRunner = saved })
}

// gitFixture lays out a plain git repository on a branch, readable through
// the metadata fast path without running git.
func gitFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "refs", "heads", "main"), []byte(fixtureCommit+"\n"), 0644))
	return root
}

func setupCLI(t *testing.T) (*exitRecorder, *bytes.Buffer) {
	t.Helper()
	rec := patchExits(t)
	buf := captureOutput(t)
	isolateEnv(t)
	resetFlags(t)
	patchRunner(t, failRunner{})
	return rec, buf
}

func TestCLIPromptGitRepo(t *testing.T) {
	rec, buf := setupCLI(t)
	root := gitFixture(t)

	rootCmd.SetArgs([]string{"prompt", "--cwd", root, "--color-mode", "never"})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, 0, rec.fatalCalls)
	require.Equal(t, " main 5c5a4c2d\n", buf.String())
}

func TestCLIPromptBareRoot(t *testing.T) {
	rec, buf := setupCLI(t)
	root := gitFixture(t)

	rootCmd.SetArgs([]string{"--cwd", root, "--color-mode", "never", "--no-symbol"})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, 0, rec.fatalCalls)
	require.Equal(t, "main 5c5a4c2d\n", buf.String())
}

func TestCLIPromptOutsideRepo(t *testing.T) {
	rec, buf := setupCLI(t)

	rootCmd.SetArgs([]string{"prompt", "--cwd", t.TempDir()})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, 0, rec.fatalCalls)
	require.Empty(t, buf.String())
}

func TestCLIPromptConfigError(t *testing.T) {
	rec, buf := setupCLI(t)
	root := gitFixture(t)

	rootCmd.SetArgs([]string{"prompt", "--cwd", root, "--color-mode", "sometimes"})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, []int{configErrorCode}, rec.exitCodes)
	require.Empty(t, buf.String())
}

func TestCLIPromptEnvTier(t *testing.T) {
	rec, buf := setupCLI(t)
	root := gitFixture(t)
	envLookup = func(name string) (string, bool) {
		if name == "PROMPTMON_NO_GIT_ID" {
			return "1", true
		}
		return "", false
	}

	rootCmd.SetArgs([]string{"prompt", "--cwd", root, "--color-mode", "never", "--no-symbol"})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, 0, rec.fatalCalls)
	require.Equal(t, "main\n", buf.String())
}

func TestCLIDetect(t *testing.T) {
	rec, buf := setupCLI(t)
	root := gitFixture(t)

	rootCmd.SetArgs([]string{"detect", "--cwd", root})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, 0, rec.fatalCalls)
	require.Equal(t, "git\t"+root+"\n", buf.String())
}

func TestCLIDetectNested(t *testing.T) {
	rec, buf := setupCLI(t)
	root := gitFixture(t)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	rootCmd.SetArgs([]string{"detect", "--cwd", nested})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, 0, rec.fatalCalls)
	require.Equal(t, "git\t"+root+"\n", buf.String())
}

func TestCLIDetectOutsideRepo(t *testing.T) {
	rec, buf := setupCLI(t)

	rootCmd.SetArgs([]string{"detect", "--cwd", t.TempDir()})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, []int{notARepositoryCode}, rec.exitCodes)
	require.Empty(t, buf.String())
}

func TestCLIInspect(t *testing.T) {
	rec, buf := setupCLI(t)
	root := gitFixture(t)

	rootCmd.SetArgs([]string{"inspect", "--cwd", root})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, rec.fatalCalls)

	var view struct {
		Root  string `json:"root"`
		Facts struct {
			Type string `json:"type"`
			Git  struct {
				Branch string `json:"branch"`
				Commit string `json:"commit"`
			} `json:"git"`
		} `json:"facts"`
	}
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &view))
	require.Equal(t, root, view.Root)
	require.Equal(t, "git", view.Facts.Type)
	require.Equal(t, "main", view.Facts.Git.Branch)
	require.Equal(t, fixtureCommit, view.Facts.Git.Commit)
}

func TestCLIVersion(t *testing.T) {
	rec, buf := setupCLI(t)

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, 0, rec.fatalCalls)
	require.Contains(t, buf.String(), "Version: dev")
}

func TestCLIUnknownFlag(t *testing.T) {
	setupCLI(t)

	rootCmd.SetArgs([]string{"--no-such-flag"})
	require.Error(t, rootCmd.Execute())
}

func TestResolvedFlagsChangedGating(t *testing.T) {
	setupCLI(t)

	require.NoError(t, promptCmd.ParseFlags([]string{"--id-length", "12", "--no-jj-status"}))
	fl := resolvedFlags(promptCmd.Flags())

	require.NotNil(t, fl.IDLength)
	require.Equal(t, 12, *fl.IDLength)
	require.True(t, fl.NoJjStatus)
	require.Nil(t, fl.TruncateName)
	require.Nil(t, fl.ColorMode)
	require.Nil(t, fl.Timeout)
}
