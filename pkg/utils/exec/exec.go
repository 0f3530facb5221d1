// Package exec runs external binaries, teeing their output to the logs.
package exec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"

	log "github.com/kkr-labs/kkrtestctl/pkg/logging"
)

var (
	// Execute enables monkey-patching cmd execution for integration tests
	Execute = execute

	// Pytest is the resolved path of the pytest binary.
	Pytest string
)

// Binary is an external binary required by one or more commands.
type Binary struct {
	Name string
	Path *string
}

var (
	// PytestBin is the external test runner.
	PytestBin = Binary{"pytest", &Pytest}

	// AllBins lists every external binary kkrtestctl may invoke.
	AllBins = []Binary{PytestBin}
)

// CheckBinaries ensures each binary is on the PATH and caches its location.
func CheckBinaries(binaries []Binary) error {
	hasAllBinaries := true

	for _, binary := range binaries {
		path, err := exec.LookPath(binary.Name)
		if err != nil {
			hasAllBinaries = false
			log.ErrorCLI(
				fmt.Sprintf("%s is not installed.\nPlease install the missing dependency and ensure it's available on your PATH.", binary.Name),
				"PATH", os.Getenv("PATH"),
			)
		}
		*binary.Path = path
	}

	if !hasAllBinaries {
		return fmt.Errorf("missing required binaries")
	}

	return nil
}

// WriterStringer accumulates writes and renders them as a string.
type WriterStringer interface {
	String() string
	Write(p []byte) (n int, err error)
}

// logWriter implements io.Writer while also logging to the terminal
type logWriter struct {
	buffer bytes.Buffer
}

func (l *logWriter) Write(p []byte) (n int, err error) {
	log.InfoCLI(string(p))
	return l.buffer.Write(p)
}

func (l *logWriter) String() string {
	return l.buffer.String()
}

func execute(logStdout bool, stack ...*exec.Cmd) (stdout, stderr string, err error) {
	var stdoutBuffer WriterStringer
	if !logStdout {
		stdoutBuffer = &bytes.Buffer{}
	} else {
		stdoutBuffer = &logWriter{}
	}
	stderrBuffer := logWriter{}

	pipeStack := make([]*io.PipeWriter, len(stack)-1)
	i := 0
	for ; i < len(stack)-1; i++ {
		stdinPipe, stdoutPipe := io.Pipe()
		stack[i].Stdout = stdoutPipe
		stack[i].Stderr = &stderrBuffer
		stack[i+1].Stdin = stdinPipe
		pipeStack[i] = stdoutPipe
	}
	stack[i].Stdout = stdoutBuffer
	stack[i].Stderr = &stderrBuffer

	if err := call(stack, pipeStack); err != nil {
		return "", stderrBuffer.String(), err
	}
	return stdoutBuffer.String(), stderrBuffer.String(), err
}

func call(stack []*exec.Cmd, pipes []*io.PipeWriter) (err error) {
	if stack[0].Process == nil {
		if err = stack[0].Start(); err != nil {
			return err
		}
	}
	if len(stack) > 1 {
		if err = stack[1].Start(); err != nil {
			return err
		}
		defer func() {
			if err == nil {
				err := pipes[0].Close()
				if err != nil {
					log.Error("Error closing pipe: %v", err)
					return
				}
				err = call(stack[1:], pipes[1:])
				if err != nil {
					log.Error("Error calling stack: %v", err)
					return
				}
			} else {
				err = stack[1].Wait()
			}
		}()
	}
	return stack[0].Wait()
}
